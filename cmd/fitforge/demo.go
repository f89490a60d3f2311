package main

import _ "embed"

// Bundled sample inputs for `analyze --demo`

//go:embed demo/jd.txt
var demoJD string

//go:embed demo/resume.txt
var demoResume string
