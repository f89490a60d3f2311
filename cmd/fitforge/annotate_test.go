package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateCommand_Highlights(t *testing.T) {
	resume := writeFile(t, t.TempDir(), "resume.txt", "Built services in Go & Python")

	out, err := execute(t, "annotate", "--resume", resume, "--highlight", "go", "--highlight", "python")
	require.NoError(t, err)
	assert.Contains(t, out, `Built services in <mark aria-label="matched">Go</mark> &amp; <mark aria-label="matched">Python</mark>`)
}

func TestAnnotateCommand_FromJD(t *testing.T) {
	dir := t.TempDir()
	jd := writeFile(t, dir, "jd.txt", testJD)
	resume := writeFile(t, dir, "resume.txt", testResume)
	outPath := filepath.Join(dir, "annotated.html")

	out, err := execute(t, "annotate", "--resume", resume, "--jd", jd, "--out", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<mark aria-label="matched">React</mark>`)
}

func TestAnnotateCommand_NoTermsEscapes(t *testing.T) {
	resume := writeFile(t, t.TempDir(), "resume.txt", "<b>bold</b>")

	out, err := execute(t, "annotate", "--resume", resume)
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt;")
	assert.NotContains(t, out, "<mark")
}

func TestAnnotateCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", testResume)
	jd := writeFile(t, dir, "jd.txt", testJD)

	_, err := execute(t, "annotate", "--highlight", "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "resume" not set`)

	_, err = execute(t, "annotate", "--resume", resume, "--jd", jd, "--highlight", "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}
