package extraction

import (
	"regexp"
	"strings"
)

// MaxCertifications caps the number of certifications reported
const MaxCertifications = 10

var certificationPatterns = []*regexp.Regexp{
	// vendor name followed by "certified ..."
	regexp.MustCompile(`(?i)\b(?:aws|azure|google cloud|gcp|microsoft|oracle|cisco|comptia|salesforce|mongodb|red hat|kubernetes|hashicorp|linux foundation|scrum|pmi)\s+certified[a-z0-9 \-]*`),
	// "Certifications: ..."
	regexp.MustCompile(`(?i)certifications?\s*:\s*[^\n]+`),
	// "Cert: ..." or "Certified: ..."
	regexp.MustCompile(`(?i)\bcert(?:ified)?\s*:\s*[^\n]+`),
}

// ExtractCertifications returns distinct certification phrases in first-seen
// order (pattern by pattern), capped at MaxCertifications.
func ExtractCertifications(text string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, re := range certificationPatterns {
		for _, m := range re.FindAllString(text, -1) {
			c := strings.TrimSpace(m)
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
			if len(out) == MaxCertifications {
				return out
			}
		}
	}
	return out
}
