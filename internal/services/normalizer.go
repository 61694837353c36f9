package services

import (
	"regexp"
	"strings"
)

const (
	merchantMinLen = 2
	merchantMaxLen = 40
)

var (
	urlPrefixRe  = regexp.MustCompile(`HTTPS?://|WWW\.`)
	domainWordRe = regexp.MustCompile(`\b(?:COM|NET|ORG|ONLINE)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeMerchant canonicalizes a candidate merchant substring before alias
// resolution: uppercase, URL and domain noise stripped, separators flattened to
// single spaces. Results outside [2,40] characters are rejected and returned
// as the empty string so near-empty or paragraph-length garbage never reaches
// the alias or fuzzy matcher.
func NormalizeMerchant(raw string) string {
	s := strings.ToUpper(raw)
	s = urlPrefixRe.ReplaceAllString(s, "")
	s = domainWordRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "*", " ")
	s = strings.ReplaceAll(s, "/", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if len(s) < merchantMinLen || len(s) > merchantMaxLen {
		return ""
	}
	return s
}
