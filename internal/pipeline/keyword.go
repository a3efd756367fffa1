package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-jobscout-automation/internal/config"
)

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// matchesDomainKeyword is the zero-cost relevance shortcut: it checks
// whether any keyword token (or the domain label itself) appears as a
// substring of the posting's title+description.
func matchesDomainKeyword(profile config.DomainProfile, title, description string) bool {
	text := normalizeText(title + " " + description)
	tokens := append(strings.Fields(profile.Keyword), profile.Label)
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if strings.Contains(text, normalizeText(token)) {
			return true
		}
	}
	return false
}
