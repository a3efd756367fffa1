package filter

import "strings"

// recentPhrases is the fixed allow-list of posted-date phrases that
// count as recent. Deliberately a substring heuristic, no date parsing:
// the listings source only ever renders relative phrases here.
var recentPhrases = []string{
	"just now",
	"few hours",
	"today",
	"1 day",
	"2 days",
	"3 days",
}

// IsRecentJob reports whether a free-text posted-date string matches
// one of the recency phrases, case-insensitively.
func IsRecentJob(dateStr string) bool {
	low := strings.ToLower(dateStr)
	for _, phrase := range recentPhrases {
		if strings.Contains(low, phrase) {
			return true
		}
	}
	return false
}
