package pipeline

import (
	"strings"

	"go-jobscout-automation/internal/models"
)

// Tier values the tier stage is allowed to produce.
const (
	TierFresher = "Fresher"
	TierMid     = "Mid"
	TierSenior  = "Senior"
	TierUnknown = "N/A"
)

// State is the per-posting working record the three stages share.
// Decision slots start empty and are written strictly in stage order
// (relevance, competitor, tier); once set they are never revisited
// within a run. One State belongs to exactly one pipeline invocation.
type State struct {
	Title       string
	Company     string
	Experience  string
	Description string

	IsRelevant   string // "Yes" | "No"
	IsCompetitor string // "Yes" | "No"
	JobTier      string // TierFresher | TierMid | TierSenior | TierUnknown
}

// NewState seeds a State from the raw posting fields the stages judge on.
func NewState(p models.Posting) *State {
	return &State{
		Title:       p.Title,
		Company:     p.Company,
		Experience:  p.Experience,
		Description: p.Description,
	}
}

// Keep reports whether a fully classified posting survives both gates:
// relevant to the domain and not from a disqualified employer.
// Comparison is case-insensitive.
func (s *State) Keep() bool {
	return strings.EqualFold(s.IsRelevant, "Yes") && strings.EqualFold(s.IsCompetitor, "No")
}
