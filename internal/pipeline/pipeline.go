// The qualification pipeline: three ordered decision stages sharing one
// State. All three stages always run; keep/drop is decided by the caller
// via State.Keep after the run completes.
//
// Failure defaults are deliberately asymmetric: an uncertain relevance
// check excludes the posting ("No"), an uncertain competitor check does
// not ("No" here means "not a competitor"). Do not unify them.

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"go-jobscout-automation/internal/ai"
	"go-jobscout-automation/internal/config"
)

// Run executes relevance -> competitor -> tier, strictly in that order,
// extending st in place. The active domain flows in as an explicit
// parameter; there is no ambient domain state.
func Run(ctx context.Context, client ai.Client, profile config.DomainProfile, competitors []string, st *State) {
	checkRelevance(ctx, client, profile, st)
	checkCompetitor(ctx, client, competitors, st)
	determineTier(ctx, client, st)
}

// checkRelevance sets IsRelevant. Keyword shortcut first: if the
// title+description already contains a domain keyword token, answer
// "Yes" without any capability call. Otherwise ask the model and
// fail closed to "No".
func checkRelevance(ctx context.Context, client ai.Client, profile config.DomainProfile, st *State) {
	if matchesDomainKeyword(profile, st.Title, st.Description) {
		st.IsRelevant = "Yes"
		return
	}

	raw, err := client.Complete(ctx, buildRelevancePrompt(st, profile.Label))
	if err != nil {
		st.IsRelevant = "No"
		return
	}
	answer, err := decodeRelevance(raw)
	if err != nil {
		st.IsRelevant = "No"
		return
	}
	st.IsRelevant = answer
}

// checkCompetitor sets IsCompetitor. Fails open to "No": an uncertain
// answer never blocks a posting on this gate.
func checkCompetitor(ctx context.Context, client ai.Client, competitors []string, st *State) {
	raw, err := client.Complete(ctx, buildCompetitorPrompt(st, competitors))
	if err != nil {
		st.IsCompetitor = "No"
		return
	}
	answer, err := decodeCompetitor(raw)
	if err != nil {
		st.IsCompetitor = "No"
		return
	}
	st.IsCompetitor = answer
}

// determineTier sets JobTier. Anything other than a clean reply with a
// known tier value lands on TierUnknown.
func determineTier(ctx context.Context, client ai.Client, st *State) {
	raw, err := client.Complete(ctx, buildTierPrompt(st))
	if err != nil {
		st.JobTier = TierUnknown
		return
	}
	tier, err := decodeTier(raw)
	if err != nil {
		st.JobTier = TierUnknown
		return
	}
	st.JobTier = tier
}

func decodeRelevance(raw string) (string, error) {
	var reply struct {
		IsRelevant string `json:"is_relevant"`
	}
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return "", fmt.Errorf("failed to parse relevance reply: %w", err)
	}
	if reply.IsRelevant == "" {
		return "", fmt.Errorf("relevance reply missing is_relevant")
	}
	return reply.IsRelevant, nil
}

func decodeCompetitor(raw string) (string, error) {
	var reply struct {
		IsCompetitor string `json:"is_competitor"`
	}
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return "", fmt.Errorf("failed to parse competitor reply: %w", err)
	}
	if reply.IsCompetitor == "" {
		return "", fmt.Errorf("competitor reply missing is_competitor")
	}
	return reply.IsCompetitor, nil
}

func decodeTier(raw string) (string, error) {
	var reply struct {
		JobTier string `json:"job_tier"`
	}
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return "", fmt.Errorf("failed to parse tier reply: %w", err)
	}
	switch reply.JobTier {
	case TierFresher, TierMid, TierSenior:
		return reply.JobTier, nil
	}
	return "", fmt.Errorf("unexpected job_tier value: %q", reply.JobTier)
}
