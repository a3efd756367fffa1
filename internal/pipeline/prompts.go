package pipeline

import (
	"fmt"
	"strings"
)

// buildRelevancePrompt asks whether the posting is genuinely a job in the domain
func buildRelevancePrompt(st *State, domain string) string {
	return fmt.Sprintf(`Job Title: %s
Company: %s
Description: %s
Is this a genuine %s job? Respond {"is_relevant":"Yes" or "No"}.`,
		st.Title, st.Company, st.Description, domain)
}

// buildCompetitorPrompt asks whether the employer is on the disqualification list
func buildCompetitorPrompt(st *State, competitors []string) string {
	return fmt.Sprintf("Job Company: %s\nIs it in [%s]? Return {\"is_competitor\": \"Yes\" or \"No\"}.",
		st.Company, strings.Join(competitors, ", "))
}

// buildTierPrompt asks for a seniority tier from title and experience
func buildTierPrompt(st *State) string {
	return fmt.Sprintf("Job Title: %s\nExperience: %s\nRespond {\"job_tier\": \"Fresher\"/\"Mid\"/\"Senior\"}.",
		st.Title, st.Experience)
}
