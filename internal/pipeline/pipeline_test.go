package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/models"
)

//spyClient records every prompt and replays scripted replies in order
type spyClient struct {
	prompts []string
	replies []string
	err     error
}

func (s *spyClient) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", errors.New("no scripted reply left")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

var dataScience = config.DomainProfile{Label: "Data Science", Keyword: "data scientist"}

func TestCheckRelevance_KeywordShortcut(t *testing.T) {
	tests := []struct {
		name  string
		title string
		desc  string
	}{
		{"keyword token in title", "Data Scientist", "we build models"},
		{"keyword token in description", "ML Engineer", "looking for a data scientist"},
		{"domain label itself", "Analyst", "Data Science team opening"},
		{"single token match", "Scientist, applied research", "lab role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &spyClient{}
			st := &State{Title: tt.title, Description: tt.desc}

			checkRelevance(context.Background(), client, dataScience, st)

			assert.Equal(t, "Yes", st.IsRelevant)
			assert.Empty(t, client.prompts, "shortcut must not invoke the capability")
		})
	}
}

func TestCheckRelevance_CapabilityPath(t *testing.T) {
	client := &spyClient{replies: []string{`{"is_relevant":"Yes"}`}}
	st := &State{Title: "Backend Engineer", Description: "build APIs"}

	checkRelevance(context.Background(), client, dataScience, st)

	assert.Equal(t, "Yes", st.IsRelevant)
	assert.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Data Science")
}

func TestCheckRelevance_FailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		client *spyClient
	}{
		{"transport failure", &spyClient{err: errors.New("boom")}},
		{"unparseable reply", &spyClient{replies: []string{"definitely relevant!"}}},
		{"missing key", &spyClient{replies: []string{`{"something_else":"Yes"}`}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{Title: "Backend Engineer", Description: "build APIs"}
			checkRelevance(context.Background(), tt.client, dataScience, st)
			assert.Equal(t, "No", st.IsRelevant)
		})
	}
}

func TestCheckCompetitor_FailsOpen(t *testing.T) {
	tests := []struct {
		name   string
		client *spyClient
	}{
		{"transport failure", &spyClient{err: errors.New("boom")}},
		{"unparseable reply", &spyClient{replies: []string{"not json"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{Company: "Acme Corp"}
			checkCompetitor(context.Background(), tt.client, []string{"Unacademy"}, st)
			//uncertainty never blocks on this gate
			assert.Equal(t, "No", st.IsCompetitor)
		})
	}
}

func TestCheckCompetitor_PromptEmbedsList(t *testing.T) {
	client := &spyClient{replies: []string{`{"is_competitor":"Yes"}`}}
	st := &State{Company: "Unacademy"}

	checkCompetitor(context.Background(), client, []string{"BYJU'S", "Unacademy"}, st)

	assert.Equal(t, "Yes", st.IsCompetitor)
	assert.Contains(t, client.prompts[0], "Unacademy")
	assert.Contains(t, client.prompts[0], "BYJU'S")
}

func TestDetermineTier(t *testing.T) {
	tests := []struct {
		name   string
		client *spyClient
		want   string
	}{
		{"fresher", &spyClient{replies: []string{`{"job_tier":"Fresher"}`}}, TierFresher},
		{"mid", &spyClient{replies: []string{`{"job_tier":"Mid"}`}}, TierMid},
		{"senior", &spyClient{replies: []string{`{"job_tier":"Senior"}`}}, TierSenior},
		{"value outside the enumeration", &spyClient{replies: []string{`{"job_tier":"Principal"}`}}, TierUnknown},
		{"empty value", &spyClient{replies: []string{`{"job_tier":""}`}}, TierUnknown},
		{"unparseable reply", &spyClient{replies: []string{"Senior"}}, TierUnknown},
		{"transport failure", &spyClient{err: errors.New("boom")}, TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{Title: "Data Scientist", Experience: "2 years"}
			determineTier(context.Background(), tt.client, st)
			assert.Equal(t, tt.want, st.JobTier)
		})
	}
}

func TestKeep_AllCombinations(t *testing.T) {
	tests := []struct {
		relevant   string
		competitor string
		want       bool
	}{
		{"Yes", "No", true},
		{"Yes", "Yes", false},
		{"No", "No", false},
		{"No", "Yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.relevant+"/"+tt.competitor, func(t *testing.T) {
			st := &State{IsRelevant: tt.relevant, IsCompetitor: tt.competitor}
			assert.Equal(t, tt.want, st.Keep())
		})
	}
}

func TestKeep_CaseInsensitive(t *testing.T) {
	st := &State{IsRelevant: "yes", IsCompetitor: "NO"}
	assert.True(t, st.Keep())
}

func TestRun_StageOrder(t *testing.T) {
	//no keyword match, so all three stages hit the capability
	client := &spyClient{replies: []string{
		`{"is_relevant":"Yes"}`,
		`{"is_competitor":"No"}`,
		`{"job_tier":"Mid"}`,
	}}
	st := NewState(models.Posting{
		Title:       "Quantitative Analyst",
		Company:     "Acme Corp",
		Experience:  "2 years",
		Description: "statistics heavy role",
	})

	Run(context.Background(), client, dataScience, []string{"Unacademy"}, st)

	assert.Len(t, client.prompts, 3)
	assert.True(t, strings.Contains(client.prompts[0], "is_relevant"))
	assert.True(t, strings.Contains(client.prompts[1], "is_competitor"))
	assert.True(t, strings.Contains(client.prompts[2], "job_tier"))
	assert.Equal(t, "Yes", st.IsRelevant)
	assert.Equal(t, "No", st.IsCompetitor)
	assert.Equal(t, TierMid, st.JobTier)
	assert.True(t, st.Keep())
}

func TestMatchesDomainKeyword_Diacritics(t *testing.T) {
	profile := config.DomainProfile{Label: "Data Science", Keyword: "data scientist"}
	assert.True(t, matchesDomainKeyword(profile, "DÁTA Scïentist", ""))
	assert.False(t, matchesDomainKeyword(profile, "Accountant", "ledger work"))
}
