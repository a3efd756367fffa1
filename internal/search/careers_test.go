package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

//fakeSearch records queries and replays canned results per query
type fakeSearch struct {
	queries []string
	results map[string]string
	err     error
}

func (f *fakeSearch) FirstResultURL(_ context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return "", f.err
	}
	return f.results[query], nil
}

func TestCareerPage_ShortCircuit(t *testing.T) {
	fake := &fakeSearch{results: map[string]string{
		"Acme Corp careers": "https://acme.example/careers",
	}}
	r := NewResolver(fake)

	url := r.CareerPage(context.Background(), "Acme Corp")

	assert.Equal(t, "https://acme.example/careers", url)
	//the bare-company query must never be issued when the first hit lands
	assert.Equal(t, []string{"Acme Corp careers"}, fake.queries)
}

func TestCareerPage_FallbackToBareName(t *testing.T) {
	fake := &fakeSearch{results: map[string]string{
		"Acme Corp": "https://acme.example/",
	}}
	r := NewResolver(fake)

	url := r.CareerPage(context.Background(), "Acme Corp")

	assert.Equal(t, "https://acme.example/", url)
	assert.Equal(t, []string{"Acme Corp careers", "Acme Corp"}, fake.queries)
}

func TestCareerPage_NoResult(t *testing.T) {
	fake := &fakeSearch{results: map[string]string{}}
	r := NewResolver(fake)

	assert.Empty(t, r.CareerPage(context.Background(), "Acme Corp"))
	assert.Len(t, fake.queries, 2)
}

func TestCareerPage_SwallowsErrors(t *testing.T) {
	fake := &fakeSearch{err: errors.New("search down")}
	r := NewResolver(fake)

	//errors count as "no result", never propagate
	assert.Empty(t, r.CareerPage(context.Background(), "Acme Corp"))
}
