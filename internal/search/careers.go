package search

import (
	"context"
	"fmt"
)

// Resolver turns an employer name into a careers-page URL.
type Resolver struct {
	client Client
}

func NewResolver(client Client) *Resolver {
	return &Resolver{client: client}
}

// CareerPage resolves a careers URL for a company with a two-step
// fallback: "<company> careers" first, then the bare company name.
// Search failures count as "no result"; this never returns an error,
// only a possibly empty URL.
func (r *Resolver) CareerPage(ctx context.Context, company string) string {
	if url := r.firstURL(ctx, fmt.Sprintf("%s careers", company)); url != "" {
		return url
	}
	return r.firstURL(ctx, company)
}

func (r *Resolver) firstURL(ctx context.Context, query string) string {
	url, err := r.client.FirstResultURL(ctx, query)
	if err != nil {
		return ""
	}
	return url
}
