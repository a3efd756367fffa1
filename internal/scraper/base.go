// Define an interface for all scrapers
// Ensure consistency

package scraper

import (
	"context"
	"net/url"

	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/models"
)

//Scraper defines the interface that all listing-source scrapers must implement
type Scraper interface {
	//Scrape raw postings for one domain
	Scrape(ctx context.Context, profile config.DomainProfile) ([]models.Posting, error)

	//Name is the source name (Naukri via Firecrawl, Naukri via browser, ...)
	Name() string
}

// ListingsURL builds the naukri search URL for a domain keyword,
// limited to postings at most 3 days old.
func ListingsURL(keyword string) string {
	q := url.Values{}
	q.Set("k", keyword)
	q.Set("l", "india")
	q.Set("jobAge", "3")
	return "https://www.naukri.com/jobs-in-india?" + q.Encode()
}
