package naukri

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/models"
	"go-jobscout-automation/internal/scraper"
)

// BrowserScraper drives a local headless Chromium instead of the hosted
// scrape API. Used when no Firecrawl key is configured.
type BrowserScraper struct{}

func NewBrowserScraper() *BrowserScraper {
	return &BrowserScraper{}
}

func (s *BrowserScraper) Name() string {
	return "Naukri (browser)"
}

func (s *BrowserScraper) Scrape(ctx context.Context, profile config.DomainProfile) ([]models.Posting, error) {
	url := scraper.ListingsURL(profile.Keyword)
	log.Printf("📋 Searching naukri.com for '%s' (local browser)...", profile.Keyword)

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not launch playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("error navigating to %s: %w", url, err)
	}

	//same render wait the hosted scraper performs
	time.Sleep(2 * time.Second)

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("could not read page content: %w", err)
	}

	postings, err := ParseListings(html)
	if err != nil {
		return nil, err
	}
	log.Printf("    📦 Found %d job cards for '%s'", len(postings), profile.Keyword)
	return postings, nil
}
