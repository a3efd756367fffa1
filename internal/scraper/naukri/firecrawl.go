package naukri

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/models"
	"go-jobscout-automation/internal/scraper"
)

const firecrawlURL = "https://api.firecrawl.dev/v1/scrape"

// FirecrawlScraper fetches the naukri listings page through the hosted
// Firecrawl scrape API, which renders the page and waits for the
// client-side job cards before returning HTML.
type FirecrawlScraper struct {
	apiKey     string
	httpClient *http.Client
}

func NewFirecrawlScraper(apiKey string) *FirecrawlScraper {
	return &FirecrawlScraper{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

func (s *FirecrawlScraper) Name() string {
	return "Naukri (Firecrawl)"
}

type firecrawlAction struct {
	Type         string `json:"type"`
	Milliseconds int    `json:"milliseconds,omitempty"`
}

type firecrawlRequest struct {
	URL     string            `json:"url"`
	Formats []string          `json:"formats"`
	Actions []firecrawlAction `json:"actions,omitempty"`
}

type firecrawlResponse struct {
	Success bool `json:"success"`
	Data    struct {
		HTML string `json:"html"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
}

func (s *FirecrawlScraper) Scrape(ctx context.Context, profile config.DomainProfile) ([]models.Posting, error) {
	url := scraper.ListingsURL(profile.Keyword)
	log.Printf("📋 Searching naukri.com for '%s'...", profile.Keyword)

	html, err := s.fetchHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	postings, err := ParseListings(html)
	if err != nil {
		return nil, err
	}
	log.Printf("    📦 Found %d job cards for '%s'", len(postings), profile.Keyword)
	return postings, nil
}

func (s *FirecrawlScraper) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	reqBody := firecrawlRequest{
		URL:     pageURL,
		Formats: []string{"html"},
		//give the job cards time to render
		Actions: []firecrawlAction{{Type: "wait", Milliseconds: 2000}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal firecrawl request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", firecrawlURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("firecrawl API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var fcResp firecrawlResponse
	if err := json.Unmarshal(bodyBytes, &fcResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if !fcResp.Success {
		return "", fmt.Errorf("firecrawl scrape failed: %s", fcResp.Error)
	}

	return fcResp.Data.HTML, nil
}
