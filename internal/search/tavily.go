package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const tavilyURL = "https://api.tavily.com/search"

// Client is the interface for web search providers.
// FirstResultURL returns the top-ranked result URL for a query,
// or empty string when the search comes back empty.
type Client interface {
	FirstResultURL(ctx context.Context, query string) (string, error)
}

type tavilyClient struct {
	apiKey     string
	httpClient *http.Client
}

// NewTavilyClient creates a new Tavily search API client
func NewTavilyClient(apiKey string) Client {
	return &tavilyClient{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type tavilyRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []struct {
		URL string `json:"url"`
	} `json:"results"`
}

func (c *tavilyClient) FirstResultURL(ctx context.Context, query string) (string, error) {
	reqBody := tavilyRequest{
		Query:      query,
		MaxResults: 1, // only the first result is ever consulted
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tavily request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", tavilyURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tavily API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var tavilyResp tavilyResponse
	if err := json.Unmarshal(bodyBytes, &tavilyResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(tavilyResp.Results) == 0 {
		return "", nil
	}
	return tavilyResp.Results[0].URL, nil
}
