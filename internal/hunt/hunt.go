// Domain orchestrator: scrape -> qualify -> enrich -> recency-gate,
// one posting at a time. Every failure is posting-local; a bad posting
// never aborts the domain run.

package hunt

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/time/rate"

	"go-jobscout-automation/internal/ai"
	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/dedup"
	"go-jobscout-automation/internal/filter"
	"go-jobscout-automation/internal/models"
	"go-jobscout-automation/internal/pipeline"
	"go-jobscout-automation/internal/scraper"
)

// CareerResolver resolves an employer name to a careers URL,
// returning empty string when nothing was found.
type CareerResolver interface {
	CareerPage(ctx context.Context, company string) string
}

type Hunter struct {
	Source      scraper.Scraper
	AI          ai.Client
	Resolver    CareerResolver
	Competitors []string

	//optional: skip postings qualified in earlier runs
	Cache *dedup.PostingCache
	//optional: pace outbound capability calls
	Limiter *rate.Limiter
}

// RunDomain drives one domain end to end and returns the qualified
// postings. An empty listings page yields an empty (non-error) result.
func (h *Hunter) RunDomain(ctx context.Context, profile config.DomainProfile) ([]models.QualifiedPosting, error) {
	postings, err := h.Source.Scrape(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("scrape failed for %s: %w", profile.Label, err)
	}

	var qualified []models.QualifiedPosting
	var seenKeys []string
	for _, p := range postings {
		if h.Cache != nil && h.Cache.IsSeen(dedup.Key(p)) {
			log.Printf("  ⏭️ Already processed: %s @ %s", p.Title, p.Company)
			continue
		}

		q, ok := h.processPosting(ctx, profile, p)
		if !ok {
			continue
		}

		//final gate, on the posted date captured before enrichment
		if !filter.IsRecentJob(p.PostedDate) {
			log.Printf("  🕰️ Not recent (%q): %s @ %s", p.PostedDate, p.Title, p.Company)
			continue
		}

		log.Printf("  ✅ [%s] %s @ %s -> %s", q.JobTier, q.Title, q.Company, q.CareerLink)
		qualified = append(qualified, q)
		seenKeys = append(seenKeys, dedup.Key(p))
	}

	if h.Cache != nil && len(seenKeys) > 0 {
		h.Cache.Add(seenKeys)
	}

	log.Printf("📦 %s: %d/%d postings qualified", profile.Label, len(qualified), len(postings))
	return qualified, nil
}

// processPosting runs the three-stage pipeline and, when the posting
// survives both gates, enriches it with a careers link. A posting that
// cannot be enriched is dropped entirely; no partial records.
func (h *Hunter) processPosting(ctx context.Context, profile config.DomainProfile, p models.Posting) (models.QualifiedPosting, bool) {
	h.wait(ctx)

	st := pipeline.NewState(p)
	pipeline.Run(ctx, h.AI, profile, h.Competitors, st)
	if !st.Keep() {
		log.Printf("  🚫 Dropped (relevant=%s, competitor=%s): %s @ %s",
			st.IsRelevant, st.IsCompetitor, p.Title, p.Company)
		return models.QualifiedPosting{}, false
	}

	h.wait(ctx)

	link := h.Resolver.CareerPage(ctx, p.Company)
	if link == "" {
		log.Printf("  🔗 No careers page found for %s, dropping", p.Company)
		return models.QualifiedPosting{}, false
	}

	return models.QualifiedPosting{
		Posting:    p,
		JobTier:    st.JobTier,
		CareerLink: link,
	}, true
}

func (h *Hunter) wait(ctx context.Context) {
	if h.Limiter != nil {
		_ = h.Limiter.Wait(ctx)
	}
}
