package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"go-jobscout-automation/internal/ai"
	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/dedup"
	"go-jobscout-automation/internal/export"
	"go-jobscout-automation/internal/hunt"
	"go-jobscout-automation/internal/models"
	"go-jobscout-automation/internal/reporter"
	"go-jobscout-automation/internal/scraper"
	"go-jobscout-automation/internal/scraper/naukri"
	"go-jobscout-automation/internal/search"
)

func main() {
	domainFlag := flag.String("domain", "Data Science", "domain label to hunt (see configs/config.yaml)")
	noCache := flag.Bool("no-cache", false, "reprocess postings seen in earlier runs")
	flag.Parse()

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Domains: %v", cfg.DomainLabels())

	profile, ok := cfg.Profile(*domainFlag)
	if !ok {
		log.Fatalf("❌ Unknown domain %q. Available: %v", *domainFlag, cfg.DomainLabels())
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Printf("🚀 Starting JobScout for domain '%s'...", profile.Label)

	//pick scrape transport: hosted API when a key is present, local browser otherwise
	var source scraper.Scraper
	if cfg.FirecrawlAPIKey != "" {
		source = naukri.NewFirecrawlScraper(cfg.FirecrawlAPIKey)
	} else {
		source = naukri.NewBrowserScraper()
	}
	log.Printf("🕷️ Scraper: %s", source.Name())

	hunter := &hunt.Hunter{
		Source:      source,
		AI:          ai.NewGroqClient(cfg.GroqAPIKey),
		Resolver:    search.NewResolver(search.NewTavilyClient(cfg.TavilyAPIKey)),
		Competitors: cfg.Competitors,
		Limiter:     rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
	if !*noCache {
		hunter.Cache = dedup.NewPostingCache(cfg.CachePath)
	}

	qualified, err := hunter.RunDomain(ctx, profile)
	if err != nil {
		log.Fatalf("❌ Domain run failed: %v", err)
	}

	if len(qualified) == 0 {
		log.Println("ℹ️ No qualified postings found.")
		return
	}

	//save results
	savePostings(cfg.LogsPath, profile.Label, qualified)

	//send to telegram if configured
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		sendToTelegram(cfg, qualified)
	}

	log.Println("🏁 Execution finished.")
}

func savePostings(logsPath, domain string, postings []models.QualifiedPosting) {
	if err := os.MkdirAll(logsPath, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	slug := strings.ReplaceAll(strings.ToLower(domain), " ", "-")
	base := fmt.Sprintf("jobs-%s-%s", slug, time.Now().Format("2006-01-02"))

	//json dump
	data, err := json.MarshalIndent(postings, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal postings to JSON: %v", err)
	} else if err := os.WriteFile(filepath.Join(logsPath, base+".json"), data, 0644); err != nil {
		log.Printf("⚠️ Failed to write JSON results: %v", err)
	}

	//xlsx table
	xlsx, err := export.ToExcel(postings)
	if err != nil {
		log.Printf("⚠️ Failed to build xlsx: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(logsPath, base+".xlsx"), xlsx, 0644); err != nil {
		log.Printf("⚠️ Failed to write xlsx results: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s/%s.{json,xlsx}", logsPath, base)
}

func sendToTelegram(cfg *config.Config, postings []models.QualifiedPosting) {
	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ Failed to init Telegram reporter: %v", err)
		return
	}

	for _, p := range postings {
		if err := rep.SendPosting(p); err != nil {
			log.Printf("⚠️ Failed to send posting to Telegram: %v", err)
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}

	statusMsg := fmt.Sprintf("✅ Found %d qualified postings.", len(postings))
	if err := rep.SendMessage(statusMsg); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
}
