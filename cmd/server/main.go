package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-jobscout-automation/internal/ai"
	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/dedup"
	"go-jobscout-automation/internal/export"
	"go-jobscout-automation/internal/hunt"
	"go-jobscout-automation/internal/scraper"
	"go-jobscout-automation/internal/scraper/naukri"
	"go-jobscout-automation/internal/search"
)

const runTimeout = 10 * time.Minute

func main() {
	cfg := config.Load()

	var source scraper.Scraper
	if cfg.FirecrawlAPIKey != "" {
		source = naukri.NewFirecrawlScraper(cfg.FirecrawlAPIKey)
	} else {
		source = naukri.NewBrowserScraper()
	}

	hunter := &hunt.Hunter{
		Source:      source,
		AI:          ai.NewGroqClient(cfg.GroqAPIKey),
		Resolver:    search.NewResolver(search.NewTavilyClient(cfg.TavilyAPIKey)),
		Competitors: cfg.Competitors,
		Cache:       dedup.NewPostingCache(cfg.CachePath),
		Limiter:     rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "JobScout API is running!",
			"status":  "healthy",
		})
	})

	r.GET("/domains", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"domains": cfg.DomainLabels()})
	})

	r.POST("/scrape/:domain", func(c *gin.Context) {
		profile, ok := cfg.Profile(c.Param("domain"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown domain"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), runTimeout)
		defer cancel()

		qualified, err := hunter.RunDomain(ctx, profile)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"domain":   profile.Label,
			"count":    len(qualified),
			"postings": qualified,
		})
	})

	r.GET("/export/:domain", func(c *gin.Context) {
		profile, ok := cfg.Profile(c.Param("domain"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown domain"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), runTimeout)
		defer cancel()

		qualified, err := hunter.RunDomain(ctx, profile)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		data, err := export.ToExcel(qualified)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		slug := strings.ReplaceAll(strings.ToLower(profile.Label), " ", "-")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="jobs_%s.xlsx"`, slug))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	})

	log.Printf("Server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
