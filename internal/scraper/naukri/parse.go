package naukri

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"

	"go-jobscout-automation/internal/models"
)

// ParseListings extracts raw postings from a naukri search-results page.
// Cards without a title are skipped; duplicate cards (same company and
// title) are collapsed. Missing fields stay empty strings.
func ParseListings(html string) ([]models.Posting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listings html: %w", err)
	}

	var postings []models.Posting
	seen := mapset.NewSet[string]()

	doc.Find("div.srp-jobtuple-wrapper").Each(func(_ int, card *goquery.Selection) {
		p := models.Posting{
			Title:       firstText(card, "a.title"),
			Company:     firstText(card, "a.comp-name, a.subTitle"),
			Experience:  firstText(card, "span.expwdth, li.experience"),
			Description: firstText(card, "span.job-desc, div.job-description"),
			PostedDate:  firstText(card, "span.fleft.postedDate, span.job-post-day"),
			Location:    firstText(card, "span.locWdth, li.location"),
			Salary:      firstText(card, "span.sal-wrap, li.salary"),
			Skills:      skillTags(card),
		}
		if p.Title == "" {
			return
		}
		//collapse duplicate cards
		if !seen.Add(p.Company + "|" + p.Title) {
			return
		}
		postings = append(postings, p)
	})

	return postings, nil
}

func firstText(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

func skillTags(card *goquery.Selection) string {
	var tags []string
	card.Find("li.tag, li.tag-li").Each(func(_ int, t *goquery.Selection) {
		if tag := strings.TrimSpace(t.Text()); tag != "" {
			tags = append(tags, tag)
		}
	})
	return strings.Join(tags, ", ")
}
