package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-jobscout-automation/internal/models"
)

type seenEntry struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// PostingCache remembers which postings already qualified in earlier
// runs so they are not re-processed (and re-reported). Keyed by
// company|title since the listings source exposes no stable posting id.
type PostingCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// Key derives the cache key for a posting.
func Key(p models.Posting) string {
	return p.Company + "|" + p.Title
}

// NewPostingCache creates or loads a posting cache
func NewPostingCache(cacheDir string) *PostingCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	filePath := filepath.Join(cacheDir, "seen_postings.json")
	cache := &PostingCache{
		filePath: filePath,
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen checks if a posting has already been processed.
// Mutex is required because Go maps are NOT thread-safe.
func (pc *PostingCache) IsSeen(key string) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	_, exists := pc.seen[key]
	return exists
}

func (pc *PostingCache) Add(keys []string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, key := range keys {
		if _, exists := pc.seen[key]; !exists {
			pc.seen[key] = now
			changed = true
		}
	}

	if changed {
		pc.save()
	}
}

// load reads the cache from disk, dropping entries older than 30 days
func (pc *PostingCache) load() {
	data, err := os.ReadFile(pc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_postings.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_postings.json: %v", err)
		return
	}

	thirtyDaysAgo := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > thirtyDaysAgo {
			pc.seen[e.Key] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen postings (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk
func (pc *PostingCache) save() {
	entries := make([]seenEntry, 0, len(pc.seen))
	for key, ts := range pc.seen {
		entries = append(entries, seenEntry{Key: key, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen postings: %v", err)
		return
	}
	if err := os.WriteFile(pc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_postings.json: %v", err)
	}
}
