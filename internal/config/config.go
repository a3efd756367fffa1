// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DomainProfile maps a human-facing domain label to the search keyword
// used both for the listings query and the keyword shortcut.
type DomainProfile struct {
	Label   string
	Keyword string
}

type Config struct {
	//API keys
	GroqAPIKey      string `yaml:"groq_api_key" env:"GROQ_API_KEY"`
	TavilyAPIKey    string `yaml:"tavily_api_key" env:"TAVILY_API_KEY"`
	FirecrawlAPIKey string `yaml:"firecrawl_api_key" env:"FIRECRAWL_API_KEY"`
	//Telegram (optional, reporting only)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Domain label -> search keyword
	Domains map[string]string `yaml:"domains"`
	//Disqualified employers
	Competitors []string `yaml:"competitors"`
	//Paths
	CachePath string `yaml:"cache_path"`
	LogsPath  string `yaml:"logs_path"`
	//Outbound API calls per second
	RateLimit float64 `yaml:"rate_limit"`
}

// defaultDomains is the built-in domain table, used when the yaml
// config does not provide one.
var defaultDomains = map[string]string{
	"Data Science":           "data scientist",
	"Human Resources":        "human resources",
	"Digital Transformation": "digital transformation",
	"Cyber Security":         "cyber security",
	"FinTech":                "fintech",
	"Project Management":     "project management",
	"Strategic Management":   "strategic management",
	"Business Management":    "business management",
	"General Management":     "general management",
	"Product Management":     "product management",
}

// defaultCompetitors is the fixed disqualification list; postings from
// these employers are always dropped once detected.
var defaultCompetitors = []string{
	"BYJU'S", "Unacademy", "Vedantu", "Toppr", "UpGrad", "Simplilearn",
	"WhiteHat Jr.", "Classplus", "Embibe", "EduGorilla", "iQuanta",
	"TrainerCentral", "Meritnation", "Testbook", "Edukart", "Adda247",
	"CollegeDekho", "Leverage Edu", "Next Education", "Infinity Learn",
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		cfg.GroqAPIKey = key
	}
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		cfg.TavilyAPIKey = key
	}
	if key := os.Getenv("FIRECRAWL_API_KEY"); key != "" {
		cfg.FirecrawlAPIKey = key
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if len(cfg.Domains) == 0 {
		cfg.Domains = defaultDomains
	}
	if len(cfg.Competitors) == 0 {
		cfg.Competitors = defaultCompetitors
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
	if cfg.LogsPath == "" {
		cfg.LogsPath = "logs"
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 2
	}

	//Validate required fields
	if cfg.GroqAPIKey == "" {
		log.Fatal("GROQ_API_KEY is required")
	}
	if cfg.TavilyAPIKey == "" {
		log.Fatal("TAVILY_API_KEY is required")
	}

	return cfg
}

// Profile looks up the DomainProfile for a domain label.
func (c *Config) Profile(label string) (DomainProfile, bool) {
	keyword, ok := c.Domains[label]
	if !ok {
		return DomainProfile{}, false
	}
	return DomainProfile{Label: label, Keyword: keyword}, true
}

// DomainLabels returns the configured domain labels, sorted.
func (c *Config) DomainLabels() []string {
	labels := make([]string, 0, len(c.Domains))
	for label := range c.Domains {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
