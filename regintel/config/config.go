package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// OpenAI (embeddings + chat completions)
	OpenAIAPIKey string `yaml:"openai_api_key"`

	// Milvus REST endpoint
	MilvusURI   string `yaml:"milvus_uri"`
	MilvusToken string `yaml:"milvus_token"`

	// Collection names, overridable per deployment
	RSSFeedsCollection          string `yaml:"rss_feeds_collection"`
	FDAWarningLettersCollection string `yaml:"fda_warning_letters_collection"`
	DefaultCollection           string `yaml:"default_collection"`

	// Retrieval flags. Reranking and the search multiplier are accepted
	// but not consulted by the retrieval path yet.
	StrictRAGOnly           bool   `yaml:"strict_rag_only"`
	EnableReranking         bool   `yaml:"enable_reranking"`
	RerankingModel          string `yaml:"reranking_model"`
	InitialSearchMultiplier int    `yaml:"initial_search_multiplier"`

	// Optional .properties file overriding the built-in system prompts.
	PromptsFile string `yaml:"prompts_file"`
}

// LoadConfig reads configuration from defaults, then an optional YAML file
// pointed at by REGINTEL_CONFIG, then environment variables. Env wins.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:                        "8000",
		RSSFeedsCollection:          "rss_feeds",
		FDAWarningLettersCollection: "fda_warning_letters",
		StrictRAGOnly:               true,
		RerankingModel:              "o3",
		InitialSearchMultiplier:     3,
	}

	if path := os.Getenv("REGINTEL_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.MilvusURI = getEnv("MILVUS_URI", cfg.MilvusURI)
	cfg.MilvusToken = getEnv("MILVUS_TOKEN", cfg.MilvusToken)
	cfg.RSSFeedsCollection = getEnv("RSS_FEEDS_COLLECTION", cfg.RSSFeedsCollection)
	cfg.FDAWarningLettersCollection = getEnv("FDA_WARNING_LETTERS_COLLECTION", cfg.FDAWarningLettersCollection)
	if cfg.DefaultCollection == "" {
		cfg.DefaultCollection = cfg.RSSFeedsCollection
	}
	cfg.DefaultCollection = getEnv("DEFAULT_COLLECTION", cfg.DefaultCollection)
	cfg.StrictRAGOnly = getEnvBool("STRICT_RAG_ONLY", cfg.StrictRAGOnly)
	cfg.EnableReranking = getEnvBool("ENABLE_RERANKING", cfg.EnableReranking)
	cfg.RerankingModel = getEnv("RERANKING_MODEL", cfg.RerankingModel)
	cfg.InitialSearchMultiplier = getEnvInt("INITIAL_SEARCH_MULTIPLIER", cfg.InitialSearchMultiplier)
	cfg.PromptsFile = getEnv("REGINTEL_PROMPTS", cfg.PromptsFile)

	return cfg
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return strings.ToLower(value) == "true"
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
