package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Vector   VectorConfig
	Database DatabaseConfig
	Groq     GroqConfig
	Ai       AIConfig
	Profile  ProfileConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	EmbedTopic         string
}

type VectorConfig struct {
	Provider string // "upstash" or "pgvector"
	RestURL  string
	Token    string
}

type DatabaseConfig struct {
	Connection string
}

type GroqConfig struct {
	APIKey string
	Model  string
}

type AIConfig struct {
	EmbeddingProvider string // "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	OllamaChatModel   string
}

type ProfileConfig struct {
	ProfilePath string
	FoodsPath   string
	DefaultTopK int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			EmbedTopic:         getEnv("EMBED_PROFILE_CHUNK_TOPIC_NAME", "EMBED_PROFILE_CHUNK"),
		},
		Vector: VectorConfig{
			Provider: getEnv("VECTOR_PROVIDER", "upstash"),
			RestURL:  getEnv("UPSTASH_VECTOR_REST_URL", ""),
			Token:    getEnv("UPSTASH_VECTOR_REST_TOKEN", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Groq: GroqConfig{
			APIKey: getEnv("GROQ_API_KEY", ""),
			Model:  getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			OllamaChatModel:   getEnv("OLLAMA_CHAT_MODEL", "llama3.2"),
		},
		Profile: ProfileConfig{
			ProfilePath: getEnv("PROFILE_JSON_PATH", "config/digitaltwin.json"),
			FoodsPath:   getEnv("FOODS_JSON_PATH", "data/foods.json"),
			DefaultTopK: getEnvAsInt("QUERY_TOP_K", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
