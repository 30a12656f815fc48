package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Speech   SpeechConfig
	Storage  StorageConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	SchemeTable   string
	QueryLogTable string
}

type OpenAIConfig struct {
	APIKey          string
	BaseURL         string
	ChatModel       string
	MaxOutputTokens int
}

type SpeechConfig struct {
	TTSModel string
	TTSVoice string
	TTSSpeed float64
}

type StorageConfig struct {
	Region       string
	Bucket       string
	KeyPrefix    string
	SignedURLTTL time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine; plain environment variables work for
	// container deployments.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	maxTokens, _ := strconv.Atoi(getEnv("MAX_OUTPUT_TOKENS", "500"))
	ttsSpeed, _ := strconv.ParseFloat(getEnv("TTS_SPEED", "1.0"), 64)
	urlTTL, _ := strconv.Atoi(getEnv("SIGNED_URL_TTL_SECONDS", "3600"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "postgres"),
			Password:      getEnv("DB_PASSWORD", "postgres"),
			DBName:        getEnv("DB_NAME", "yojana_sahayak"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			SchemeTable:   getEnv("SCHEME_TABLE", "schemes"),
			QueryLogTable: getEnv("QUERY_LOG_TABLE", "query_logs"),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			BaseURL:         getEnv("OPENAI_BASE_URL", ""),
			ChatModel:       getEnv("CHAT_MODEL", "gpt-4o-mini"),
			MaxOutputTokens: maxTokens,
		},
		Speech: SpeechConfig{
			TTSModel: getEnv("TTS_MODEL", "tts-1"),
			TTSVoice: getEnv("TTS_VOICE", "shimmer"),
			TTSSpeed: ttsSpeed,
		},
		Storage: StorageConfig{
			Region:       getEnv("AWS_REGION", "ap-south-1"),
			Bucket:       getEnv("AUDIO_BUCKET", "yojana-sahayak-audio"),
			KeyPrefix:    getEnv("AUDIO_KEY_PREFIX", "audio"),
			SignedURLTTL: time.Duration(urlTTL) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
