package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBPath           string
	ServerPort       string
	QuestionsPerPage int
	SeedCategories   bool
	LogLevel         string
	GinMode          string
}

// Load reads configuration from the environment, optionally primed by a
// .env file in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "trivia")
	v.SetDefault("DB_PATH", "trivia.db")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("QUESTIONS_PER_PAGE", 10)
	v.SetDefault("SEED_CATEGORIES", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")

	cfg := &Config{
		DBDriver:         v.GetString("DB_DRIVER"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBPath:           v.GetString("DB_PATH"),
		ServerPort:       v.GetString("SERVER_PORT"),
		QuestionsPerPage: v.GetInt("QUESTIONS_PER_PAGE"),
		SeedCategories:   v.GetBool("SEED_CATEGORIES"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		GinMode:          v.GetString("GIN_MODE"),
	}
	if cfg.QuestionsPerPage <= 0 {
		cfg.QuestionsPerPage = 10
	}
	return cfg
}
