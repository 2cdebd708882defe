package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	GalleryPageSize          int
	MaxThemeLength           int
	MaxGuessLength           int
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
	GeminiAPIKey             string
	GeminiTextModel          string
	GeminiImageModel         string
	JWTSecret                string
	JWTMaxAgeSeconds         int
}

func Default() Config {
	return Config{
		GalleryPageSize:          6,
		MaxThemeLength:           140,
		MaxGuessLength:           60,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
		GeminiTextModel:          "gemini-2.5-flash-lite-preview-06-17",
		GeminiImageModel:         "gemini-2.0-flash-preview-image-generation",
		JWTMaxAgeSeconds:         7 * 24 * 3600,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("GALLERY_PAGE_SIZE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.GalleryPageSize = value
		}
	}
	if raw := os.Getenv("MAX_THEME_LENGTH"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MaxThemeLength = value
		}
	}
	if raw := os.Getenv("MAX_GUESS_LENGTH"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MaxGuessLength = value
		}
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	if raw := os.Getenv("GEMINI_API_KEY"); raw != "" {
		cfg.GeminiAPIKey = raw
	}
	if raw := os.Getenv("GEMINI_TEXT_MODEL"); raw != "" {
		cfg.GeminiTextModel = raw
	}
	if raw := os.Getenv("GEMINI_IMAGE_MODEL"); raw != "" {
		cfg.GeminiImageModel = raw
	}
	if raw := os.Getenv("JWT_SECRET"); raw != "" {
		cfg.JWTSecret = raw
	}
	if raw := os.Getenv("JWT_MAX_AGE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.JWTMaxAgeSeconds = value
		}
	}
	return cfg
}
