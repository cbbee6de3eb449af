package config

import "os"

type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	RedisURL         string
	JWTSecret        string
	ShortsFile       string
	SheetID          string
	SheetCredentials string
	CORSOrigin       string
}

func Load() Config {
	return Config{
		Port:             envOrDefault("PORT", "8000"),
		MongoURI:         envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          envOrDefault("MONGO_DB", "trektribe"),
		RedisURL:         envOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		ShortsFile:       envOrDefault("SHORTS_FILE", "data/blogs.json"),
		SheetID:          os.Getenv("SHEET_ID"),
		SheetCredentials: os.Getenv("SHEET_CREDENTIALS_FILE"),
		CORSOrigin:       os.Getenv("CORS_ORIGIN"),
	}
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
