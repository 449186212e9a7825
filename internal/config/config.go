package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	OSRMBaseURL    string
	GeocodeBaseURL string
	GeocodeAPIKey  string

	// Timeline calibration, percent of drawing width.
	AxisSpan   float64
	AxisOffset float64
}

// Load reads configuration from the environment, after loading .env if
// one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		Port:           getEnv("PORT", ":8080"),
		DBPath:         getEnv("DB_PATH", "./data/eldview.db"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		OSRMBaseURL:    getEnv("OSRM_BASE_URL", "https://router.project-osrm.org"),
		GeocodeBaseURL: getEnv("GEOCODE_BASE_URL", "https://geocode.maps.co"),
		GeocodeAPIKey:  getEnv("GEOCODE_API_KEY", ""),
		AxisSpan:       getEnvFloat("AXIS_SPAN", 70.6),
		AxisOffset:     getEnvFloat("AXIS_OFFSET", 16.66),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
