package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/design-toolkit/api/api"
	"github.com/design-toolkit/api/palettegen"
)

const version = "v1.0.0"

type settings struct {
	API            api.Config
	Palette        palettegen.Config
	PresetsFile    string
	PresetsRefresh time.Duration
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := run(os.Args[1:], loadSettings()); err != nil {
		log.Fatalf("%v", err)
	}
}

func loadSettings() settings {
	return settings{
		API: api.Config{
			HTTPPort:           getEnv("HTTP_PORT", ":8080"),
			AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
			DevMode:            getEnvBool("DEV_MODE", true),
			PaletteTokenSecret: getEnv("PALETTE_TOKEN_SECRET", ""),
		},
		Palette: palettegen.Config{
			APIKey:  getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
			Model:   getEnv("GEMINI_MODEL", palettegen.DefaultModel),
			BaseURL: getEnv("GEMINI_BASE_URL", palettegen.DefaultBaseURL),
			Timeout: time.Duration(getEnvInt("AI_TIMEOUT", 30)) * time.Second,
		},
		PresetsFile:    getEnv("PRESETS_FILE", "presets.toml"),
		PresetsRefresh: time.Duration(getEnvInt("PRESETS_REFRESH", 60)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
