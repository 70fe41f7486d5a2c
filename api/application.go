package api

import (
	"context"

	"github.com/design-toolkit/api/calculators"
)

type Config struct {
	HTTPPort           string
	AllowedOrigins     []string
	DevMode            bool
	PaletteTokenSecret string
}

// PaletteGenerator turns a free-text description into hex colors.
type PaletteGenerator interface {
	Generate(ctx context.Context, prompt string) ([]string, error)
}

type Application struct {
	Config  Config
	Presets *calculators.Store
	// Palettes is nil when no model is configured.
	Palettes PaletteGenerator
}
