package models

// PaletteRequest asks the model for a palette matching a description.
type PaletteRequest struct {
	Prompt string `json:"prompt"`
}

// ColorPaletteState is returned for every palette generation attempt.
// Exactly one of Error or Message is set.
type ColorPaletteState struct {
	Palette []string `json:"palette,omitempty"`
	Colors  []Color  `json:"colors,omitempty"`
	Error   string   `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
}
