package models

import "github.com/design-toolkit/api/calculators"

type PrintRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
	DPI    float64 `json:"dpi"`
}

type CanvasRequest struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	LockRatio bool    `json:"lockRatio"`
	Ratio     float64 `json:"ratio,omitempty"`
	// Preset names a canvas preset to start from.
	Preset string      `json:"preset,omitempty"`
	Set    *CanvasEdit `json:"set,omitempty"`
}

// CanvasEdit changes one edge: Field is "width" or "height".
type CanvasEdit struct {
	Field string `json:"field"`
	Value int    `json:"value"`
}

type CanvasResponse struct {
	calculators.Canvas
	AspectRatio string `json:"aspectRatio"`
}

type TypographyRequest struct {
	BaseSize   float64 `json:"baseSize"`
	Scale      float64 `json:"scale"`
	ScaleName  string  `json:"scaleName,omitempty"`
	Steps      int     `json:"steps"`
	LineHeight float64 `json:"lineHeight"`
}

type TypographyResponse struct {
	BaseSize   float64                `json:"baseSize"`
	Scale      float64                `json:"scale"`
	LineHeight float64                `json:"lineHeight"`
	Steps      []calculators.TypeStep `json:"steps"`
}

type FileSizeRequest struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Format  string `json:"format"`
	Quality *int   `json:"quality,omitempty"`
}

type FileSizeResponse struct {
	Format    string  `json:"format"`
	Quality   int     `json:"quality"`
	Bytes     float64 `json:"bytes"`
	Formatted string  `json:"formatted"`
}
