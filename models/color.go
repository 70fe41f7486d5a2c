package models

import (
	"strings"

	"github.com/design-toolkit/api/colors"
)

// Color is the display readout for a single color.
type Color struct {
	Hex  ColorHex  `json:"hex"`
	RGB  ColorRGB  `json:"rgb"`
	HSL  ColorHSL  `json:"hsl"`
	CMYK ColorCMYK `json:"cmyk"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	Fraction Fraction `json:"fraction"`
	R        int      `json:"r"`
	G        int      `json:"g"`
	B        int      `json:"b"`
	Value    string   `json:"value"`
}

type Fraction struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type ColorHSL struct {
	H     int    `json:"h"`
	S     int    `json:"s"`
	L     int    `json:"l"`
	Value string `json:"value"`
}

type ColorCMYK struct {
	C     int    `json:"c"`
	M     int    `json:"m"`
	Y     int    `json:"y"`
	K     int    `json:"k"`
	Value string `json:"value"`
}

func NewColor(r colors.Readout) Color {
	return Color{
		Hex: ColorHex{
			Value: r.Hex,
			Clean: strings.TrimPrefix(r.Hex, "#"),
		},
		RGB: ColorRGB{
			Fraction: Fraction{
				R: float64(r.RGB.R) / 255,
				G: float64(r.RGB.G) / 255,
				B: float64(r.RGB.B) / 255,
			},
			R:     r.RGB.R,
			G:     r.RGB.G,
			B:     r.RGB.B,
			Value: r.RGB.String(),
		},
		HSL: ColorHSL{
			H:     r.HSL.H,
			S:     r.HSL.S,
			L:     r.HSL.L,
			Value: r.HSL.String(),
		},
		CMYK: ColorCMYK{
			C:     r.CMYK.C,
			M:     r.CMYK.M,
			Y:     r.CMYK.Y,
			K:     r.CMYK.K,
			Value: r.CMYK.String(),
		},
	}
}

// HarmonyResponse is a generated harmony palette. Colors is empty when the
// base color could not be parsed.
type HarmonyResponse struct {
	Base    string   `json:"base"`
	Scheme  string   `json:"scheme"`
	Palette []string `json:"palette"`
	Colors  []Color  `json:"colors"`
}

type SchemesResponse struct {
	Schemes []string `json:"schemes"`
}
