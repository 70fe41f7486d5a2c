package colors

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownScheme = errors.New("unknown harmony scheme")

// MaxHarmonySize caps every generated harmony palette.
const MaxHarmonySize = 5

type Scheme string

const (
	Complementary Scheme = "complementary"
	Triadic       Scheme = "triadic"
	Analogous     Scheme = "analogous"
	Tetradic      Scheme = "tetradic"
	Monochromatic Scheme = "monochromatic"
)

// offset is applied to the base HSL: hue in degrees, lightness in percent.
type offset struct {
	hue       int
	lightness int
}

// Order matters: derived colors are emitted in exactly this sequence.
var schemeOffsets = map[Scheme][]offset{
	Complementary: {{hue: 180}},
	Triadic:       {{hue: 120}, {hue: 240}},
	Analogous:     {{hue: 30}, {hue: -30}},
	Tetradic:      {{hue: 90}, {hue: 180}, {hue: 270}},
	Monochromatic: {{lightness: 20}, {lightness: -20}, {lightness: 40}, {lightness: -40}},
}

// Schemes returns every supported scheme in a stable order.
func Schemes() []Scheme {
	return []Scheme{Complementary, Triadic, Analogous, Tetradic, Monochromatic}
}

func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := schemeOffsets[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// GenerateHarmony derives a palette from baseHex. The first entry is always
// baseHex exactly as given. If baseHex does not parse, the palette is just
// that input.
func GenerateHarmony(baseHex string, scheme Scheme) []string {
	base, err := HexToHSL(baseHex)
	if err != nil {
		return []string{baseHex}
	}

	offsets := schemeOffsets[scheme]
	palette := make([]string, 0, 1+len(offsets))
	palette = append(palette, baseHex)

	for _, o := range offsets {
		h := (base.H + o.hue + 360) % 360
		l := clampPercent(base.L + o.lightness)
		palette = append(palette, HSLToHex(h, base.S, l))
	}

	if len(palette) > MaxHarmonySize {
		palette = palette[:MaxHarmonySize]
	}
	return palette
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
