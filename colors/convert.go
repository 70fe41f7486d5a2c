package colors

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidHex = errors.New("invalid hex color")

var (
	hexPattern   = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	shortPattern = regexp.MustCompile(`^#?([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
)

// RGB is an sRGB color with channels in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees and saturation/lightness as whole percentages.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// CMYK holds whole percentages. It is a display approximation only.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// round rounds half up, matching how the toolkit's browser front end rounds.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// HexToRGB parses a strict 6-digit hex color. The leading '#' is optional.
// Shorthand forms are rejected; see NormalizeHex.
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		ch[i] = int(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats channels as an uppercase "#RRGGBB" string.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// RGBToHSL converts using the min/max channel algorithm.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	cmax := math.Max(rf, math.Max(gf, bf))
	cmin := math.Min(rf, math.Min(gf, bf))

	var h, s float64
	l := (cmax + cmin) / 2

	if cmax != cmin {
		d := cmax - cmin
		if l > 0.5 {
			s = d / (2 - cmax - cmin)
		} else {
			s = d / (cmax + cmin)
		}

		switch cmax {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		default:
			h = (rf-gf)/d + 4
		}
		h /= 6
	}

	return HSL{H: round(h * 360), S: round(s * 100), L: round(l * 100)}
}

// HSLToRGB converts with the closed-form k/a/f expression. Inputs are not
// range checked.
func HSLToRGB(h, s, l int) RGB {
	sf := float64(s) / 100
	lf := float64(l) / 100
	a := sf * math.Min(lf, 1-lf)

	f := func(n float64) int {
		k := math.Mod(n+float64(h)/30, 12)
		return round(255 * (lf - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))))
	}

	return RGB{R: f(0), G: f(8), B: f(4)}
}

func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb.R, rgb.G, rgb.B), nil
}

func HSLToHex(h, s, l int) string {
	rgb := HSLToRGB(h, s, l)
	return RGBToHex(rgb.R, rgb.G, rgb.B)
}

// RGBToCMYK derives CMYK percentages. Pure black, and anything whose key
// saturates to 1, maps to (0,0,0,100).
func RGBToCMYK(r, g, b int) CMYK {
	if r == 0 && g == 0 && b == 0 {
		return CMYK{K: 100}
	}

	c := 1 - float64(r)/255
	m := 1 - float64(g)/255
	y := 1 - float64(b)/255

	k := math.Min(c, math.Min(m, y))
	if k == 1 {
		return CMYK{K: 100}
	}

	c = (c - k) / (1 - k)
	m = (m - k) / (1 - k)
	y = (y - k) / (1 - k)

	return CMYK{
		C: round(c * 100),
		M: round(m * 100),
		Y: round(y * 100),
		K: round(k * 100),
	}
}

// NormalizeHex accepts 3- or 6-digit hex, with or without '#', and returns
// the canonical uppercase "#RRGGBB" form.
func NormalizeHex(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if m := shortPattern.FindStringSubmatch(hex); m != nil {
		hex = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}

	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb.R, rgb.G, rgb.B), nil
}
