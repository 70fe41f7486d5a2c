package calculators

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownUnit = errors.New("unknown unit")

// DefaultDPI is used whenever no usable resolution is supplied.
const DefaultDPI = 72

const cmPerInch = 2.54

type Unit string

const (
	Pixels      Unit = "px"
	Inches      Unit = "in"
	Centimeters Unit = "cm"
)

func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case Pixels, Inches, Centimeters:
		return u, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Dimension is one edge of a print expressed in every unit.
type Dimension struct {
	Px float64 `json:"px"`
	In float64 `json:"in"`
	Cm float64 `json:"cm"`
}

type PrintSize struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	DPI    float64   `json:"dpi"`
}

// round2 rounds to two decimals, half up.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}

func effectiveDPI(dpi float64) float64 {
	if dpi == 0 || math.IsNaN(dpi) {
		return DefaultDPI
	}
	return dpi
}

// ConvertDimension expresses value, given in unit, in pixels, inches and
// centimeters. Derived values are rounded to two decimals; the input value
// is passed through unchanged.
func ConvertDimension(value float64, unit Unit, dpi float64) Dimension {
	if math.IsNaN(value) {
		value = 0
	}
	dpi = effectiveDPI(dpi)

	switch unit {
	case Inches:
		return Dimension{Px: round2(value * dpi), In: value, Cm: round2(value * cmPerInch)}
	case Centimeters:
		in := value / cmPerInch
		return Dimension{Px: round2(in * dpi), In: round2(in), Cm: value}
	default:
		in := value / dpi
		return Dimension{Px: value, In: round2(in), Cm: round2(in * cmPerInch)}
	}
}

func Resolve(width, height float64, unit Unit, dpi float64) PrintSize {
	return PrintSize{
		Width:  ConvertDimension(width, unit, dpi),
		Height: ConvertDimension(height, unit, dpi),
		DPI:    effectiveDPI(dpi),
	}
}

// PrintPreset is a common physical or screen size. Width and Height are in
// Unit at DPI.
type PrintPreset struct {
	Name   string  `json:"name" toml:"name"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
	Unit   Unit    `json:"unit" toml:"unit"`
	DPI    float64 `json:"dpi" toml:"dpi"`
}

func (p PrintPreset) Size() PrintSize {
	return Resolve(p.Width, p.Height, p.Unit, p.DPI)
}

func defaultPrintPresets() []PrintPreset {
	return []PrintPreset{
		{Name: "Business Card (US)", Width: 3.5, Height: 2, Unit: Inches, DPI: 300},
		{Name: "A4", Width: 8.27, Height: 11.69, Unit: Inches, DPI: 300},
		{Name: "US Letter", Width: 8.5, Height: 11, Unit: Inches, DPI: 300},
		{Name: "1080p Screen", Width: 1920, Height: 1080, Unit: Pixels, DPI: 72},
	}
}
