package colors

import "fmt"

// Readout is every representation of one color the toolkit displays.
type Readout struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSL  HSL    `json:"hsl"`
	CMYK CMYK   `json:"cmyk"`
}

// Describe builds a Readout for a strict 6-digit hex color.
func Describe(hex string) (Readout, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Readout{}, err
	}

	return Readout{
		Hex:  RGBToHex(rgb.R, rgb.G, rgb.B),
		RGB:  rgb,
		HSL:  RGBToHSL(rgb.R, rgb.G, rgb.B),
		CMYK: RGBToCMYK(rgb.R, rgb.G, rgb.B),
	}, nil
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)", c.H, c.S, c.L)
}

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%,%d%%,%d%%,%d%%)", c.C, c.M, c.Y, c.K)
}
