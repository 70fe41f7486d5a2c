package calculators

import "fmt"

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// AspectRatio reduces w:h by their greatest common divisor.
func AspectRatio(w, h int) string {
	if w == 0 || h == 0 {
		return "0:0"
	}
	d := gcd(w, h)
	return fmt.Sprintf("%d:%d", w/d, h/d)
}

// Canvas tracks a width/height pair with an optional aspect ratio lock.
type Canvas struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Ratio  float64 `json:"ratio"`
	Locked bool    `json:"lockRatio"`
}

func NewCanvas(w, h int, locked bool) Canvas {
	c := Canvas{Width: w, Height: h, Locked: locked}
	if h != 0 {
		c.Ratio = float64(w) / float64(h)
	}
	return c
}

// SetWidth changes the width. A locked canvas follows with the height, an
// unlocked one adopts the new ratio.
func (c *Canvas) SetWidth(w int) {
	c.Width = w
	if c.Locked {
		if c.Ratio != 0 {
			c.Height = roundInt(float64(w) / c.Ratio)
		}
		return
	}
	if c.Height != 0 {
		c.Ratio = float64(w) / float64(c.Height)
	}
}

func (c *Canvas) SetHeight(h int) {
	c.Height = h
	if c.Locked {
		c.Width = roundInt(float64(h) * c.Ratio)
		return
	}
	if h != 0 {
		c.Ratio = float64(c.Width) / float64(h)
	}
}

// SetLocked toggles the lock. Locking captures the current ratio.
func (c *Canvas) SetLocked(locked bool) {
	c.Locked = locked
	if locked && c.Height != 0 {
		c.Ratio = float64(c.Width) / float64(c.Height)
	}
}

// ApplyPreset resets both edges and the ratio.
func (c *Canvas) ApplyPreset(p CanvasPreset) {
	c.Width = p.Width
	c.Height = p.Height
	if p.Height != 0 {
		c.Ratio = float64(p.Width) / float64(p.Height)
	}
}

func (c Canvas) AspectRatio() string {
	return AspectRatio(c.Width, c.Height)
}

type CanvasPreset struct {
	Name   string `json:"name" toml:"name"`
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
}

type CanvasPresetGroup struct {
	Group   string         `json:"group" toml:"group"`
	Presets []CanvasPreset `json:"presets" toml:"presets"`
}

func defaultCanvasPresets() []CanvasPresetGroup {
	return []CanvasPresetGroup{
		{Group: "Social Media", Presets: []CanvasPreset{
			{Name: "Instagram Post (1:1)", Width: 1080, Height: 1080},
			{Name: "Instagram Story (9:16)", Width: 1080, Height: 1920},
			{Name: "Facebook Post (1.91:1)", Width: 1200, Height: 630},
			{Name: "Twitter Post (16:9)", Width: 1600, Height: 900},
		}},
		{Group: "Print", Presets: []CanvasPreset{
			{Name: "A4", Width: 2480, Height: 3508},
			{Name: "US Letter", Width: 2550, Height: 3300},
			{Name: "Business Card (US)", Width: 1050, Height: 600},
		}},
		{Group: "Web", Presets: []CanvasPreset{
			{Name: "Web Banner (728x90)", Width: 728, Height: 90},
			{Name: "Web Banner (300x250)", Width: 300, Height: 250},
			{Name: "Full HD Screen (1920x1080)", Width: 1920, Height: 1080},
		}},
	}
}
