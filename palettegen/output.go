package palettegen

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxColors caps a generated palette.
const MaxColors = 6

var ErrInvalidOutput = errors.New("model output does not match the palette schema")

var outputHexPattern = regexp.MustCompile(`(?i)^#([0-9a-f]{3}){1,2}$`)

// Output is the structured result the model is asked to produce. Entries
// may use 3-digit shorthand.
type Output struct {
	Palette []string `json:"palette"`
}

// ParseOutput decodes and validates the model's JSON text. Palettes longer
// than MaxColors are cut to the first MaxColors entries.
func ParseOutput(text string) (Output, error) {
	var out Output
	dec := json.NewDecoder(strings.NewReader(stripCodeFence(text)))
	if err := dec.Decode(&out); err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if out.Palette == nil {
		return Output{}, fmt.Errorf("%w: missing palette", ErrInvalidOutput)
	}

	for i, c := range out.Palette {
		if !outputHexPattern.MatchString(c) {
			return Output{}, fmt.Errorf("%w: palette[%d] = %q is not a hex color", ErrInvalidOutput, i, c)
		}
	}

	if len(out.Palette) > MaxColors {
		out.Palette = out.Palette[:MaxColors]
	}
	return out, nil
}

// stripCodeFence removes a surrounding ```json fence some models add even in
// JSON response mode.
func stripCodeFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimPrefix(t, "json")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
