package palettegen

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"
)

// MinPromptLength is the shortest description worth sending to the model.
const MinPromptLength = 3

var ErrPromptTooShort = errors.New("prompt must be at least 3 characters long")

// Messages shown to the person asking for a palette.
const (
	MsgPromptTooShort = "Prompt must be at least 3 characters long."
	MsgEmptyPalette   = "The AI could not generate a palette from this prompt. Please try a different one."
	MsgUpstreamFailed = "An unexpected error occurred while contacting the AI. Please try again later."
	MsgGenerated      = "Palette generated successfully."
)

var promptTemplate = template.Must(template.New("generateColorPalettePrompt").Parse(
	`You are an experienced graphic designer. Generate a color palette based on the following description: {{.Prompt}}. Return an array of hex codes. Return no more than {{.MaxColors}} colors in the palette.

Output:
`))

func ValidatePrompt(prompt string) error {
	if utf8.RuneCountInString(prompt) < MinPromptLength {
		return ErrPromptTooShort
	}
	return nil
}

// RenderPrompt fills the designer prompt. The description is inserted
// verbatim.
func RenderPrompt(prompt string) (string, error) {
	var b strings.Builder
	err := promptTemplate.Execute(&b, struct {
		Prompt    string
		MaxColors int
	}{prompt, MaxColors})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return b.String(), nil
}
