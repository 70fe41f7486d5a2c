package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/design-toolkit/api/colors"
)

var (
	clrDim     = color.New(color.FgHiBlack)
	clrSubtle  = color.New(color.FgWhite)
	clrAccent  = color.New(color.FgCyan, color.Bold)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)

	badge = color.New(color.BgMagenta, color.FgWhite, color.Bold)
)

// Output is where console lines go. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

// PrintBanner prints the service header.
func PrintBanner(version string) {
	fmt.Fprintln(Output)
	fmt.Fprintf(Output, "%s %s\n", badge.Sprint(" ◆ DESIGN TOOLKIT "), clrDim.Sprint(version))
	fmt.Fprintln(Output, clrSubtle.Sprint("Print, canvas, color, type and file size calculators"))
	fmt.Fprintln(Output)
}

// LogStatus writes a timestamped line styled by category: success, error,
// warning or info.
func LogStatus(category, message string) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon, styled string
	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styled = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styled = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styled = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styled = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styled = clrSubtle.Sprint(message)
	}

	fmt.Fprintf(Output, "%s  %s  %s\n", ts, icon, styled)
}

func LogSection(title string) {
	fmt.Fprintln(Output)
	fmt.Fprintf(Output, "%s %s %s\n",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", max(0, 50-len(title)))))
}

func LogItem(label, value string) {
	fmt.Fprintf(Output, "   %s %s\n", clrDim.Sprint(label+":"), clrAccent.Sprint(value))
}

// Swatch renders hex as a true-color block followed by its code. Colors
// that do not parse are printed as plain text.
func Swatch(hex string) string {
	norm, err := colors.NormalizeHex(hex)
	if err != nil {
		return clrDim.Sprint("      ") + " " + hex
	}
	rgb, _ := colors.HexToRGB(norm)
	return color.BgRGB(rgb.R, rgb.G, rgb.B).Sprint("      ") + " " + norm
}

// PrintPalette writes one swatch line per color with its readouts.
func PrintPalette(title string, palette []string) {
	LogSection(title)
	for _, hex := range palette {
		r, err := colors.Describe(hex)
		if err != nil {
			fmt.Fprintf(Output, "   %s\n", Swatch(hex))
			continue
		}
		fmt.Fprintf(Output, "   %s  %s  %s  %s\n",
			Swatch(hex),
			clrSubtle.Sprint(r.RGB),
			clrSubtle.Sprint(r.HSL),
			clrDim.Sprint(r.CMYK))
	}
}
