package calculators

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown image format")

type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JPEG, PNG:
		return f, nil
	case "jpg":
		return JPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// EstimateBytes gives a rough encoded size. JPEG assumes 24-bit source data
// scaled by a quality dependent factor; PNG assumes 32-bit data with a fixed
// 0.3 compression factor. quality only affects JPEG.
func EstimateBytes(w, h int, f Format, quality int) float64 {
	pixels := float64(w) * float64(h)
	if pixels == 0 {
		return 0
	}

	switch f {
	case JPEG:
		factor := 0.05 + float64(100-quality)/100*0.4
		return pixels * 3 * factor
	case PNG:
		return pixels * 4 * 0.3
	default:
		return 0
	}
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatBytes renders bytes in binary units with at most decimals places,
// dropping trailing zeros.
func FormatBytes(bytes float64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	const k = 1024
	i := int(math.Floor(math.Log(bytes) / math.Log(k)))
	if i < 0 {
		i = 0
	}
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	scaled := bytes / math.Pow(k, float64(i))
	p := math.Pow(10, float64(decimals))
	scaled = math.Floor(scaled*p+0.5) / p

	return strconv.FormatFloat(scaled, 'f', -1, 64) + " " + byteUnits[i]
}
