package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/design-toolkit/api/calculators"
	"github.com/design-toolkit/api/models"
)

const (
	defaultBaseSize   = 16
	defaultScale      = 1.25
	defaultSteps      = 5
	maxSteps          = 20
	defaultLineHeight = 1.5
	defaultQuality    = 80

	maxJSONBody = 16 << 10
)

var ErrNotFinite = errors.New("result is too large to represent")

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return json.NewDecoder(r.Body).Decode(v)
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// POST /v1/calculators/print
func (app *Application) printResolution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.PrintRequest{}
	if err := decodeJSON(w, r, req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if req.Unit == "" {
		req.Unit = string(calculators.Pixels)
	}
	unit, err := calculators.ParseUnit(req.Unit)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if req.Width < 0 || req.Height < 0 || req.DPI < 0 {
		app.badRequest(w, r, errors.New("width, height and dpi must not be negative"))
		return
	}

	size := calculators.Resolve(req.Width, req.Height, unit, req.DPI)
	if !finite(size.Width.Px, size.Width.In, size.Width.Cm, size.Height.Px, size.Height.In, size.Height.Cm) {
		app.badRequest(w, r, ErrNotFinite)
		return
	}

	writeJSON(w, http.StatusOK, size)
}

// GET /v1/calculators/print/presets
func (app *Application) printPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	writeJSON(w, http.StatusOK, app.Presets.Catalog().Print)
}

// POST /v1/calculators/canvas
func (app *Application) canvasSize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.CanvasRequest{}
	if err := decodeJSON(w, r, req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if req.Width < 0 || req.Height < 0 {
		app.badRequest(w, r, errors.New("width and height must not be negative"))
		return
	}

	canvas := calculators.NewCanvas(req.Width, req.Height, req.LockRatio)
	if req.Ratio > 0 {
		canvas.Ratio = req.Ratio
	}

	if req.Preset != "" {
		preset, ok := app.findCanvasPreset(req.Preset)
		if !ok {
			app.badRequest(w, r, fmt.Errorf("unknown canvas preset %q", req.Preset))
			return
		}
		canvas.ApplyPreset(preset)
	}

	if req.Set != nil {
		if req.Set.Value < 0 {
			app.badRequest(w, r, errors.New("edge value must not be negative"))
			return
		}
		switch req.Set.Field {
		case "width":
			canvas.SetWidth(req.Set.Value)
		case "height":
			canvas.SetHeight(req.Set.Value)
		default:
			app.badRequest(w, r, fmt.Errorf("unknown canvas field %q", req.Set.Field))
			return
		}
	}

	if !finite(canvas.Ratio) {
		app.badRequest(w, r, ErrNotFinite)
		return
	}

	writeJSON(w, http.StatusOK, models.CanvasResponse{
		Canvas:      canvas,
		AspectRatio: canvas.AspectRatio(),
	})
}

func (app *Application) findCanvasPreset(name string) (calculators.CanvasPreset, bool) {
	for _, group := range app.Presets.Catalog().Canvas {
		for _, p := range group.Presets {
			if p.Name == name {
				return p, true
			}
		}
	}
	return calculators.CanvasPreset{}, false
}

// GET /v1/calculators/canvas/presets
func (app *Application) canvasPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	writeJSON(w, http.StatusOK, app.Presets.Catalog().Canvas)
}

// POST /v1/calculators/typography
func (app *Application) typographyScale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.TypographyRequest{}
	if err := decodeJSON(w, r, req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if req.ScaleName != "" {
		ratio, ok := app.Presets.Catalog().FindTypeScale(req.ScaleName)
		if !ok {
			app.badRequest(w, r, fmt.Errorf("unknown type scale %q", req.ScaleName))
			return
		}
		req.Scale = ratio.Value
	}

	if req.BaseSize == 0 {
		req.BaseSize = defaultBaseSize
	}
	if req.Scale == 0 {
		req.Scale = defaultScale
	}
	if req.Steps == 0 {
		req.Steps = defaultSteps
	}
	if req.LineHeight == 0 {
		req.LineHeight = defaultLineHeight
	}

	if req.BaseSize < 0 || req.Scale < 0 || req.LineHeight < 0 {
		app.badRequest(w, r, errors.New("baseSize, scale and lineHeight must be positive"))
		return
	}
	if req.Steps < 0 || req.Steps > maxSteps {
		app.badRequest(w, r, fmt.Errorf("steps must be between 1 and %d", maxSteps))
		return
	}

	steps := calculators.TypeScale(req.BaseSize, req.Scale, req.Steps, req.LineHeight)
	for _, s := range steps {
		if !finite(s.Size, s.LineHeight) {
			app.badRequest(w, r, ErrNotFinite)
			return
		}
	}

	writeJSON(w, http.StatusOK, models.TypographyResponse{
		BaseSize:   req.BaseSize,
		Scale:      req.Scale,
		LineHeight: req.LineHeight,
		Steps:      steps,
	})
}

// GET /v1/calculators/typography/scales
func (app *Application) typographyScales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	writeJSON(w, http.StatusOK, app.Presets.Catalog().TypeScales)
}

// POST /v1/calculators/filesize
func (app *Application) fileSize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.FileSizeRequest{}
	if err := decodeJSON(w, r, req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	format, err := calculators.ParseFormat(req.Format)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if req.Width < 0 || req.Height < 0 {
		app.badRequest(w, r, errors.New("width and height must not be negative"))
		return
	}

	quality := defaultQuality
	if req.Quality != nil {
		quality = *req.Quality
	}
	if quality < 1 || quality > 100 {
		app.badRequest(w, r, errors.New("quality must be between 1 and 100"))
		return
	}

	bytes := calculators.EstimateBytes(req.Width, req.Height, format, quality)
	if !finite(bytes) {
		app.badRequest(w, r, ErrNotFinite)
		return
	}
	writeJSON(w, http.StatusOK, models.FileSizeResponse{
		Format:    string(format),
		Quality:   quality,
		Bytes:     bytes,
		Formatted: calculators.FormatBytes(bytes, 2),
	})
}
