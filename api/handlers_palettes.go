package api

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"

	"github.com/design-toolkit/api/colors"
	"github.com/design-toolkit/api/models"
	"github.com/design-toolkit/api/palettegen"
)

func readPaletteRequest(w http.ResponseWriter, r *http.Request) (models.PaletteRequest, error) {
	req := models.PaletteRequest{}
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxJSONBody); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return req, err
		}
		req.Prompt = r.FormValue("prompt")
		return req, nil
	default:
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
}

// POST /v1/palettes/generate
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	if app.Palettes == nil {
		MetricPalettes.WithLabelValues("unconfigured").Inc()
		app.serviceUnavailable(w, r, ErrNotConfigured)
		return
	}

	req, err := readPaletteRequest(w, r)
	if err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := palettegen.ValidatePrompt(req.Prompt); err != nil {
		MetricPalettes.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, models.ColorPaletteState{Error: palettegen.MsgPromptTooShort})
		return
	}

	palette, err := app.Palettes.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("palette generation failed (request %s): %v", w.Header().Get(requestIDHeader), err)
		MetricPalettes.WithLabelValues("failed").Inc()
		writeJSON(w, http.StatusBadGateway, models.ColorPaletteState{Error: palettegen.MsgUpstreamFailed})
		return
	}

	if len(palette) == 0 {
		MetricPalettes.WithLabelValues("empty").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, models.ColorPaletteState{Error: palettegen.MsgEmptyPalette})
		return
	}

	state := models.ColorPaletteState{Message: palettegen.MsgGenerated}
	for _, c := range palette {
		hex, err := colors.NormalizeHex(c)
		if err != nil {
			log.Printf("dropping model color %q: %v", c, err)
			continue
		}
		readout, err := colors.Describe(hex)
		if err != nil {
			continue
		}
		state.Palette = append(state.Palette, hex)
		state.Colors = append(state.Colors, models.NewColor(readout))
	}

	if len(state.Palette) == 0 {
		MetricPalettes.WithLabelValues("empty").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, models.ColorPaletteState{Error: palettegen.MsgEmptyPalette})
		return
	}

	MetricPalettes.WithLabelValues("generated").Inc()
	writeJSON(w, http.StatusOK, state)
}
