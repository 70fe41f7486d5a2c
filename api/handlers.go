package api

import (
	"fmt"
	"net/http"

	"github.com/design-toolkit/api/colors"
	"github.com/design-toolkit/api/models"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Design Toolkit API")
}

// GET /v1/colors/convert?hex=
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	readout, err := colors.Describe(r.URL.Query().Get("hex"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewColor(readout))
}

// GET /v1/colors/harmony?hex=&scheme=
func (app *Application) harmonyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	name := r.URL.Query().Get("scheme")
	if name == "" {
		name = string(colors.Complementary)
	}
	scheme, err := colors.ParseScheme(name)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	base := r.URL.Query().Get("hex")
	palette := colors.GenerateHarmony(base, scheme)
	MetricHarmonies.WithLabelValues(string(scheme)).Inc()

	response := models.HarmonyResponse{
		Base:    base,
		Scheme:  string(scheme),
		Palette: palette,
		Colors:  []models.Color{},
	}

	// An unparseable base comes back as-is with no readouts.
	if _, err := colors.HexToRGB(base); err == nil {
		for _, hex := range palette {
			readout, err := colors.Describe(hex)
			if err != nil {
				app.internalServerError(w, r, err)
				return
			}
			response.Colors = append(response.Colors, models.NewColor(readout))
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /v1/colors/schemes
func (app *Application) listSchemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	response := models.SchemesResponse{}
	for _, s := range colors.Schemes() {
		response.Schemes = append(response.Schemes, string(s))
	}

	writeJSON(w, http.StatusOK, response)
}
