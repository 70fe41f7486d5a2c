package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		cleanedAllowed := cleanOrigin(strings.TrimSpace(allowed))
		if cleanedAllowed == "*" || cleanedAllowed == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			referer := r.Header.Get("Referer")
			if referer != "" {
				origin = referer
			}
		}

		if origin == "" {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		if isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	}))
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	mux.HandleFunc("/", app.home)
	mux.Handle("/metrics", promhttp.Handler())

	// Colors
	mux.HandleFunc("/v1/colors/convert", app.instrument("colors_convert", app.convertColor))
	mux.HandleFunc("/v1/colors/harmony", app.instrument("colors_harmony", app.harmonyPalette))
	mux.HandleFunc("/v1/colors/schemes", app.instrument("colors_schemes", app.listSchemes))
	mux.HandleFunc("/v1/palettes/generate", app.instrument("palettes_generate", app.requirePaletteToken(app.generatePalette)))

	// Calculators
	mux.HandleFunc("/v1/calculators/print", app.instrument("calc_print", app.printResolution))
	mux.HandleFunc("/v1/calculators/print/presets", app.instrument("calc_print_presets", app.printPresets))
	mux.HandleFunc("/v1/calculators/canvas", app.instrument("calc_canvas", app.canvasSize))
	mux.HandleFunc("/v1/calculators/canvas/presets", app.instrument("calc_canvas_presets", app.canvasPresets))
	mux.HandleFunc("/v1/calculators/typography", app.instrument("calc_typography", app.typographyScale))
	mux.HandleFunc("/v1/calculators/typography/scales", app.instrument("calc_typography_scales", app.typographyScales))
	mux.HandleFunc("/v1/calculators/filesize", app.instrument("calc_filesize", app.fileSize))

	finalMux.Handle("/", wrapMuxWithCorsAndOrigins(mux, app))

	return finalMux
}
