package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design-toolkit/api/calculators"
	"github.com/design-toolkit/api/models"
	"github.com/design-toolkit/api/palettegen"
)

type fakeGenerator struct {
	palette []string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) ([]string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.palette, f.err
}

func newTestApp(gen PaletteGenerator) *Application {
	return &Application{
		Config:   Config{HTTPPort: ":0", DevMode: true},
		Presets:  calculators.NewStore(calculators.DefaultCatalog()),
		Palettes: gen,
	}
}

func serve(t *testing.T, app *Application, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	app.BuildRoutes(http.NewServeMux()).ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHome(t *testing.T) {
	app := newTestApp(nil)

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Design Toolkit API", rec.Body.String())

	rec = serve(t, app, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConvertColor(t *testing.T) {
	app := newTestApp(nil)

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/v1/colors/convert?hex="+url.QueryEscape("#2E9AFE"), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	c := decode[models.Color](t, rec)
	assert.Equal(t, "#2E9AFE", c.Hex.Value)
	assert.Equal(t, "rgb(46,154,254)", c.RGB.Value)
	assert.Equal(t, "hsl(209,99%,59%)", c.HSL.Value)
	assert.Equal(t, "cmyk(82%,39%,0%,0%)", c.CMYK.Value)
}

func TestConvertColorErrors(t *testing.T) {
	app := newTestApp(nil)

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/v1/colors/convert?hex=zzz", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	herr := decode[HandlerError](t, rec)
	assert.Equal(t, "Bad Request", herr.ErrorName)
	assert.Contains(t, herr.Description, "invalid hex color")
	assert.NotEmpty(t, herr.RequestID)
	assert.Equal(t, rec.Header().Get(requestIDHeader), herr.RequestID)

	rec = serve(t, app, httptest.NewRequest(http.MethodPost, "/v1/colors/convert?hex=FFFFFF", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestHarmonyPalette(t *testing.T) {
	app := newTestApp(nil)

	tests := map[string]struct {
		query   string
		code    int
		palette []string
		colors  int
	}{
		"triadic": {
			query:   "hex=" + url.QueryEscape("#2E9AFE") + "&scheme=triadic",
			code:    http.StatusOK,
			palette: []string{"#2E9AFE", "#FE2F9A", "#9AFE2F"},
			colors:  3,
		},
		"default scheme is complementary": {
			query:   "hex=" + url.QueryEscape("#2E9AFE"),
			code:    http.StatusOK,
			palette: []string{"#2E9AFE", "#FE932F"},
			colors:  2,
		},
		"base is echoed untrimmed": {
			query:   "hex=" + url.QueryEscape(" #2E9AFE") + "&scheme=triadic",
			code:    http.StatusOK,
			palette: []string{" #2E9AFE"},
			colors:  0,
		},
		"invalid base falls back": {
			query:   "hex=nothex&scheme=analogous",
			code:    http.StatusOK,
			palette: []string{"nothex"},
			colors:  0,
		},
		"unknown scheme": {
			query: "hex=" + url.QueryEscape("#2E9AFE") + "&scheme=split",
			code:  http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/v1/colors/harmony?"+tt.query, nil))
			require.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				return
			}
			resp := decode[models.HarmonyResponse](t, rec)
			assert.Equal(t, tt.palette, resp.Palette)
			assert.Len(t, resp.Colors, tt.colors)
		})
	}
}

func TestListSchemes(t *testing.T) {
	rec := serve(t, newTestApp(nil), httptest.NewRequest(http.MethodGet, "/v1/colors/schemes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.SchemesResponse](t, rec)
	assert.Equal(t, []string{"complementary", "triadic", "analogous", "tetradic", "monochromatic"}, resp.Schemes)
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestGeneratePalette(t *testing.T) {
	gen := &fakeGenerator{palette: []string{"#abc", "#1E90FF", "#FFFFFF", "#000000", "#ff00ff"}}
	app := newTestApp(gen)

	rec := serve(t, app, postJSON("/v1/palettes/generate", `{"prompt":"ocean at dusk"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[models.ColorPaletteState](t, rec)
	assert.Equal(t, palettegen.MsgGenerated, state.Message)
	assert.Empty(t, state.Error)
	assert.Equal(t, []string{"#AABBCC", "#1E90FF", "#FFFFFF", "#000000", "#FF00FF"}, state.Palette)
	require.Len(t, state.Colors, 5)
	assert.Equal(t, "rgb(170,187,204)", state.Colors[0].RGB.Value)
	assert.Equal(t, []string{"ocean at dusk"}, gen.prompts)
}

func TestGeneratePaletteFormBody(t *testing.T) {
	gen := &fakeGenerator{palette: []string{"#FF0000"}}
	app := newTestApp(gen)

	req := httptest.NewRequest(http.MethodPost, "/v1/palettes/generate", strings.NewReader(url.Values{"prompt": {"fire"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := serve(t, app, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"fire"}, gen.prompts)
}

func TestGeneratePaletteFailures(t *testing.T) {
	tests := map[string]struct {
		gen   PaletteGenerator
		body  string
		code  int
		error string
	}{
		"prompt too short": {
			gen:   &fakeGenerator{palette: []string{"#FFFFFF"}},
			body:  `{"prompt":"ab"}`,
			code:  http.StatusBadRequest,
			error: palettegen.MsgPromptTooShort,
		},
		"empty palette": {
			gen:   &fakeGenerator{palette: []string{}},
			body:  `{"prompt":"nothing at all"}`,
			code:  http.StatusUnprocessableEntity,
			error: palettegen.MsgEmptyPalette,
		},
		"model failure": {
			gen:   &fakeGenerator{err: errors.New("boom")},
			body:  `{"prompt":"forest"}`,
			code:  http.StatusBadGateway,
			error: palettegen.MsgUpstreamFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, newTestApp(tt.gen), postJSON("/v1/palettes/generate", tt.body))
			require.Equal(t, tt.code, rec.Code)
			state := decode[models.ColorPaletteState](t, rec)
			assert.Equal(t, tt.error, state.Error)
			assert.Empty(t, state.Message)
			assert.Empty(t, state.Palette)
		})
	}
}

func TestGeneratePaletteNotConfigured(t *testing.T) {
	rec := serve(t, newTestApp(nil), postJSON("/v1/palettes/generate", `{"prompt":"forest"}`))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	herr := decode[HandlerError](t, rec)
	assert.Equal(t, ErrNotConfigured.Error(), herr.Description)
}

func TestGeneratePaletteBadJSON(t *testing.T) {
	rec := serve(t, newTestApp(&fakeGenerator{}), postJSON("/v1/palettes/generate", `{"prompt":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	herr := decode[HandlerError](t, rec)
	assert.Equal(t, "Error Parsing JSON", herr.ErrorName)
}

func TestGeneratePaletteToken(t *testing.T) {
	gen := &fakeGenerator{palette: []string{"#FF0000"}}
	app := newTestApp(gen)
	app.Config.PaletteTokenSecret = "s3cret"

	token, _, err := models.NewPaletteToken("s3cret", "cli", time.Hour)
	require.NoError(t, err)

	rec := serve(t, app, postJSON("/v1/palettes/generate", `{"prompt":"fire"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := postJSON("/v1/palettes/generate", `{"prompt":"fire"}`)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = serve(t, app, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = postJSON("/v1/palettes/generate", `{"prompt":"fire"}`)
	req.AddCookie(&http.Cookie{Name: models.JWT.PALETTE_COOKIE_NAME, Value: token})
	rec = serve(t, app, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = postJSON("/v1/palettes/generate", `{"prompt":"fire"}`)
	req.Header.Set("Authorization", "Token "+token)
	rec = serve(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Len(t, gen.prompts, 2)
}

func TestPrintResolution(t *testing.T) {
	app := newTestApp(nil)

	rec := serve(t, app, postJSON("/v1/calculators/print", `{"width":8.27,"height":11.69,"unit":"in","dpi":300}`))
	require.Equal(t, http.StatusOK, rec.Code)
	size := decode[calculators.PrintSize](t, rec)
	assert.Equal(t, 2481.0, size.Width.Px)
	assert.Equal(t, 3507.0, size.Height.Px)
	assert.Equal(t, 21.01, size.Width.Cm)

	rec = serve(t, app, postJSON("/v1/calculators/print", `{"width":10,"height":10,"unit":"mm"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, app, postJSON("/v1/calculators/print", `{"width":-1,"height":10}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, app, httptest.NewRequest(http.MethodGet, "/v1/calculators/print", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPresetListings(t *testing.T) {
	app := newTestApp(nil)

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/v1/calculators/print/presets", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]calculators.PrintPreset](t, rec), len(app.Presets.Catalog().Print))

	rec = serve(t, app, httptest.NewRequest(http.MethodGet, "/v1/calculators/canvas/presets", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]calculators.CanvasPresetGroup](t, rec), len(app.Presets.Catalog().Canvas))

	rec = serve(t, app, httptest.NewRequest(http.MethodGet, "/v1/calculators/typography/scales", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]calculators.TypeScaleRatio](t, rec), len(app.Presets.Catalog().TypeScales))
}

func TestCanvasSize(t *testing.T) {
	app := newTestApp(nil)

	tests := map[string]struct {
		body   string
		code   int
		width  int
		height int
		ratio  string
	}{
		"locked width edit": {
			body:   `{"width":1920,"height":1080,"lockRatio":true,"set":{"field":"width","value":1280}}`,
			code:   http.StatusOK,
			width:  1280,
			height: 720,
			ratio:  "16:9",
		},
		"unlocked height edit": {
			body:   `{"width":1920,"height":1080,"set":{"field":"height","value":1920}}`,
			code:   http.StatusOK,
			width:  1920,
			height: 1920,
			ratio:  "1:1",
		},
		"preset": {
			body:   `{"preset":"Instagram Story (9:16)"}`,
			code:   http.StatusOK,
			width:  1080,
			height: 1920,
			ratio:  "9:16",
		},
		"unknown preset": {
			body: `{"preset":"Billboard"}`,
			code: http.StatusBadRequest,
		},
		"unknown field": {
			body: `{"width":10,"height":10,"set":{"field":"depth","value":3}}`,
			code: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, app, postJSON("/v1/calculators/canvas", tt.body))
			require.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				return
			}
			resp := decode[models.CanvasResponse](t, rec)
			assert.Equal(t, tt.width, resp.Width)
			assert.Equal(t, tt.height, resp.Height)
			assert.Equal(t, tt.ratio, resp.AspectRatio)
		})
	}
}

func TestTypographyScale(t *testing.T) {
	app := newTestApp(nil)

	rec := serve(t, app, postJSON("/v1/calculators/typography", `{}`))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.TypographyResponse](t, rec)
	assert.Equal(t, 16.0, resp.BaseSize)
	assert.Equal(t, 1.25, resp.Scale)
	require.Len(t, resp.Steps, 5)
	assert.Equal(t, calculators.TypeStep{Step: 4, Size: 39.06, LineHeight: 58.59}, resp.Steps[0])
	assert.Equal(t, calculators.TypeStep{Step: 0, Size: 16, LineHeight: 24}, resp.Steps[4])

	rec = serve(t, app, postJSON("/v1/calculators/typography", `{"steps":21}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, app, postJSON("/v1/calculators/typography", `{"scaleName":"Nope"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFileSize(t *testing.T) {
	app := newTestApp(nil)

	tests := map[string]struct {
		body      string
		code      int
		bytes     float64
		formatted string
	}{
		"jpeg default quality": {
			body:      `{"width":1920,"height":1080,"format":"jpeg"}`,
			code:      http.StatusOK,
			bytes:     808704,
			formatted: "789.75 KB",
		},
		"png": {
			body:      `{"width":1920,"height":1080,"format":"png"}`,
			code:      http.StatusOK,
			bytes:     2488320,
			formatted: "2.37 MB",
		},
		"unknown format": {
			body: `{"width":1920,"height":1080,"format":"gif"}`,
			code: http.StatusBadRequest,
		},
		"quality out of range": {
			body: `{"width":1920,"height":1080,"format":"jpg","quality":0}`,
			code: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, app, postJSON("/v1/calculators/filesize", tt.body))
			require.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				return
			}
			resp := decode[models.FileSizeResponse](t, rec)
			assert.InDelta(t, tt.bytes, resp.Bytes, 0.001)
			assert.Equal(t, tt.formatted, resp.Formatted)
		})
	}
}

func TestCalculatorsRejectOverflow(t *testing.T) {
	app := newTestApp(nil)

	tests := map[string]struct {
		target string
		body   string
	}{
		"typography steps":        {"/v1/calculators/typography", `{"baseSize":1e306,"scale":1000,"steps":5,"lineHeight":1.5}`},
		"print inches":            {"/v1/calculators/print", `{"width":1e308,"height":1,"unit":"in","dpi":300}`},
		"typography rounded size": {"/v1/calculators/typography", `{"baseSize":1e308,"scale":1,"steps":1,"lineHeight":10}`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, app, postJSON(tt.target, tt.body))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			herr := decode[HandlerError](t, rec)
			assert.Equal(t, ErrNotFinite.Error(), herr.Description)
		})
	}
}

func TestWriteJSONUnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"size": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	herr := decode[HandlerError](t, rec)
	assert.Equal(t, "Internal Server Error", herr.ErrorName)
}

func TestCalculatorsLimitBodySize(t *testing.T) {
	app := newTestApp(nil)
	padding := strings.Repeat(" ", maxJSONBody+1)

	for _, target := range []string{
		"/v1/calculators/print",
		"/v1/calculators/canvas",
		"/v1/calculators/typography",
		"/v1/calculators/filesize",
	} {
		t.Run(target, func(t *testing.T) {
			rec := serve(t, app, postJSON(target, padding+`{}`))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			herr := decode[HandlerError](t, rec)
			assert.Equal(t, "Error Parsing JSON", herr.ErrorName)
			assert.Contains(t, herr.Description, "request body too large")
		})
	}
}
