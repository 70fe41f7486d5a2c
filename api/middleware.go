package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/design-toolkit/api/models"
)

const requestIDHeader = "X-Request-ID"

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
		if r.Method == "OPTIONS" {
			return
		} else {
			h.ServeHTTP(w, r)
		}
	}
}

// withRequestID echoes the caller's X-Request-ID or assigns a fresh one.
func withRequestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		h.ServeHTTP(w, r)
	})
}

func paletteTokenFromRequest(r *http.Request) (string, error) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return "", errors.New("malformed authorization header")
		}
		return strings.TrimSpace(token), nil
	}

	cookie, err := r.Cookie(models.JWT.PALETTE_COOKIE_NAME)
	if err != nil {
		return "", errors.New("no palette token found")
	}
	return cookie.Value, nil
}

// requirePaletteToken guards the AI endpoint when a token secret is set.
func (app *Application) requirePaletteToken(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Config.PaletteTokenSecret == "" {
			h.ServeHTTP(w, r)
			return
		}

		token, err := paletteTokenFromRequest(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		if _, err := models.ValidatePaletteToken(token, app.Config.PaletteTokenSecret); err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		h.ServeHTTP(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// instrument records request count and latency under route.
func (app *Application) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()

		h.ServeHTTP(rec, r)

		MetricRequestDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
		MetricRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	}
}
