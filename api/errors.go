package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"runtime"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
	RequestID        string `json:"requestId,omitempty"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrNotConfigured = fmt.Errorf("palette generation is not configured")

// writeJSON encodes v before any header is written, so a value that cannot
// be encoded becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("error encoding response (request %s): %v", w.Header().Get(requestIDHeader), err)
		buf.Reset()
		status = http.StatusInternalServerError
		json.NewEncoder(&buf).Encode(HandlerError{
			ErrorName:        "Internal Server Error",
			Description:      "response could not be encoded",
			PossibleSolution: "Internal Server Error requiring support",
			CallerInfo:       getCallerInfo(),
			RequestID:        w.Header().Get(requestIDHeader),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, r *http.Request, status int, e HandlerError) {
	e.RequestID = w.Header().Get(requestIDHeader)
	writeJSON(w, status, e)
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Description:      "Invalid Authentication",
		PossibleSolution: "Check your headers and ensure you're submitting a valid palette token",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requireGetMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Get Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use GET method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requirePostMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodPost)
	writeError(w, r, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Post Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use POST method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) serviceUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusServiceUnavailable, HandlerError{
		ErrorName:        "Service Unavailable",
		Description:      err.Error(),
		PossibleSolution: "Set GEMINI_API_KEY and restart the server",
		CallerInfo:       getCallerInfo(),
	})
}
