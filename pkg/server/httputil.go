package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/anrid/malaria-stats/pkg/dashboard"
	"github.com/anrid/malaria-stats/pkg/stats"
)

// Error codes returned in the "error" field of a failed response.
const (
	CodeNotFound      = "not_found"
	CodeMissingColumn = "missing_column"
	CodeNonNumeric    = "non_numeric"
	CodeMalformedFile = "malformed_file"
	CodeBadRequest    = "bad_request"
	CodeInternal      = "internal_error"
)

var errBadRequest = errors.New("bad request")

// classify maps an error to a status code and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, dashboard.ErrUnknownView):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, stats.ErrMissingColumn):
		return http.StatusUnprocessableEntity, CodeMissingColumn
	case errors.Is(err, stats.ErrNonNumeric):
		return http.StatusUnprocessableEntity, CodeNonNumeric
	case errors.Is(err, stats.ErrMalformedFile):
		return http.StatusBadRequest, CodeMalformedFile
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, CodeBadRequest
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// writeJSON encodes v before touching w, so an encoding error leaves the
// response unwritten and the caller free to report it.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
	return nil
}

// writeError reports err to the client. Internal errors carry no
// description.
func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	body := map[string]string{"error": code}
	if status != http.StatusInternalServerError {
		body["error_description"] = err.Error()
	}
	_ = writeJSON(w, status, body)
}

type requestIDKey struct{}

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id, reusing the caller's one if set.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
