package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/guardkit/guardkit/pkg/sanitizer"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Middleware resolves the request identifier for the current request: it
// trims the inbound X-Request-ID header, keeps it when it passes the length
// and charset rules, and otherwise generates a fresh UUID. The resolved id
// is stored in the request context and echoed in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := sanitizer.Trim(r.Header.Get(Header))
		if !isValidRequestID(requestID) {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
