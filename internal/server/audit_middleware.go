package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if email, _, ok := r.BasicAuth(); ok {
			entry.UserEmail = email
		}

		if strings.HasPrefix(r.URL.Path, "/bookings/") {
			parts := strings.Split(r.URL.Path, "/")
			if len(parts) > 2 && parts[2] != "checkout" {
				entry.BookingID = parts[2]
			}
		}

		// Never echo credentials into the audit trail.
		if r.Body != nil && r.URL.Path != "/signup" {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case path == "/desks":
		return "handleListAvailability"
	case path == "/bookings" && method == http.MethodPost:
		return "handleCreateBooking"
	case path == "/bookings/checkout":
		return "handleCheckout"
	case strings.HasPrefix(path, "/bookings/") && strings.HasSuffix(path, "/cancel"):
		return "handleCancelBooking"
	case strings.HasPrefix(path, "/users/") && strings.HasSuffix(path, "/bookings"):
		return "handleListUserBookings"
	case path == "/signup":
		return "handleSignup"
	}
	return "unknown"
}
