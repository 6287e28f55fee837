package http

import "net/http"

const (
	maxAuthHeaderLen = 8 << 10  // JWTs stay well under this
	maxPathLen       = 2 << 10  // longest route is an email-keyed user path
	maxBodyBytes     = 10 << 20 // article submissions are text plus URLs
)

// InputValidation rejects requests whose envelope is already abusive before
// any handler parses them: an oversized Authorization header, an absurdly
// long path, or an unbounded body.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderLen {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"authorization header too large"}`))
				return
			}

			if len(r.URL.Path) > maxPathLen {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestURITooLong)
				_, _ = w.Write([]byte(`{"error":"URI too long"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}
