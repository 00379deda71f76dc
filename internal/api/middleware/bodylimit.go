package middleware

import "net/http"

// DefaultMaxBodyBytes caps form submissions
const DefaultMaxBodyBytes = 64 << 10

// BodyLimit rejects request bodies larger than limit bytes.
// Decoding an oversized body fails, which handlers report as an invalid request.
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
