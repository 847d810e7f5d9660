package http

import "net/http"

// withSanitizedQuery normalises every query-string value (trim, HTML strip)
// before authentication and handlers see it. Body payloads are sanitized at
// decode time against the resource's column allow-list, see decodePayload.
func (h *Handler) withSanitizedQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.RawQuery) > 0 {
			r.URL.RawQuery = h.sanitizer.Values(r.URL.Query()).Encode()
		}

		next.ServeHTTP(w, r)
	})
}
