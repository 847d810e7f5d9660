package http

import "net/http"

const (
	corsAllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
	corsAllowHeaders = "Authorization,Content-Type," + traceIDHeader
)

// withCORS handles cross-origin requests. In production (restricted) mode
// only origins from the configured allow-list are echoed back; outside it any
// origin is accepted. Preflight OPTIONS requests are answered here and never
// reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	restricted := h.cfg.App.Restricted()
	allowed := h.cfg.Server.CORSOrigins

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			header := w.Header()
			if !restricted || originAllowed(origin, allowed) {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Add("Vary", "Origin")
				header.Set("Access-Control-Allow-Methods", corsAllowMethods)
				header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == origin || a == "*" {
			return true
		}
	}
	return false
}
