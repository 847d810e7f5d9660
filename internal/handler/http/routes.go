package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

// Init builds the complete router. Middleware order is fixed and significant:
// security headers → CORS → body limit → trace ID → access logging → gzip →
// recover, then (under /api) schema initialization, then per resource router:
// query sanitization → authentication → role authorization → handler.
//
// Routes are registered from the static resource registry, so the mount
// sequence is deterministic between process runs.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withSecurityHeaders)
	router.Use(h.withCORS)
	router.Use(h.withBodyLimit)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withRecover)

	router.Get("/", h.live)
	router.Get("/test-db", h.testDB)

	router.Route("/api", func(api chi.Router) {
		api.Use(h.withSchemaInit)

		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Use(h.withSanitizedQuery)

			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		for _, res := range models.Resources() {
			api.Route(strings.TrimPrefix(res.Prefix, "/api"), h.resourceRouter(res))
		}
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

// resourceRouter mounts the guarded CRUD surface for one resource descriptor.
func (h *Handler) resourceRouter(res models.Resource) func(chi.Router) {
	return func(r chi.Router) {
		r.Use(h.withSanitizedQuery)
		r.Use(h.authenticate)
		r.Use(h.requireRoles(res.AllowedRoles...))

		r.Get("/", h.listResource(res))
		r.Post("/", h.createResource(res))
		r.Get("/{id}", h.getResource(res))
		r.Put("/{id}", h.updateResource(res))
		r.Delete("/{id}", h.deleteResource(res))
	}
}

// notFound answers both unmatched paths and unsupported methods with the same
// uniform 404 envelope, hiding which of the two it was.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Fail("Not Found"), http.StatusNotFound)
}
