package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/notetree/internal/transport/middleware"
)

// RouterDeps holds everything the router mounts.
type RouterDeps struct {
	Tree   *TreeHandler
	Health *HealthHandler
	// Feed serves the websocket change feed; nil disables /ws.
	Feed http.Handler
	// Global wraps every route, probes included.
	Global middleware.Middleware
	// Protected additionally wraps /api and /ws, typically auth.
	Protected middleware.Middleware
}

// NewRouter builds the HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	if deps.Global != nil {
		r.Use(deps.Global)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", deps.Health.Live)
	r.Get("/health", deps.Health.Health)

	r.Group(func(r chi.Router) {
		if deps.Protected != nil {
			r.Use(deps.Protected)
		}

		if deps.Feed != nil {
			r.Handle("/ws", deps.Feed)
		}

		r.Route("/api", func(r chi.Router) {
			h := deps.Tree

			r.Get("/tree", h.Tree)

			r.Post("/folders", h.CreateFolder)
			r.Route("/folders/{folderID}", func(r chi.Router) {
				r.Get("/", h.GetFolder)
				r.Delete("/", h.DeleteFolder)
				r.Get("/path", h.FolderPath)
				r.Post("/siblings", h.CreateSibling)
				r.Post("/toggle", h.ToggleFolder)

				r.Post("/notes", h.AddNote)
				r.Patch("/notes/{noteID}", h.UpdateNote)
				r.Delete("/notes/{noteID}", h.DeleteNote)
			})

			r.Get("/selection", h.Selection)
			r.Put("/selection", h.Select)
			r.Delete("/selection", h.ClearSelection)
		})
	})

	return r
}
