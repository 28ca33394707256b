package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter needs to wire the API.
type RouterDeps struct {
	Auth    *AuthHandler
	Folders *FolderHandler
	Cards   *CardHandler
	Health  *HealthHandler
	Version string
}

// NewRouter builds the route table. Route-level auth requirements follow
// the original API surface: signup/login/status and health are open,
// everything else rejects anonymous callers with 401.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/", indexHandler(deps.Version))

	r.Route("/health", func(r chi.Router) {
		r.Get("/", deps.Health.Health)
		r.Get("/live", deps.Health.Live)
		r.Get("/ready", deps.Health.Ready)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", deps.Auth.Signup)
		r.Post("/login", deps.Auth.Login)
		r.Get("/status", deps.Auth.Status)
		r.With(middleware.RequireUser).Post("/logout", deps.Auth.Logout)
	})

	r.Route("/folders", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", deps.Folders.List)
		r.Post("/create_folder", deps.Folders.Create)
		r.Put("/update_folder", deps.Folders.Update)
		r.Delete("/delete_folder", deps.Folders.Delete)
	})

	r.Route("/cards", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/get_cards", deps.Cards.Get)
		r.Post("/create_card", deps.Cards.Create)
		r.Put("/update_card", deps.Cards.Update)
		r.Delete("/delete_card", deps.Cards.Delete)
	})

	return r
}

func indexHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Flashdeck API",
			"status":  "running",
			"version": version,
		})
	}
}
