package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the API under /api plus optional static file serving for
// a bundled frontend.
func NewRouter(api *API, corsOrigins []string, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	// Wide timeout: a results request may sit on one generate round trip.
	r.Use(middleware.Timeout(90 * time.Second))

	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}))
	}

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/quiz", api.HandleQuiz)
		ar.Get("/quiz/{question_id}", api.HandleQuestion)
		ar.Get("/quiz/{question_id}/correct-answer", api.HandleCorrectAnswer)
		ar.Post("/quiz/{question_id}/answer", api.HandleSubmitAnswer)
		ar.Get("/results", api.HandleResults)
		ar.Post("/reset", api.HandleReset)
		ar.Get("/ai-stats", api.HandleAIStats)
		ar.Post("/ai-stats/reset", api.HandleResetAIStats)
	})

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
