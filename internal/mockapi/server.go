package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"femee-arena-client/internal/model"
)

// Server is the local development backend. It serves the same API
// surface the production FEMEE backend exposes, backed by in-memory
// fixtures, so the client can be exercised without network access.
type Server struct {
	store  *Store
	secret string
}

// New creates a mock backend signing tokens with the given secret.
func New(secret string) *Server {
	return &Server{store: NewStore(), secret: secret}
}

// Handler returns the HTTP handler, mounted under /api like the real
// backend.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(recovery)
	r.Use(requestID)
	r.Use(logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/register", s.handleRegister)
			r.With(s.requireAuth).Get("/me", s.handleMe)
		})

		r.Route("/times", func(r chi.Router) {
			r.Get("/", s.handleTimesList)
			r.Get("/paged", s.handleTimesPaged)
			r.Get("/ranking", s.handleTimesRanking)
			r.Get("/slug/{slug}", s.handleTimesGetBySlug)
			r.Get("/{id}", s.handleTimesGet)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.With(requireRole(model.Administrador)).Post("/", s.handleTimesCreate)
				r.With(requireRole(model.Administrador, model.Capitao)).Put("/{id}", s.handleTimesUpdate)
				r.With(requireRole(model.Administrador)).Delete("/{id}", s.handleTimesDelete)
			})
		})

		r.Route("/campeonatos", func(r chi.Router) {
			r.Get("/", s.handleCampeonatosList)
			r.Get("/ativos", s.handleCampeonatosAtivos)
			r.Get("/status/{status}", s.handleCampeonatosByStatus)
			r.Get("/{id}", s.handleCampeonatosGet)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Use(requireRole(model.Administrador))
				r.Post("/", s.handleCampeonatosCreate)
				r.Put("/{id}", s.handleCampeonatosUpdate)
				r.Delete("/{id}", s.handleCampeonatosDelete)
			})
		})

		r.Route("/noticias", func(r chi.Router) {
			r.Get("/", s.handleNoticiasList)
			r.Get("/slug/{slug}", s.handleNoticiasGetBySlug)
			r.Get("/categoria/{categoria}", s.handleNoticiasByCategoria)
			r.Get("/{id}", s.handleNoticiasGet)
		})

		r.Route("/inscricoes-campeonato", func(r chi.Router) {
			r.Use(s.requireAuth)

			r.With(requireRole(model.Administrador, model.Capitao)).Post("/", s.handleInscricoesCreate)
			r.Get("/{id}", s.handleInscricoesGet)
			r.Get("/campeonato/{campeonatoId}", s.handleInscricoesByCampeonato)
			r.Get("/time/{timeId}", s.handleInscricoesByTime)

			r.Group(func(r chi.Router) {
				r.Use(requireRole(model.Administrador))
				r.Get("/status/{status}", s.handleInscricoesByStatus)
				r.Post("/{id}/aprovar", s.handleInscricoesApprove)
				r.Post("/{id}/rejeitar", s.handleInscricoesReject)
				r.Delete("/{id}", s.handleInscricoesDelete)
			})
		})
	})

	return r
}
