package httpx

import (
	"net/http"

	"codearea/internal/config"
	"codearea/internal/http/handlers"
	middlewarex "codearea/internal/http/middleware"
	questionsvc "codearea/internal/services/question"
	"codearea/internal/store/repositories"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config          config.Cfg
	ListingService  *questionsvc.ListingService
	QuestionService *questionsvc.Service
	// Sessions may be nil, in which case every request is anonymous.
	Sessions repositories.SessionStore
}

// NewRouter creates the HTTP router
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middlewarex.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/questions", func(r chi.Router) {
		r.Use(middlewarex.Session(deps.Sessions, deps.Config.Session.CookieName))

		r.Post("/", handlers.ListQuestions(deps.ListingService))
		r.Post("/add", handlers.CreateQuestion(deps.QuestionService))
		r.Get("/{questionID}", handlers.ViewQuestion(deps.QuestionService))
		r.Put("/{questionID}", handlers.UpdateQuestion(deps.QuestionService))
		r.Delete("/{questionID}", handlers.DeleteQuestion(deps.QuestionService))
	})

	return r
}
