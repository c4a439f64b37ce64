package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/recipebox/web/internal/middleware"
	"github.com/recipebox/web/internal/services"
)

// RouterConfig carries what NewRouter needs to mount every route.
type RouterConfig struct {
	Views          *services.ViewService
	Profiles       *middleware.ProfileIssuer
	AllowedOrigins []string
	AccessLog      bool
}

func NewRouter(cfg RouterConfig) http.Handler {
	recipeHandler := NewRecipeHandler(cfg.Views)
	favoriteHandler := NewFavoriteHandler(cfg.Views)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.AccessLog {
		r.Use(chimiddleware.Logger)
	}
	r.Use(chimiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.Profile(cfg.Profiles))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/favorites", http.StatusFound)
		})
		r.Get("/favorites", favoriteHandler.FavoritesPage)

		r.Route("/recipe", func(r chi.Router) {
			r.Get("/", recipeHandler.Page)
			r.Route("/{recipeId}", func(r chi.Router) {
				r.Get("/", recipeHandler.Page)
				r.Post("/favorite", recipeHandler.Favorite)
				r.Post("/unfavorite", recipeHandler.Unfavorite)
			})
		})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Use(middleware.Profile(cfg.Profiles))

		r.Get("/view", recipeHandler.CurrentView)
		r.Get("/favorites", favoriteHandler.ListFavorites)

		r.Route("/recipes/{recipeId}", func(r chi.Router) {
			r.Get("/", recipeHandler.GetRecipe)
			r.Post("/favorite", favoriteHandler.AddFavorite)
			r.Delete("/favorite", favoriteHandler.RemoveFavorite)
		})
	})

	return r
}
