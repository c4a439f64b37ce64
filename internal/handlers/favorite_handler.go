package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recipebox/web/internal/middleware"
	"github.com/recipebox/web/internal/models"
	"github.com/recipebox/web/internal/services"
	"github.com/recipebox/web/internal/templates"
)

type FavoriteHandler struct {
	views *services.ViewService
}

func NewFavoriteHandler(views *services.ViewService) *FavoriteHandler {
	return &FavoriteHandler{
		views: views,
	}
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	recipeID := chi.URLParam(r, "recipeId")

	favorites, err := h.views.Favorite(r.Context(), profileID, recipeID)
	if err != nil {
		writeJSONError(w, r, "add favorite", err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(models.FavoriteToggleResponse{
		RecipeID:  recipeID,
		Favorited: true,
		Favorites: favorites,
	}))
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	recipeID := chi.URLParam(r, "recipeId")

	favorites, err := h.views.Unfavorite(r.Context(), profileID, recipeID)
	if err != nil {
		writeJSONError(w, r, "remove favorite", err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(models.FavoriteToggleResponse{
		RecipeID:  recipeID,
		Favorited: false,
		Favorites: favorites,
	}))
}

func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())

	favorites, err := h.views.Favorites(r.Context(), profileID)
	if err != nil {
		writeJSONError(w, r, "list favorites", err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(favorites))
}

func (h *FavoriteHandler) FavoritesPage(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())

	favorites, err := h.views.Favorites(r.Context(), profileID)
	if err != nil {
		writeHTMLError(w, r, "list favorites", err)
		return
	}

	body, err := templates.RenderFavoritesPage(templates.FavoritesPageData{Favorites: favorites})
	if err != nil {
		slog.ErrorContext(r.Context(), "render favorites page failed", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, body)
}
