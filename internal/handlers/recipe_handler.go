package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/recipebox/web/internal/middleware"
	"github.com/recipebox/web/internal/models"
	"github.com/recipebox/web/internal/services"
	"github.com/recipebox/web/internal/templates"
)

type RecipeHandler struct {
	views *services.ViewService
}

func NewRecipeHandler(views *services.ViewService) *RecipeHandler {
	return &RecipeHandler{
		views: views,
	}
}

// Page renders the recipe page for the {recipeId} route parameter.
func (h *RecipeHandler) Page(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	recipeID := chi.URLParam(r, "recipeId")

	view, err := h.views.Open(r.Context(), profileID, recipeID)
	if err != nil {
		writeHTMLError(w, r, "open recipe view", err)
		return
	}

	body, err := templates.RenderRecipePage(templates.NewRecipePageData(view))
	if err != nil {
		slog.ErrorContext(r.Context(), "render recipe page failed", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if view.State == models.StateError {
		status = http.StatusNotFound
	}
	writeHTML(w, status, body)
}

// Favorite is the form action behind the unfilled star.
func (h *RecipeHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	recipeID := chi.URLParam(r, "recipeId")

	if _, err := h.views.Favorite(r.Context(), profileID, recipeID); err != nil {
		writeHTMLError(w, r, "favorite recipe", err)
		return
	}
	http.Redirect(w, r, "/recipe/"+url.PathEscape(recipeID), http.StatusSeeOther)
}

// Unfavorite is the form action behind the filled star.
func (h *RecipeHandler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	recipeID := chi.URLParam(r, "recipeId")

	if _, err := h.views.Unfavorite(r.Context(), profileID, recipeID); err != nil {
		writeHTMLError(w, r, "unfavorite recipe", err)
		return
	}
	http.Redirect(w, r, "/recipe/"+url.PathEscape(recipeID), http.StatusSeeOther)
}

// GetRecipe returns the composed view for {recipeId} as JSON.
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	recipeID := chi.URLParam(r, "recipeId")

	view, err := h.views.Open(r.Context(), profileID, recipeID)
	if err != nil {
		writeJSONError(w, r, "open recipe view", err)
		return
	}
	if view.State == models.StateError {
		writeJSON(w, http.StatusNotFound, models.APIResponse{Success: false, Data: view, Error: "no recipe found!"})
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(view))
}

// CurrentView returns the profile's last recorded view without fetching.
func (h *RecipeHandler) CurrentView(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())

	view, err := h.views.Current(r.Context(), profileID)
	if err != nil {
		writeJSONError(w, r, "current view", err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(view))
}
