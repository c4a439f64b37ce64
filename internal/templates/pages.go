package templates

import (
	"bytes"

	"github.com/recipebox/web/internal/models"
)

// RecipePageData is the state required to render a recipe page.
type RecipePageData struct {
	Title     string
	Loading   bool
	Error     bool
	Recipe    *models.Recipe
	Favorited bool
}

// FavoritesPageData is the state required to render the favorites page.
type FavoritesPageData struct {
	Title     string
	Favorites models.FavoritesList
}

// NewRecipePageData maps a view to page flags.
func NewRecipePageData(view models.RecipeView) RecipePageData {
	data := RecipePageData{Title: models.Recipe{}.PageTitle()}
	switch view.State {
	case models.StateLoaded:
		if view.Recipe == nil {
			data.Error = true
			break
		}
		data.Recipe = view.Recipe
		data.Favorited = view.Favorited
		data.Title = view.Recipe.PageTitle()
	case models.StateError:
		data.Error = true
	default:
		data.Loading = true
	}
	return data
}

// RenderRecipePage executes the recipe template.
func RenderRecipePage(data RecipePageData) ([]byte, error) {
	return render("recipe.html.tmpl", data)
}

// RenderFavoritesPage executes the favorites template.
func RenderFavoritesPage(data FavoritesPageData) ([]byte, error) {
	if data.Title == "" {
		data.Title = "Recipes - Favorites"
	}
	return render("favorites.html.tmpl", data)
}

func render(name string, data any) ([]byte, error) {
	tmpl, err := Parse(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
