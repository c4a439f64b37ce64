package services

import (
	"context"
	"log/slog"

	"github.com/recipebox/web/internal/models"
)

// ViewService composes the recipe loader and the favorites store into the
// state a recipe page renders. Views are keyed by profile.
type ViewService struct {
	loader    *RecipeLoader
	favorites *FavoriteService
}

func NewViewService(loader *RecipeLoader, favorites *FavoriteService) *ViewService {
	return &ViewService{
		loader:    loader,
		favorites: favorites,
	}
}

// Open handles a change of the view parameter: favorites are reloaded from
// storage, the recipe is loaded, and the favorite toggle is derived.
func (s *ViewService) Open(ctx context.Context, profileID, id string) (models.RecipeView, error) {
	favorites, err := s.favorites.Reload(ctx, profileID)
	if err != nil {
		return models.RecipeView{RecipeState: models.Loading(id)}, err
	}

	state, _ := s.loader.LoadFor(ctx, profileID, id)
	return s.compose(state, favorites), nil
}

// Current returns the profile's most recently recorded view without issuing a request.
func (s *ViewService) Current(ctx context.Context, profileID string) (models.RecipeView, error) {
	favorites, err := s.favorites.Reload(ctx, profileID)
	if err != nil {
		return models.RecipeView{}, err
	}
	return s.compose(s.loader.Current(profileID), favorites), nil
}

// Favorite adds recipe id to the profile's favorites. The star is only
// offered for recipes not yet in the list, so an existing entry is left alone.
func (s *ViewService) Favorite(ctx context.Context, profileID, id string) (models.FavoritesList, error) {
	favorites, err := s.favorites.Reload(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if s.favorites.Contains(favorites, id) {
		return favorites, nil
	}

	recipe, err := s.recipeFor(ctx, profileID, id)
	if err != nil {
		return favorites, err
	}

	slog.InfoContext(ctx, "favorite added", "profile_id", profileID, "recipe_id", id)
	return s.favorites.Add(ctx, profileID, favorites, *recipe)
}

// Unfavorite removes recipe id from the profile's favorites.
func (s *ViewService) Unfavorite(ctx context.Context, profileID, id string) (models.FavoritesList, error) {
	favorites, err := s.favorites.Reload(ctx, profileID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "favorite removed", "profile_id", profileID, "recipe_id", id)
	return s.favorites.Remove(ctx, profileID, favorites, id)
}

// Favorites lists the profile's favorites.
func (s *ViewService) Favorites(ctx context.Context, profileID string) (models.FavoritesList, error) {
	return s.favorites.Reload(ctx, profileID)
}

// recipeFor reuses the recipe already on the profile's view when it matches,
// otherwise it loads the recipe again.
func (s *ViewService) recipeFor(ctx context.Context, profileID, id string) (*models.Recipe, error) {
	if id == "" {
		return nil, ErrFavoriteBadInput
	}

	cur := s.loader.Current(profileID)
	if cur.State == models.StateLoaded && cur.RequestedID == id && cur.Recipe != nil {
		return cur.Recipe, nil
	}

	state := s.loader.Load(ctx, id)
	if state.State != models.StateLoaded {
		return nil, ErrRecipeUnavailable
	}
	return state.Recipe, nil
}

func (s *ViewService) compose(state models.RecipeState, favorites models.FavoritesList) models.RecipeView {
	view := models.RecipeView{RecipeState: state}
	if state.State == models.StateLoaded && state.Recipe != nil {
		view.Favorited = s.favorites.Contains(favorites, state.Recipe.ID)
	}
	return view
}
