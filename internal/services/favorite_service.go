package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/recipebox/web/internal/models"
	"github.com/recipebox/web/internal/storage"
	"github.com/recipebox/web/internal/telemetry"
)

// FavoritesKey is the single storage key holding a profile's favorites.
const FavoritesKey = "favorite"

var (
	ErrFavoritesCorrupt = errors.New("stored favorites are not a valid recipe list")
	ErrFavoriteBadInput = errors.New("profile and recipe identifiers are required")
)

// FavoriteService persists each profile's FavoritesList as one JSON blob.
// Every mutation rewrites the whole list; the last write wins.
type FavoriteService struct {
	kv        storage.KeyValue
	mutations metric.Int64Counter
}

func NewFavoriteService(kv storage.KeyValue) *FavoriteService {
	mutations, err := otel.Meter(telemetry.InstrumentationName).Int64Counter(
		"favorites.mutations",
		metric.WithDescription("Favorite list writes by operation"),
	)
	if err != nil {
		mutations, _ = noop.Meter{}.Int64Counter("favorites.mutations")
	}

	return &FavoriteService{
		kv:        kv,
		mutations: mutations,
	}
}

// Reload reads the profile's list. A missing blob is an empty list; a blob
// that does not decode is reported as ErrFavoritesCorrupt.
func (s *FavoriteService) Reload(ctx context.Context, profileID string) (models.FavoritesList, error) {
	if profileID == "" {
		return nil, ErrFavoriteBadInput
	}

	raw, ok, err := storage.Scoped(s.kv, profileID).Get(ctx, FavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	if !ok {
		return models.FavoritesList{}, nil
	}

	var list models.FavoritesList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFavoritesCorrupt, err)
	}
	if list == nil {
		list = models.FavoritesList{}
	}
	return list, nil
}

// Contains reports whether list holds a recipe with identifier id.
func (s *FavoriteService) Contains(list models.FavoritesList, id string) bool {
	return list.Contains(id)
}

// Add appends recipe to list and persists the result. It does not dedupe.
func (s *FavoriteService) Add(ctx context.Context, profileID string, list models.FavoritesList, recipe models.Recipe) (models.FavoritesList, error) {
	if profileID == "" || recipe.ID == "" {
		return list, ErrFavoriteBadInput
	}

	next := list.Add(recipe)
	if err := s.save(ctx, profileID, next, "add"); err != nil {
		return list, err
	}
	return next, nil
}

// Remove drops every entry with identifier id from list and persists the result.
func (s *FavoriteService) Remove(ctx context.Context, profileID string, list models.FavoritesList, id string) (models.FavoritesList, error) {
	if profileID == "" || id == "" {
		return list, ErrFavoriteBadInput
	}

	next := list.Remove(id)
	if err := s.save(ctx, profileID, next, "remove"); err != nil {
		return list, err
	}
	return next, nil
}

func (s *FavoriteService) save(ctx context.Context, profileID string, list models.FavoritesList, op string) error {
	if list == nil {
		list = models.FavoritesList{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := storage.Scoped(s.kv, profileID).Set(ctx, FavoritesKey, data); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}

	s.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	return nil
}
