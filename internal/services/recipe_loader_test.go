package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/web/internal/models"
)

func TestRecipeLoaderLoad(t *testing.T) {
	fetcher := newStubFetcher(pizza())
	loader := NewRecipeLoader(fetcher)
	ctx := context.Background()

	t.Run("absent identifier stays loading", func(t *testing.T) {
		state := loader.Load(ctx, "")
		assert.Equal(t, models.StateLoading, state.State)
		assert.Nil(t, state.Recipe)
		assert.Empty(t, fetcher.Calls())
	})

	t.Run("loaded", func(t *testing.T) {
		state := loader.Load(ctx, "5add62b3")
		assert.Equal(t, models.StateLoaded, state.State)
		assert.Equal(t, "5add62b3", state.RequestedID)
		require.NotNil(t, state.Recipe)
		assert.Equal(t, pizza(), state.Recipe)
	})

	t.Run("error", func(t *testing.T) {
		state := loader.Load(ctx, "doesnotexist")
		assert.Equal(t, models.StateError, state.State)
		assert.Equal(t, "doesnotexist", state.RequestedID)
		assert.Nil(t, state.Recipe)
	})
}

func TestRecipeLoaderCurrent(t *testing.T) {
	loader := NewRecipeLoader(newStubFetcher(pizza()))
	ctx := context.Background()

	assert.Equal(t, models.StateLoading, loader.Current("p1").State)

	state, current := loader.LoadFor(ctx, "p1", "5add62b3")
	assert.True(t, current)
	assert.Equal(t, state, loader.Current("p1"))

	state, current = loader.LoadFor(ctx, "p1", "doesnotexist")
	assert.True(t, current)
	assert.Equal(t, models.StateError, loader.Current("p1").State)
	assert.Equal(t, state, loader.Current("p1"))

	assert.Equal(t, models.StateLoading, loader.Current("p2").State)
}

func TestRecipeLoaderDiscardsStaleResponse(t *testing.T) {
	other := &models.Recipe{ID: "b", Title: "Soup", Ingredients: []models.Ingredient{{Description: ptr("water")}}}
	fetcher := newStubFetcher(pizza(), other)
	release := make(chan struct{})
	fetcher.block["5add62b3"] = release
	fetcher.started = make(chan string, 2)

	loader := NewRecipeLoader(fetcher)
	ctx := context.Background()

	type result struct {
		state   models.RecipeState
		current bool
	}
	slow := make(chan result, 1)
	go func() {
		s, c := loader.LoadFor(ctx, "p1", "5add62b3")
		slow <- result{s, c}
	}()
	require.Equal(t, "5add62b3", <-fetcher.started)

	state, current := loader.LoadFor(ctx, "p1", "b")
	require.Equal(t, "b", <-fetcher.started)
	assert.True(t, current)
	assert.Equal(t, "Soup", state.Recipe.Title)

	close(release)
	stale := <-slow

	assert.False(t, stale.current)
	assert.Equal(t, models.StateLoaded, stale.state.State)
	assert.Equal(t, "5add62b3", stale.state.RequestedID)

	cur := loader.Current("p1")
	assert.Equal(t, "b", cur.RequestedID, "older response must not overwrite the newer view")
}
