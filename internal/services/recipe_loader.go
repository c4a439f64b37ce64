package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/recipebox/web/internal/models"
)

const maxTrackedViews = 10000

type viewSlot struct {
	generation uint64
	state      models.RecipeState
}

// RecipeLoader turns fetch outcomes into view states and remembers the
// latest state per view key.
type RecipeLoader struct {
	fetcher RecipeFetcher

	mu    sync.Mutex
	views map[string]*viewSlot
}

func NewRecipeLoader(fetcher RecipeFetcher) *RecipeLoader {
	return &RecipeLoader{
		fetcher: fetcher,
		views:   make(map[string]*viewSlot),
	}
}

// Load resolves id to a state. An empty id means the route parameter has not
// resolved yet: no request is made and the state stays Loading.
func (l *RecipeLoader) Load(ctx context.Context, id string) models.RecipeState {
	if id == "" {
		return models.Loading("")
	}

	recipe, err := l.fetcher.Fetch(ctx, id)
	if err != nil {
		slog.InfoContext(ctx, "recipe load failed", "recipe_id", id, "error", err)
		return models.Failed(id)
	}
	return models.Loaded(id, recipe)
}

// LoadFor runs Load and records the result as the current state of viewKey.
// If another LoadFor for the same viewKey started after this one, the result
// is returned to the caller but not recorded, and current is false.
func (l *RecipeLoader) LoadFor(ctx context.Context, viewKey, id string) (state models.RecipeState, current bool) {
	l.mu.Lock()
	slot, ok := l.views[viewKey]
	if !ok {
		l.evictLocked()
		slot = &viewSlot{}
		l.views[viewKey] = slot
	}
	slot.generation++
	gen := slot.generation
	slot.state = models.Loading(id)
	l.mu.Unlock()

	state = l.Load(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()

	if slot.generation != gen || l.views[viewKey] != slot {
		slog.DebugContext(ctx, "discarding stale recipe state", "view", viewKey, "recipe_id", id)
		return state, false
	}
	slot.state = state
	return state, true
}

// Current returns the recorded state for viewKey; unknown views are Loading.
func (l *RecipeLoader) Current(viewKey string) models.RecipeState {
	l.mu.Lock()
	defer l.mu.Unlock()

	if slot, ok := l.views[viewKey]; ok {
		return slot.state
	}
	return models.Loading("")
}

// evictLocked drops an arbitrary view once the table is full.
func (l *RecipeLoader) evictLocked() {
	if len(l.views) < maxTrackedViews {
		return
	}
	for k := range l.views {
		delete(l.views, k)
		return
	}
}
