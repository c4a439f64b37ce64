package services

import (
	"context"
	"sync"

	"github.com/recipebox/web/internal/models"
)

func ptr[T any](v T) *T { return &v }

func pizza() *models.Recipe {
	return &models.Recipe{
		ID:          "5add62b3",
		Title:       "Pizza",
		CookingTime: 30,
		Servings:    2,
		Ingredients: []models.Ingredient{
			{Quantity: ptr(1.0), Unit: ptr("kg"), Description: ptr("dough")},
		},
	}
}

// stubFetcher serves canned recipes and counts calls. Ids listed in block
// wait on their channel before returning.
type stubFetcher struct {
	mu      sync.Mutex
	recipes map[string]*models.Recipe
	calls   []string
	started chan string
	block   map[string]chan struct{}
}

func newStubFetcher(recipes ...*models.Recipe) *stubFetcher {
	f := &stubFetcher{
		recipes: make(map[string]*models.Recipe),
		block:   make(map[string]chan struct{}),
	}
	for _, r := range recipes {
		f.recipes[r.ID] = r
	}
	return f
}

func (f *stubFetcher) Fetch(ctx context.Context, id string) (*models.Recipe, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	wait := f.block[id]
	started := f.started
	r, ok := f.recipes[id]
	f.mu.Unlock()

	if started != nil {
		started <- id
	}
	if wait != nil {
		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if !ok {
		return nil, ErrRecipeUnavailable
	}
	return r, nil
}

func (f *stubFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
