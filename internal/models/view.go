package models

// LoadState is the tri-state of a recipe view.
type LoadState int

const (
	StateLoading LoadState = iota
	StateError
	StateLoaded
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

func (s LoadState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RecipeState is the outcome of one load. RequestedID is the parameter the
// load was issued for, so a consumer can drop results for a stale parameter.
type RecipeState struct {
	State       LoadState `json:"state"`
	RequestedID string    `json:"requested_id,omitempty"`
	Recipe      *Recipe   `json:"recipe,omitempty"`
}

// RecipeView composes the load outcome with the favorite toggle state.
type RecipeView struct {
	RecipeState
	Favorited bool `json:"favorited"`
}

// Loading returns a loading state for id.
func Loading(id string) RecipeState {
	return RecipeState{State: StateLoading, RequestedID: id}
}

// Failed returns an error state for id.
func Failed(id string) RecipeState {
	return RecipeState{State: StateError, RequestedID: id}
}

// Loaded returns a loaded state carrying r.
func Loaded(id string, r *Recipe) RecipeState {
	return RecipeState{State: StateLoaded, RequestedID: id, Recipe: r}
}
