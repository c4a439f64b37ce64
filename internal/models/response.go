package models

// APIResponse is a generic API response wrapper
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}

// FavoriteToggleResponse is returned by the favorite JSON endpoints.
type FavoriteToggleResponse struct {
	RecipeID  string        `json:"recipe_id"`
	Favorited bool          `json:"favorited"`
	Favorites FavoritesList `json:"favorites"`
}
