package models

import (
	"strconv"
	"strings"
)

// Recipe is a dish as served by the forkify API. It is read-only to this service.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	ImageURL    string       `json:"image_url"`
	CookingTime int          `json:"cooking_time"`
	Servings    int          `json:"servings"`
	Publisher   string       `json:"publisher"`
	SourceURL   string       `json:"source_url"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient fields are all optional upstream; absent ones render blank.
type Ingredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	Description *string  `json:"description"`
}

// RecipeEnvelope is the upstream response body: {"data":{"recipe":{...}}}.
type RecipeEnvelope struct {
	Data struct {
		Recipe Recipe `json:"recipe"`
	} `json:"data"`
}

// Line renders the ingredient as "{quantity} {unit} {description}", skipping absent parts.
func (i Ingredient) Line() string {
	parts := make([]string, 0, 3)
	if i.Quantity != nil {
		parts = append(parts, strconv.FormatFloat(*i.Quantity, 'f', -1, 64))
	}
	if i.Unit != nil && *i.Unit != "" {
		parts = append(parts, *i.Unit)
	}
	if i.Description != nil && *i.Description != "" {
		parts = append(parts, *i.Description)
	}
	return strings.Join(parts, " ")
}

// SecureImageURL upgrades plain http image links to https.
func (r Recipe) SecureImageURL() string {
	if r.ImageURL == "" || strings.HasPrefix(r.ImageURL, "https") {
		return r.ImageURL
	}
	return strings.Replace(r.ImageURL, "http", "https", 1)
}

// PageTitle is the document title for the recipe page.
func (r Recipe) PageTitle() string {
	title := r.Title
	if title == "" {
		title = " "
	}
	return "Recipes - " + title
}
