package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestIngredientLine(t *testing.T) {
	tests := []struct {
		name string
		in   Ingredient
		want string
	}{
		{
			name: "all fields",
			in:   Ingredient{Quantity: ptr(1.0), Unit: ptr("kg"), Description: ptr("dough")},
			want: "1 kg dough",
		},
		{
			name: "fractional quantity",
			in:   Ingredient{Quantity: ptr(0.5), Unit: ptr("cup"), Description: ptr("milk")},
			want: "0.5 cup milk",
		},
		{
			name: "no unit",
			in:   Ingredient{Quantity: ptr(2.0), Unit: ptr(""), Description: ptr("eggs")},
			want: "2 eggs",
		},
		{
			name: "description only",
			in:   Ingredient{Description: ptr("salt to taste")},
			want: "salt to taste",
		},
		{
			name: "nothing",
			in:   Ingredient{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Line())
		})
	}
}

func TestIngredientDecodesNulls(t *testing.T) {
	var ing Ingredient
	err := json.Unmarshal([]byte(`{"quantity":null,"unit":"","description":"basil"}`), &ing)
	require.NoError(t, err)

	assert.Nil(t, ing.Quantity)
	assert.Equal(t, "basil", ing.Line())
}

func TestSecureImageURL(t *testing.T) {
	assert.Equal(t, "https://img.test/a.jpg", Recipe{ImageURL: "http://img.test/a.jpg"}.SecureImageURL())
	assert.Equal(t, "https://img.test/a.jpg", Recipe{ImageURL: "https://img.test/a.jpg"}.SecureImageURL())
	assert.Equal(t, "", Recipe{}.SecureImageURL())
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Recipes - Pizza", Recipe{Title: "Pizza"}.PageTitle())
	assert.Equal(t, "Recipes -  ", Recipe{}.PageTitle())
}

func TestRecipeEnvelopeDecode(t *testing.T) {
	body := `{"data":{"recipe":{"id":"5add62b3","title":"Pizza","image_url":"http://img.test/p.jpg",
		"ingredients":[{"quantity":1,"unit":"kg","description":"dough"}],"cooking_time":30,"servings":2,
		"publisher":"Closet Cooking","source_url":"http://closetcooking.test/pizza"}}}`

	var env RecipeEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	r := env.Data.Recipe
	assert.Equal(t, "5add62b3", r.ID)
	assert.Equal(t, "Pizza", r.Title)
	assert.Equal(t, 30, r.CookingTime)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, "Closet Cooking", r.Publisher)
	assert.Equal(t, "http://closetcooking.test/pizza", r.SourceURL)
	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, "1 kg dough", r.Ingredients[0].Line())
}
