package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterIngredients(t *testing.T) {
	filtered := FilterIngredients([]string{"egg", "  ", "", "\t", " rice "})
	assert.Equal(t, []string{"egg", "rice"}, filtered)
}

func TestFilterIngredientsAllBlank(t *testing.T) {
	assert.Empty(t, FilterIngredients([]string{"", "   ", "\n"}))
}

func TestComposeFromIngredientsContainsEveryIngredient(t *testing.T) {
	ingredients := []string{"egg", "rice", "soy sauce"}
	prompt := ComposeFromIngredients(IngredientsPrompt{
		Ingredients: ingredients,
		Language:    "en",
		ServingSize: 2,
	})

	for _, ing := range ingredients {
		assert.Contains(t, prompt, ing)
	}
	assert.Contains(t, prompt, "for 2 servings")
	assert.Contains(t, prompt, "English")
}

func TestComposeFromIngredientsLanguageDirective(t *testing.T) {
	tests := []struct {
		code string
		name string
	}{
		{"en", "English"},
		{"es", "Spanish"},
		{"fr", "French"},
		{"hi", "Hindi"},
		{"xx", "English"}, // unknown codes fall back to English
		{"", "English"},
	}

	for _, tt := range tests {
		prompt := ComposeFromIngredients(IngredientsPrompt{
			Ingredients: []string{"egg"},
			Language:    tt.code,
			ServingSize: 1,
		})
		assert.Contains(t, prompt, "entirely in "+tt.name, "language code %q", tt.code)
	}
}

func TestComposeFromIngredientsDifficultyToggle(t *testing.T) {
	base := IngredientsPrompt{
		Ingredients: []string{"egg"},
		Language:    "en",
		ServingSize: 1,
	}

	simple := ComposeFromIngredients(base)
	assert.Contains(t, simple, "Keep it simple")
	assert.NotContains(t, simple, "challenging")

	base.DifficultyMode = true
	hard := ComposeFromIngredients(base)
	assert.Contains(t, hard, "challenging for experienced chefs")
	assert.NotContains(t, hard, "Keep it simple")
}

func TestComposeFromIngredientsOptionalFields(t *testing.T) {
	prompt := ComposeFromIngredients(IngredientsPrompt{
		Ingredients:  []string{"egg"},
		CookingStyle: "Italian",
		Theme:        "Halloween",
		Language:     "en",
		ServingSize:  4,
	})
	assert.Contains(t, prompt, "Italian cooking style")
	assert.Contains(t, prompt, "Halloween theme")

	bare := ComposeFromIngredients(IngredientsPrompt{
		Ingredients: []string{"egg"},
		Language:    "en",
		ServingSize: 4,
	})
	assert.NotContains(t, bare, "cooking style")
	assert.NotContains(t, bare, "theme")
}

func TestComposeFromIngredientsOutputShapeDirective(t *testing.T) {
	prompt := ComposeFromIngredients(IngredientsPrompt{
		Ingredients: []string{"egg"},
		Language:    "en",
		ServingSize: 1,
	})
	assert.Contains(t, prompt, `"recipe"`)
	assert.Contains(t, prompt, `"ingredients"`)
	assert.Contains(t, prompt, `"instruction"`)
	assert.Contains(t, prompt, `"time"`)
}

func TestComposeFromIngredientsDeterministic(t *testing.T) {
	p := IngredientsPrompt{
		Ingredients:    []string{"egg", "rice"},
		CookingStyle:   "Thai",
		DifficultyMode: true,
		Language:       "fr",
		ServingSize:    3,
	}
	assert.Equal(t, ComposeFromIngredients(p), ComposeFromIngredients(p))
}

func TestComposeFromName(t *testing.T) {
	prompt := ComposeFromName(NamePrompt{
		RecipeName:  "Pad Thai",
		Language:    "es",
		ServingSize: 2,
	})
	assert.Contains(t, prompt, `"Pad Thai"`)
	assert.Contains(t, prompt, "for 2 servings")
	assert.Contains(t, prompt, "Spanish")
	assert.Contains(t, prompt, `"recipe"`)
}
