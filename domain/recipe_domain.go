package domain

import (
	"errors"
	"time"
)

// Placeholder image references. ImageLoadingPlaceholder marks a recipe whose
// image resolution is still in flight; ImageNotFoundPlaceholder is the
// sentinel returned whenever resolution fails. Callers treat both as
// "no real image" and must not fail a request over either.
const (
	ImageLoadingPlaceholder  = "https://via.placeholder.com/300?text=Image+Loading"
	ImageNotFoundPlaceholder = "https://via.placeholder.com/300?text=Image+Not+Found"
)

var (
	MessageSuccessGenerateRecipe = "recipe generated successfully"
	MessageSuccessGetRecipe      = "success get recipe"
	MessageSuccessGetHistory     = "success get recipe history"
	MessageSuccessShareRecipe    = "recipe shared successfully"

	MessageFailedGenerateRecipe = "failed to generate recipe"
	MessageFailedGetRecipe      = "failed to get recipe"
	MessageFailedGetHistory     = "failed to get recipe history"
	MessageFailedShareRecipe    = "failed to share recipe"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNoIngredients      = errors.New("ingredients required")
	ErrRecipeNameRequired = errors.New("recipe name required")

	// Upstream model failures. Format means the response was not valid JSON
	// at all; schema means it parsed but required fields were missing or of
	// the wrong shape. Both surface to the caller as a generic 500.
	ErrUpstreamFormat = errors.New("upstream model returned unparsable JSON")
	ErrUpstreamSchema = errors.New("upstream model returned malformed recipe data")
)

type (
	GenerateRecipeRequest struct {
		Ingredients    []string `json:"ingredients" validate:"required,min=1"`
		DifficultyMode bool     `json:"difficultyMode"`
		Language       string   `json:"language"`
		CookingStyle   string   `json:"cookingStyle"`
		ServingSize    int      `json:"servingSize"`
		Theme          string   `json:"theme,omitempty"`
	}

	GenerateFromNameRequest struct {
		RecipeName  string `json:"recipeName" validate:"required"`
		Language    string `json:"language"`
		ServingSize int    `json:"servingSize"`
	}

	Step struct {
		StepNumber  int    `json:"stepNumber"`
		Instruction string `json:"instruction"`
		Time        string `json:"time,omitempty"`
	}

	GenerateRecipeResponse struct {
		Recipe      string   `json:"recipe"`
		Ingredients []string `json:"ingredients"`
		Steps       []Step   `json:"steps"`
		ImageURL    string   `json:"imageUrl"`
		RecipeID    string   `json:"recipeId"`
	}

	RecipeDetail struct {
		ID             string    `json:"id"`
		UserID         string    `json:"userId"`
		RecipeName     string    `json:"recipeName"`
		Ingredients    []string  `json:"ingredients"`
		Steps          []Step    `json:"steps"`
		ImageURL       string    `json:"imageUrl"`
		CookingStyle   string    `json:"cookingStyle,omitempty"`
		ServingSize    int       `json:"servingSize"`
		Language       string    `json:"language"`
		DifficultyMode bool      `json:"difficultyMode"`
		Theme          string    `json:"theme,omitempty"`
		CreatedAt      time.Time `json:"createdAt"`
	}

	ShareRecipeRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
