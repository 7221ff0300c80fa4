package recipe

import (
	"context"

	"DishCraft-Backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeHistory(ctx context.Context, userID string, limit int) ([]*entities.Recipe, error)
		UpdateImageURL(ctx context.Context, id string, imageURL string) error
		GetImageURL(ctx context.Context, id string) (string, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeHistory(ctx context.Context, userID string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateImageURL is the second phase of recipe persistence: the row is
// inserted with a loading placeholder and patched here once resolution
// finishes. Scoped to exactly one row by primary key.
func (r *recipeRepository) UpdateImageURL(ctx context.Context, id string, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *recipeRepository) GetImageURL(ctx context.Context, id string) (string, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Select("image_url").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}
