package recipe

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"DishCraft-Backend/domain"
	"DishCraft-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Recipe{}))
	return db
}

func insertRecipe(t *testing.T, repo RecipeRepository, userID uuid.UUID, name string, createdAt time.Time) uuid.UUID {
	t.Helper()
	rec := entities.Recipe{
		ID:          uuid.New(),
		UserID:      userID,
		RecipeName:  name,
		Ingredients: `["egg"]`,
		Steps:       `[{"stepNumber":1,"instruction":"Cook"}]`,
		ImageURL:    domain.ImageLoadingPlaceholder,
		ServingSize: 1,
		Language:    "en",
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.CreateRecipe(context.Background(), &rec))
	return rec.ID
}

func TestRecipeRepositoryRoundTrip(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	userID := uuid.New()
	id := insertRecipe(t, repo, userID, "Omelette", time.Now())

	rec, err := repo.GetRecipeByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "Omelette", rec.RecipeName)
	assert.Equal(t, userID, rec.UserID)
}

func TestRecipeRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	_, err := repo.GetRecipeByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecipeRepositoryHistoryNewestFirstAndScoped(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	owner := uuid.New()
	other := uuid.New()
	base := time.Now().Add(-time.Hour)

	insertRecipe(t, repo, owner, "Oldest", base)
	insertRecipe(t, repo, owner, "Middle", base.Add(time.Minute))
	insertRecipe(t, repo, owner, "Newest", base.Add(2*time.Minute))
	insertRecipe(t, repo, other, "Not Mine", base.Add(3*time.Minute))

	history, err := repo.GetRecipeHistory(context.Background(), owner.String(), 50)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Newest", history[0].RecipeName)
	assert.Equal(t, "Middle", history[1].RecipeName)
	assert.Equal(t, "Oldest", history[2].RecipeName)
}

func TestRecipeRepositoryHistoryHonorsLimit(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	owner := uuid.New()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		insertRecipe(t, repo, owner, fmt.Sprintf("Recipe %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	history, err := repo.GetRecipeHistory(context.Background(), owner.String(), 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Recipe 4", history[0].RecipeName)
}

func TestRecipeRepositoryUpdateImageURLSingleRow(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	userID := uuid.New()
	target := insertRecipe(t, repo, userID, "Target", time.Now())
	bystander := insertRecipe(t, repo, userID, "Bystander", time.Now())

	require.NoError(t, repo.UpdateImageURL(context.Background(), target.String(), "/images/target.jpg"))

	url, err := repo.GetImageURL(context.Background(), target.String())
	require.NoError(t, err)
	assert.Equal(t, "/images/target.jpg", url)

	url, err = repo.GetImageURL(context.Background(), bystander.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ImageLoadingPlaceholder, url)
}
