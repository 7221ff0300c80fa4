package image

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"DishCraft-Backend/entities"

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
	require.NoError(t, db.AutoMigrate(&entities.GenerationEndpoint{}))
	return db
}

func TestEndpointRepositoryLatestWins(t *testing.T) {
	repo := NewEndpointRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveEndpoint(ctx, EndpointTypeImageGeneration, "https://old.example.com"))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, repo.SaveEndpoint(ctx, EndpointTypeImageGeneration, "https://new.example.com"))

	endpoint, err := repo.GetLatestEndpoint(ctx, EndpointTypeImageGeneration)
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", endpoint.EndpointURL)
}

func TestEndpointRepositoryScopedByType(t *testing.T) {
	repo := NewEndpointRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveEndpoint(ctx, EndpointTypeImageGeneration, "https://images.example.com"))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, repo.SaveEndpoint(ctx, "something_else", "https://other.example.com"))

	endpoint, err := repo.GetLatestEndpoint(ctx, EndpointTypeImageGeneration)
	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com", endpoint.EndpointURL)
}

func TestEndpointRepositoryEmpty(t *testing.T) {
	repo := NewEndpointRepository(newTestDB(t))

	_, err := repo.GetLatestEndpoint(context.Background(), EndpointTypeImageGeneration)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
