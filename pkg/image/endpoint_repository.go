package image

import (
	"context"
	"time"

	"DishCraft-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EndpointTypeImageGeneration = "image_generation"

type (
	// EndpointRepository stores announced addresses of the remote image
	// generation service. The newest row per type is authoritative.
	EndpointRepository interface {
		SaveEndpoint(ctx context.Context, endpointType, endpointURL string) error
		GetLatestEndpoint(ctx context.Context, endpointType string) (*entities.GenerationEndpoint, error)
	}

	endpointRepository struct {
		db *gorm.DB
	}
)

func NewEndpointRepository(db *gorm.DB) EndpointRepository {
	return &endpointRepository{db: db}
}

func (r *endpointRepository) SaveEndpoint(ctx context.Context, endpointType, endpointURL string) error {
	endpoint := entities.GenerationEndpoint{
		ID:          uuid.New(),
		Type:        endpointType,
		EndpointURL: endpointURL,
		CreatedAt:   time.Now(),
	}
	return r.db.WithContext(ctx).Create(&endpoint).Error
}

func (r *endpointRepository) GetLatestEndpoint(ctx context.Context, endpointType string) (*entities.GenerationEndpoint, error) {
	var endpoint entities.GenerationEndpoint
	if err := r.db.WithContext(ctx).
		Where("type = ?", endpointType).
		Order("created_at desc").
		First(&endpoint).Error; err != nil {
		return nil, err
	}
	return &endpoint, nil
}
