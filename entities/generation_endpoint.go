package entities

import (
	"time"

	"github.com/google/uuid"
)

// GenerationEndpoint records the last announced address of the remote image
// generation service. Latest row per type wins; old rows are kept for audit.
type GenerationEndpoint struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Type        string    `gorm:"index" json:"type"` // "image_generation"
	EndpointURL string    `json:"endpoint_url"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`
}
