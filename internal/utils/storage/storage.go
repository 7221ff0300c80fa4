package storage

import (
	"context"
)

// ImageStore persists a resolved dish image keyed by recipe id and returns
// the public reference clients can load it from.
type ImageStore interface {
	SaveImage(ctx context.Context, recipeID string, data []byte) (string, error)
}
