package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// downloadTimeout bounds the fetch of a single image.
const downloadTimeout = 30 * time.Second

type (
	// ImageResolver obtains a dish image for a recipe. Resolve never returns
	// an error: any failure degrades to domain.ImageNotFoundPlaceholder.
	// Callers cannot distinguish "failed" from "not yet resolved" except by
	// the sentinel value, and must not block on resolution beyond the
	// resolver's own timeouts.
	ImageResolver interface {
		Resolve(ctx context.Context, subject string, recipeID string) string
	}

	// ImageURLLookup reports the image URL already persisted for a recipe,
	// letting resolvers short-circuit repeat work. Implemented by the recipe
	// repository.
	ImageURLLookup interface {
		GetImageURL(ctx context.Context, recipeID string) (string, error)
	}
)

func downloadImage(ctx context.Context, client *http.Client, imageURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
