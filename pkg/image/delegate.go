package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"DishCraft-Backend/domain"
	"DishCraft-Backend/internal/utils/storage"

	"go.uber.org/zap"
)

// generateTimeout bounds the remote image generation call. Generation on the
// remote side is slow; the budget is generous but still finite.
const generateTimeout = 60 * time.Second

// delegateResolver asks a remote image generation service for a dish image.
// The service's address rotates, so it is looked up through the
// EndpointCache on every resolution.
type delegateResolver struct {
	cache      *EndpointCache
	store      storage.ImageStore
	lookup     ImageURLLookup
	httpClient *http.Client
	logger     *zap.Logger
}

func NewDelegateResolver(cache *EndpointCache, store storage.ImageStore, lookup ImageURLLookup, logger *zap.Logger) ImageResolver {
	return &delegateResolver{
		cache:      cache,
		store:      store,
		lookup:     lookup,
		httpClient: &http.Client{Timeout: generateTimeout},
		logger:     logger,
	}
}

func (r *delegateResolver) Resolve(ctx context.Context, subject string, recipeID string) string {
	// Idempotent re-resolution: a recipe that already has a real image keeps
	// it, with no new network call.
	if existing, err := r.lookup.GetImageURL(ctx, recipeID); err == nil && isRealImage(existing) {
		return existing
	}

	endpoint, err := r.cache.Get(ctx)
	if err != nil {
		r.logger.Warn("no image generation endpoint",
			zap.String("recipe_id", recipeID),
			zap.Error(err),
		)
		return domain.ImageNotFoundPlaceholder
	}

	tempURL, err := r.requestGeneration(ctx, endpoint, subject)
	if err != nil {
		r.logger.Warn("remote image generation failed",
			zap.String("endpoint", endpoint),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return domain.ImageNotFoundPlaceholder
	}

	data, err := downloadImage(ctx, r.httpClient, tempURL)
	if err != nil {
		r.logger.Warn("generated image download failed",
			zap.String("image_url", tempURL),
			zap.String("recipe_id", recipeID),
			zap.Error(err),
		)
		return domain.ImageNotFoundPlaceholder
	}

	ref, err := r.store.SaveImage(ctx, recipeID, data)
	if err != nil {
		r.logger.Warn("image store failed",
			zap.String("recipe_id", recipeID),
			zap.Error(err),
		)
		return domain.ImageNotFoundPlaceholder
	}
	return ref
}

// requestGeneration asks the remote service to produce an image and returns
// the temporary URL it serves the result from.
func (r *delegateResolver) requestGeneration(ctx context.Context, endpoint, subject string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	requestJSON, err := json.Marshal(map[string]string{"dish": subject})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/generate", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("image generation request failed: " + resp.Status)
	}

	var result struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.ImageURL == "" {
		return "", errors.New("image generation response missing image_url")
	}
	return result.ImageURL, nil
}

// isRealImage reports whether ref is an actual resolved image rather than one
// of the placeholder sentinels.
func isRealImage(ref string) bool {
	return ref != "" &&
		ref != domain.ImageLoadingPlaceholder &&
		ref != domain.ImageNotFoundPlaceholder
}
