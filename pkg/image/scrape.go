package image

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"DishCraft-Backend/domain"
	"DishCraft-Backend/internal/utils/storage"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// pageLoadTimeout bounds the headless-browser navigation to the image search
// results page.
const pageLoadTimeout = 60 * time.Second

// firstImageJS pulls the first plausible image URL off the results page,
// skipping inline data: thumbnails.
const firstImageJS = `(() => {
	const images = document.querySelectorAll('img');
	for (const img of images) {
		const src = img.src;
		if (src && !src.startsWith('data:image') && src.includes('http')) {
			return src;
		}
	}
	return '';
})()`

// scrapeResolver drives a headless browser to an image search results page,
// extracts the first usable image URL, downloads it, and persists it keyed by
// recipe id.
type scrapeResolver struct {
	store      storage.ImageStore
	httpClient *http.Client
	logger     *zap.Logger
}

func NewScrapeResolver(store storage.ImageStore, logger *zap.Logger) ImageResolver {
	return &scrapeResolver{
		store:      store,
		httpClient: &http.Client{Timeout: downloadTimeout},
		logger:     logger,
	}
}

func (r *scrapeResolver) Resolve(ctx context.Context, subject string, recipeID string) string {
	imageURL, err := r.findImageURL(ctx, subject)
	if err != nil {
		r.logger.Warn("image scrape failed",
			zap.String("subject", subject),
			zap.String("recipe_id", recipeID),
			zap.Error(err),
		)
		return domain.ImageNotFoundPlaceholder
	}

	data, err := downloadImage(ctx, r.httpClient, imageURL)
	if err != nil {
		r.logger.Warn("image download failed",
			zap.String("image_url", imageURL),
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

func (r *scrapeResolver) findImageURL(ctx context.Context, subject string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, pageLoadTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	searchURL := "https://www.google.com/search?hl=en&tbm=isch&q=" + url.QueryEscape(subject)

	var imageURL string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(searchURL),
		chromedp.Evaluate(`window.scrollBy(0, 1000)`, nil),
		chromedp.Evaluate(firstImageJS, &imageURL),
	)
	if err != nil {
		return "", err
	}
	if imageURL == "" {
		return "", errors.New("no image found for subject")
	}
	return imageURL, nil
}
