package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// localStore writes images to a directory served statically under /images.
type localStore struct {
	dir string
}

func NewLocalStore(dir string) (ImageStore, error) {
	if dir == "" {
		dir = "./images"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) SaveImage(_ context.Context, recipeID string, data []byte) (string, error) {
	outputPath := filepath.Join(s.dir, recipeID+".jpg")
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}
	return "/images/" + recipeID + ".jpg", nil
}
