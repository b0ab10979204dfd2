package features

import (
	"context"
	"errors"

	"github.com/chromestatus/csclient/internal/client/models"
)

// ErrNotFound is returned by GetByID when the feature is not cached.
var ErrNotFound = errors.New("feature not cached")

// Repository describes the feature cache.
type Repository interface {
	// ReplaceAll drops every cached feature and stores list in its order.
	// Run it inside a transaction so readers never see a partial list.
	ReplaceAll(ctx context.Context, list []models.Feature) error

	// Upsert stores one feature, keeping its position when already cached
	// and appending it otherwise.
	Upsert(ctx context.Context, f *models.Feature) error

	// GetAll returns the cached features in position order. An empty cache
	// yields an empty slice and no error.
	GetAll(ctx context.Context) ([]models.Feature, error)

	GetByID(ctx context.Context, id int64) (*models.Feature, error)

	Count(ctx context.Context) (int, error)
}
