package metadata

import (
	"context"
	"time"
)

// Keys written by the client. Values are stored as raw bytes.
const (
	KeyToken          = "auth.token"
	KeyTokenExpiresAt = "auth.token_expires_at"
	KeyEmail          = "auth.email"
	KeyFeaturesQuery  = "features.query"
	KeyFeaturesSynced = "features.synced_at"
)

// Repository is a small key/value store for client state.
type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string) error
	GetTime(ctx context.Context, key string) (time.Time, error)
	SetTime(ctx context.Context, key string, t time.Time) error
}
