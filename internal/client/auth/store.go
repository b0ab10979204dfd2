package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/chromestatus/csclient/internal/client/repositories/metadata"
	"github.com/chromestatus/csclient/internal/dbx"
	"github.com/chromestatus/csclient/internal/logging"
)

// TokenStore persists the held token between runs.
type TokenStore interface {
	LoadToken(ctx context.Context) (models.Token, error)
	SaveToken(ctx context.Context, t models.Token) error
	ClearToken(ctx context.Context) error
}

// MetadataStore keeps the token in the metadata table.
type MetadataStore struct {
	db *sql.DB
}

func NewMetadataStore(db *sql.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

var _ TokenStore = (*MetadataStore)(nil)

func (s *MetadataStore) LoadToken(ctx context.Context) (models.Token, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	value, err := repo.GetString(ctx, metadata.KeyToken)
	if err != nil || value == "" {
		return models.Token{}, err
	}
	exp, err := repo.GetTime(ctx, metadata.KeyTokenExpiresAt)
	if err != nil {
		return models.Token{}, err
	}
	return models.Token{Value: value, ExpiresAt: exp}, nil
}

// SaveToken writes the value and its expiry in one transaction.
func (s *MetadataStore) SaveToken(ctx context.Context, t models.Token) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.SetString(ctx, metadata.KeyToken, t.Value); err != nil {
			return err
		}
		return repo.SetTime(ctx, metadata.KeyTokenExpiresAt, t.ExpiresAt)
	})
}

func (s *MetadataStore) ClearToken(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, metadata.KeyToken, metadata.KeyTokenExpiresAt)
}

// CachedSource serves the stored token while it is valid and otherwise
// refreshes from next, storing the result.
type CachedSource struct {
	next   client.TokenSource
	store  TokenStore
	now    func() time.Time
	logger logging.Logger
}

func NewCachedSource(next client.TokenSource, store TokenStore, now func() time.Time, logger logging.Logger) *CachedSource {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &CachedSource{next: next, store: store, now: now, logger: logger}
}

var _ client.TokenSource = (*CachedSource)(nil)

// Token never fails because of the cache: a broken store is logged and the
// request goes to next.
func (s *CachedSource) Token(ctx context.Context) (models.Token, error) {
	cached, err := s.store.LoadToken(ctx)
	if err != nil {
		s.logger.Warn(ctx, "cached token unreadable", "error", err)
	} else if !cached.Expired(s.now()) {
		return cached, nil
	}

	fresh, err := s.next.Token(ctx)
	if err != nil {
		return models.Token{}, err
	}

	if err := s.store.SaveToken(ctx, fresh); err != nil {
		s.logger.Warn(ctx, "token not cached", "error", err)
	}
	return fresh, nil
}
