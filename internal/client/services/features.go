package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/filter"
	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/chromestatus/csclient/internal/client/repositories/features"
	"github.com/chromestatus/csclient/internal/client/repositories/metadata"
	"github.com/chromestatus/csclient/internal/dbx"
	"github.com/chromestatus/csclient/internal/logging"
)

// PageSize is the number of features requested per search page.
const PageSize = 100

type FeatureService interface {
	// Refresh fetches every feature matching query and replaces the cache.
	Refresh(ctx context.Context, query string) (int, error)
	// Search filters the cached list. It never calls the backend.
	Search(ctx context.Context, query, category string) ([]models.Feature, error)
	// Get loads a feature, falling back to the cache when the backend is
	// unavailable. cached reports whether the fallback was used.
	Get(ctx context.Context, id int64) (f *models.Feature, cached bool, err error)
	Star(ctx context.Context, id int64, on bool) error
	Starred(ctx context.Context) ([]int64, error)
	Links(ctx context.Context, id int64) ([]models.FeatureLink, error)
	Gates(ctx context.Context, id int64) ([]models.Gate, error)
	Comments(ctx context.Context, id, gateID int64) ([]models.Comment, error)
	Comment(ctx context.Context, id, gateID int64, text string) error
	Vote(ctx context.Context, id, gateID int64, state int) error
	Channels(ctx context.Context) (models.Channels, error)
	Components(ctx context.Context) ([]models.BlinkComponent, error)
}

type featureService struct {
	client client.Client
	db     *sql.DB
	panel  *filter.Panel
	logger logging.Logger
	now    func() time.Time
}

func NewFeatureService(c client.Client, db *sql.DB, panel *filter.Panel, logger logging.Logger) FeatureService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &featureService{client: c, db: db, panel: panel, logger: logger, now: time.Now}
}

func (s *featureService) Refresh(ctx context.Context, query string) (int, error) {
	var all []models.Feature
	for {
		page, err := s.client.SearchFeatures(ctx, client.SearchParams{Query: query, Start: len(all), Num: PageSize})
		if err != nil {
			return 0, fmt.Errorf("search error: %w", err)
		}
		all = append(all, page.Features...)
		if len(page.Features) == 0 || len(all) >= page.TotalCount {
			break
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := features.NewSQLiteRepository(tx).ReplaceAll(ctx, all); err != nil {
			return err
		}
		meta := metadata.NewSQLiteRepository(tx)
		if err := meta.SetString(ctx, metadata.KeyFeaturesQuery, query); err != nil {
			return err
		}
		return meta.SetTime(ctx, metadata.KeyFeaturesSynced, s.now())
	})
	if err != nil {
		return 0, fmt.Errorf("cache saving error: %w", err)
	}

	s.panel.SetFeatures(all)
	s.logger.Info(ctx, "features refreshed", "query", query, "count", len(all))
	return len(all), nil
}

func (s *featureService) Search(ctx context.Context, query, category string) ([]models.Feature, error) {
	if !s.panel.Loaded() {
		list, err := features.NewSQLiteRepository(s.db).GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("cache reading error: %w", err)
		}
		if len(list) == 0 {
			// An empty cache is only valid after a refresh has run.
			synced, err := metadata.NewSQLiteRepository(s.db).GetTime(ctx, metadata.KeyFeaturesSynced)
			if err != nil {
				return nil, fmt.Errorf("cache reading error: %w", err)
			}
			if synced.IsZero() {
				return nil, client.ErrLocalDataNotAvailable
			}
		}
		s.panel.SetFeatures(list)
	}
	return s.panel.Filter(query, category), nil
}

func (s *featureService) Get(ctx context.Context, id int64) (*models.Feature, bool, error) {
	repo := features.NewSQLiteRepository(s.db)

	f, err := s.client.GetFeature(ctx, id)
	if err == nil {
		// keep an already cached copy current
		if _, cerr := repo.GetByID(ctx, id); cerr == nil {
			if uerr := repo.Upsert(ctx, f); uerr != nil {
				s.logger.Warn(ctx, "cached feature not updated", "id", id, "error", uerr)
			}
		}
		return f, false, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return nil, false, err
	}

	cached, cerr := repo.GetByID(ctx, id)
	if errors.Is(cerr, features.ErrNotFound) {
		return nil, false, fmt.Errorf("%w: %w", client.ErrLocalDataNotAvailable, err)
	}
	if cerr != nil {
		return nil, false, errors.Join(err, cerr)
	}
	s.logger.Warn(ctx, "backend unavailable, serving cached feature", "id", id)
	return cached, true, nil
}

func (s *featureService) Star(ctx context.Context, id int64, on bool) error {
	return s.client.SetStar(ctx, id, on)
}

func (s *featureService) Starred(ctx context.Context) ([]int64, error) {
	return s.client.GetStars(ctx)
}

func (s *featureService) Links(ctx context.Context, id int64) ([]models.FeatureLink, error) {
	resp, err := s.client.GetFeatureLinks(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *featureService) Gates(ctx context.Context, id int64) ([]models.Gate, error) {
	return s.client.GetGates(ctx, id)
}

func (s *featureService) Comments(ctx context.Context, id, gateID int64) ([]models.Comment, error) {
	return s.client.GetComments(ctx, id, gateID)
}

func (s *featureService) Comment(ctx context.Context, id, gateID int64, text string) error {
	_, err := s.client.PostComment(ctx, id, gateID, text, 0)
	return err
}

func (s *featureService) Vote(ctx context.Context, id, gateID int64, state int) error {
	_, err := s.client.SetVote(ctx, id, gateID, state)
	return err
}

func (s *featureService) Channels(ctx context.Context) (models.Channels, error) {
	return s.client.GetChannels(ctx)
}

func (s *featureService) Components(ctx context.Context) ([]models.BlinkComponent, error) {
	return s.client.GetBlinkComponents(ctx)
}
