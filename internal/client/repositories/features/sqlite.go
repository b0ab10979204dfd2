package features

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/chromestatus/csclient/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var _ Repository = (*SQLiteRepository)(nil)

const upsertQuery = `INSERT INTO features (id, position, name, category, payload, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET name = excluded.name,
		category = excluded.category,
		payload = excluded.payload,
		updated_at = excluded.updated_at
`

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Feature) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM features`); err != nil {
		return fmt.Errorf("failed to clear features: %w", err)
	}
	for i := range list {
		if err := r.insert(ctx, &list[i], i); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, f *models.Feature) error {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM features`).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to read next position: %w", err)
	}
	return r.insert(ctx, f, next)
}

func (r *SQLiteRepository) insert(ctx context.Context, f *models.Feature, position int) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode feature %d: %w", f.ID, err)
	}
	if _, err := r.db.ExecContext(ctx, upsertQuery, f.ID, position, f.Name, f.Category, payload); err != nil {
		return fmt.Errorf("failed to upsert feature %d: %w", f.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Feature, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, payload FROM features ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select features: %w", err)
	}
	defer rows.Close()

	result := []models.Feature{}
	for rows.Next() {
		var id int64
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		var f models.Feature
		if err := json.Unmarshal(payload, &f); err != nil {
			return nil, fmt.Errorf("failed to decode feature %d: %w", id, err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Feature, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM features WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}

	f := &models.Feature{}
	if err := json.Unmarshal(payload, f); err != nil {
		return nil, fmt.Errorf("failed to decode feature %d: %w", id, err)
	}
	return f, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM features`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count features: %w", err)
	}
	return n, nil
}
