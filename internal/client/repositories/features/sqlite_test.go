package features

import (
	"context"
	"database/sql"
	"testing"

	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/chromestatus/csclient/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE features (
  id INTEGER PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  payload BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}

func feature(id int64, name string, desktop int) models.Feature {
	f := models.Feature{ID: id, Name: name, Category: "Network"}
	f.Browsers.Chrome.Desktop = models.NewMilestone(desktop)
	return f
}

func names(list []models.Feature) []string {
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.Name)
	}
	return out
}

func TestGetAll_EmptyCache(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	all, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestReplaceAll_KeepsOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// ids deliberately out of order
	list := []models.Feature{
		feature(30, "WebGPU", 113),
		feature(10, "Fetch API", 42),
		feature(20, "Fetch Metadata", 76),
	}
	require.NoError(t, r.ReplaceAll(ctx, list))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"WebGPU", "Fetch API", "Fetch Metadata"}, names(all))

	v, ok := all[0].Browsers.Chrome.Desktop.Get()
	require.True(t, ok)
	assert.Equal(t, 113, v)
}

func TestReplaceAll_DropsPreviousList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.ReplaceAll(ctx, []models.Feature{feature(1, "a", 1), feature(2, "b", 2)}))
	require.NoError(t, r.ReplaceAll(ctx, []models.Feature{feature(3, "c", 3)}))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = r.GetByID(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceAll_RollsBackInsideTx(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteRepository(db).ReplaceAll(ctx, []models.Feature{feature(1, "kept", 1)}))

	boom := assert.AnError
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := NewSQLiteRepository(tx).ReplaceAll(ctx, []models.Feature{feature(2, "new", 2)}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := NewSQLiteRepository(db).GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, names(all))
}

func TestUpsert_AppendsNewAndKeepsPosition(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.ReplaceAll(ctx, []models.Feature{feature(1, "a", 1), feature(2, "b", 2)}))

	renamed := feature(1, "a2", 5)
	require.NoError(t, r.Upsert(ctx, &renamed))
	added := feature(9, "z", 9)
	require.NoError(t, r.Upsert(ctx, &added))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "b", "z"}, names(all))
}

func TestGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.ReplaceAll(ctx, []models.Feature{feature(7, "WebGPU", 113)}))

	f, err := r.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "WebGPU", f.Name)
	assert.Equal(t, "Network", f.Category)

	_, err = r.GetByID(ctx, 8)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID_CorruptPayload(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO features (id, position, name, payload) VALUES (1, 0, 'x', 'not json')`)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, 1)
	require.ErrorContains(t, err, "failed to decode feature 1")

	_, err = r.GetAll(ctx)
	require.ErrorContains(t, err, "failed to decode feature 1")
}

func TestClosedDB_ErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	require.ErrorContains(t, r.ReplaceAll(ctx, nil), "failed to clear features")
	_, err := r.GetAll(ctx)
	require.ErrorContains(t, err, "failed to select features")
	_, err = r.Count(ctx)
	require.ErrorContains(t, err, "failed to count features")
}
