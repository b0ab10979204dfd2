// Package features caches the last fetched feature list in the local SQLite
// database so it can be filtered without reaching the backend.
//
// Each row keeps the feature's position in the list it was fetched with, so
// GetAll returns features in the backend's order. The full feature is stored
// as a JSON payload next to a few columns used for lookups.
//
//	repo := features.NewSQLiteRepository(tx)
//	_ = repo.ReplaceAll(ctx, list.Features)
//	all, _ := repo.GetAll(ctx)
//	one, _ := repo.GetByID(ctx, 1234)
package features
