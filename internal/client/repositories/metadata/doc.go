// Package metadata stores client state (the held token, the signed-in user,
// the last feature sync) as key/value pairs in the local SQLite cache.
//
// Times are stored as decimal unix seconds; an absent time key reads back as
// the zero time.
//
//	repo := metadata.NewSQLiteRepository(db)
//	_ = repo.SetString(ctx, metadata.KeyEmail, "user@example.com")
//	email, _ := repo.GetString(ctx, metadata.KeyEmail)
package metadata
