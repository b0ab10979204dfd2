package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chromestatus/csclient/internal/client/auth"
	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/repositories/metadata"
	"github.com/chromestatus/csclient/internal/dbx"
)

// Status is the local view of the session.
type Status struct {
	Email          string
	SignedIn       bool
	TokenExpiresAt time.Time
}

// AuthService defines session operations for the CLI.
//
//   - SignIn: exchange a credential for a session and remember the user.
//   - SignOut: end the session; local session data is wiped even on failure.
//   - Status: report the remembered user and token expiry.
//   - Ping: check that the backend answers.
type AuthService interface {
	SignIn(ctx context.Context, credential string) (string, error)
	SignOut(ctx context.Context) error
	Status(ctx context.Context) (Status, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	store  auth.TokenStore
}

// NewAuthService constructs an AuthService bound to the given API client and
// cache database.
func NewAuthService(c client.Client, db *sql.DB) AuthService {
	return &authService{client: c, db: db, store: auth.NewMetadataStore(db)}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// SignIn returns the email of the signed-in user. The token held before
// sign-in belongs to the previous session and is dropped from the cache, so
// the next request fetches one for the new user.
func (a *authService) SignIn(ctx context.Context, credential string) (string, error) {
	if err := a.client.SignIn(ctx, credential); err != nil {
		return "", fmt.Errorf("sign in error: %w", err)
	}
	if err := a.store.ClearToken(ctx); err != nil {
		return "", fmt.Errorf("token cache error: %w", err)
	}

	perms, err := a.client.GetPermissions(ctx, false)
	if err != nil {
		return "", fmt.Errorf("permissions error: %w", err)
	}
	if perms == nil {
		return "", fmt.Errorf("%w: credential not accepted", client.ErrUnauthorized)
	}

	if err := a.getMetadataRepo().SetString(ctx, metadata.KeyEmail, perms.Email); err != nil {
		return "", fmt.Errorf("session saving error: %w", err)
	}
	return perms.Email, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	signOutErr := a.client.SignOut(ctx)

	clearErr := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx,
			metadata.KeyToken, metadata.KeyTokenExpiresAt, metadata.KeyEmail)
	})

	if signOutErr != nil {
		return errors.Join(fmt.Errorf("sign out error: %w", signOutErr), clearErr)
	}
	return clearErr
}

func (a *authService) Status(ctx context.Context) (Status, error) {
	email, err := a.getMetadataRepo().GetString(ctx, metadata.KeyEmail)
	if err != nil {
		return Status{}, err
	}

	tok := a.client.Token()
	if tok.Value == "" {
		if tok, err = a.store.LoadToken(ctx); err != nil {
			return Status{}, err
		}
	}

	return Status{Email: email, SignedIn: email != "", TokenExpiresAt: tok.ExpiresAt}, nil
}

// Ping reports whether the backend is reachable. It does not touch the
// session, so a failing token endpoint does not look like an outage.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
