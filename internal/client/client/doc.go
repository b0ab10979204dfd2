// Package client contains the ChromeStatus REST API client.
//
// # Overview
//
// The package provides:
//  1. CSClient, which performs JSON calls against the /api/v0 endpoints,
//     strips the anti-XSSI prefix from responses, attaches a bearer token and
//     keeps that token fresh through a TokenSource.
//  2. Typed domain methods (features, stages, gates, votes, comments, stars,
//     origin trials, channels, blink components, feature links, session).
//  3. Local cache bootstrap (InitDatabase, RunMigrations) wiring SQLite and
//     the embedded goose migrations.
//
// # Errors
//
// A non-2xx response becomes *HTTPError carrying resource, method and status.
// GetFeature reports a missing feature as *FeatureNotFoundError. Sentinels
// ErrUnavailable and ErrUnauthorized can be matched with errors.Is against
// both transport failures and HTTP errors. Nothing is retried automatically.
//
// # Concurrency
//
// CSClient is safe for concurrent use. Callers that find the token expired at
// the same time share a single refresh.
package client
