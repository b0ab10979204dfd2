// Package services holds the application services the CLI drives. They sit
// between the API client, the local SQLite cache and the feature filter.
//
// AuthService manages the signed-in session and its cached token.
// FeatureService refreshes the cached feature list, filters it offline and
// proxies the per-feature API calls.
package services
