// Package models defines the typed shapes of ChromeStatus API payloads held
// by the client: features with per-browser implementation status, bearer
// tokens, feature links and the review entities (gates, votes, comments).
package models
