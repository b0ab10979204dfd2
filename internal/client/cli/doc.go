// Package cli provides the interactive ChromeStatus command-line client.
//
// It wires configuration, the local cache, the API client and services, and
// an interactive REPL. Typical flow: restore the remembered session, start a
// background connectivity watcher, then execute user commands until exit.
//
// Key features:
//   - Sign in / sign out / status
//   - Refresh the cached feature list and search it offline
//   - Show a feature (served from the cache while the backend is down)
//   - Stars, links, review gates, comments and votes
//   - Release channels and Blink components
//
// Filter results reach the terminal as filter.FilterEvent values delivered to
// the App's observer; commands never print search results themselves.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
