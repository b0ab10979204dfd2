// Package auth provides the token sources a CSClient refreshes from.
//
// ServerSource asks the backend for a token bound to the current session
// cookie. CachedSource keeps the last token in the local metadata cache so a
// restarted CLI reuses it until it expires. Static serves a fixed token and is
// meant for tests and scripted use.
package auth
