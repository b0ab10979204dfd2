// Package filter narrows an in-memory feature list by a user query.
//
// A query is either a milestone comparison such as ">=120", which matches
// features shipping on any platform at a qualifying milestone, or free text
// matched case-insensitively against feature names. A category restricts the
// result further. Filtering never touches the network.
//
// Panel wraps Apply with the state an interactive view needs: the deep-link
// fragment that mirrors the current query, and observers that receive a
// FilterEvent after each run.
package filter
