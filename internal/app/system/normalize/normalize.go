// Package normalize provides helper functions for consistent string normalization
// of contact form input. Use these helpers instead of scattered strings.ToLower
// and strings.TrimSpace calls to ensure consistent behavior.
package normalize

import "strings"

// Email normalizes an email address by trimming whitespace and converting to lowercase.
// This is the canonical way to normalize emails before storage.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name normalizes a name by trimming whitespace.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Subject normalizes a contact subject by trimming whitespace and converting to lowercase.
func Subject(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Message trims a free-text message and converts CRLF and CR line endings to LF.
func Message(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
