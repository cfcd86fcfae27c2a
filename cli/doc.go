// Package cli implements the shortlink command line: signing in and out and
// managing links through the shortlink SDK.
//
// Usage:
//
//	shortlink login -U alice -P secret
//	shortlink create --target https://example.com --id docs
//	shortlink list
//	shortlink analytics docs
//	shortlink logout
//
// Global options (-u/--url, -s/--store, --timeout) may also come from the
// SHORTLINK_* environment variables, a .env file or a YAML config (-c).
package cli
