// Package store defines the durable key/value storage used to keep the
// session token across process restarts.
//
// It ships with an in-memory implementation for tests and ephemeral sessions,
// and a file-backed implementation that persists a JSON object through
// github.com/viant/afs, so the file may live on any afs-supported location.
package store
