// Package state holds the request state shared by a service (loading flag and
// last error message) and the per-call Result produced by Track.
//
// The shared State is last-writer-wins: when two calls on the same service
// overlap, whichever finishes last decides the final Loading and Error
// values. Callers that need per-call outcomes should use the Result returned
// by Track instead of the shared flags.
package state
