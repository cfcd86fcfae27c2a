// Package links manages the signed-in user's shortened links.
//
// Every Service method performs exactly one HTTP request through the shared
// client (see auth.Service.HTTPClient) and tracks it in the service's shared
// loading/error state. Only FetchLinks changes the local collection: create,
// update and delete return the server's answer and leave Links() as it was,
// so callers re-fetch to see their effect.
package links
