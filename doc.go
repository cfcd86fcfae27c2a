// Package shortlink is a client SDK for a URL-shortening service.
//
// NewClient wires the two services the SDK is made of around one shared
// session and HTTP client:
//  1. Auth – login/logout and token persistence (package client/auth) and
//  2. Links – link listing, creation, deletion and analytics (package client/links).
//
// Requests made through either service carry the session's bearer token
// while the user is signed in, and none once signed out.
//
// Example:
//
//	cli, _ := shortlink.NewClient(&shortlink.ClientOptions{BaseURL: "http://localhost:8000", StoreURL: "~/.shortlink/storage.json"})
//	_, _ = cli.Auth.Login(ctx, "alice", "secret")
//	links, _ := cli.Links.FetchLinks(ctx)
//
// ClientOptions can be populated from CLI flags, environment variables or a
// YAML file (LoadClientOptions).
package shortlink
