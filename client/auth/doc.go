// Package auth owns the client session: the current access token, its expiry
// hint and the derived authenticated status.
//
// Service.Login posts form credentials to the login endpoint, keeps the token
// in the Session and persists it to durable storage under store.TokenKey.
// Service.Logout makes a best-effort call to the logout endpoint and then
// always clears the session and storage, whatever the call's outcome.
//
// The Session implements oauth2.TokenSource. The shared HTTP client built by
// this package reads the token from it on every request (see the transport
// sub-package), so any service using that client is authenticated exactly
// while the session holds a token:
//
//	svc, _ := auth.New("http://localhost:8000", auth.WithStore(fileStore))
//	_, err := svc.Login(ctx, "alice", "secret")
//	linksService := links.New("http://localhost:8000", links.WithHTTPClient(svc.HTTPClient()))
package auth
