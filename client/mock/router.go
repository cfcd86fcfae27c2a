package mock

import (
	"bytes"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter routes requests to the service's endpoint handlers.
func NewRouter(s *LinkService) http.Handler {
	r := chi.NewRouter()
	r.Use(s.recorder)
	r.Post("/auth/login", override(&s.LoginHandler, s.defaultLoginHandler))
	r.Post("/auth/logout", override(&s.LogoutHandler, s.defaultLogoutHandler))
	r.Get("/links", override(&s.LinksHandler, s.listLinksHandler))
	r.With(s.authenticated).Post("/links", s.createLinkHandler)
	r.Get("/links/{id}", s.getLinkHandler)
	r.With(s.authenticated).Put("/links/{id}", s.updateLinkHandler)
	r.With(s.authenticated).Delete("/links/{id}", s.deleteLinkHandler)
	r.With(s.authenticated).Get("/links/{id}/analytics", s.analyticsHandler)
	r.Get("/s/{id}", s.redirectHandler)
	return r
}

// override dispatches to *custom when it is set at request time.
func override(custom *http.HandlerFunc, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler := *custom; handler != nil {
			handler(w, r)
			return
		}
		fallback(w, r)
	}
}

// recorder captures every request before routing.
func (s *LinkService) recorder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			_ = r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.record(Request{
			Method:        r.Method,
			URI:           r.RequestURI,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          string(body),
		})
		next.ServeHTTP(w, r)
	})
}

// authenticated rejects requests without a valid, unrevoked bearer token.
func (s *LinkService) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if _, err = s.parseToken(token); err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}
