package mock

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeDetail(w http.ResponseWriter, status int, message interface{}) {
	writeJSON(w, status, detail{Detail: message})
}

func missingQuery(name string) []map[string]interface{} {
	return []map[string]interface{}{{
		"loc":  []string{"query", name},
		"msg":  "field required",
		"type": "value_error.missing",
	}}
}

func (s *LinkService) defaultLoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	expected, ok := s.users[username]
	if !ok || username == "" || expected != password {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	accessToken, err := s.IssueToken(username)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": accessToken,
		"token_type":   "bearer",
		"expires_in":   s.ExpiresIn,
	})
}

func (s *LinkService) defaultLogoutHandler(w http.ResponseWriter, r *http.Request) {
	if token, err := bearerToken(r.Header.Get("Authorization")); err == nil {
		if claims, err := s.parseToken(token); err == nil {
			s.revoked.Put(claims.ID, s.now())
		}
	}
	writeDetail(w, http.StatusOK, "Successfully logged out")
}

func (s *LinkService) listLinksHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.links.Values())
}

func (s *LinkService) createLinkHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	URL := query.Get("url")
	if URL == "" {
		writeDetail(w, http.StatusUnprocessableEntity, missingQuery("url"))
		return
	}
	if existing, ok := s.findByURL(URL); ok {
		writeJSON(w, http.StatusCreated, existing)
		return
	}
	id := query.Get("custom_id")
	if id == "" {
		var err error
		if id, err = s.newID(); err != nil {
			writeDetail(w, http.StatusInternalServerError, "Server error")
			return
		}
	}
	now := s.now()
	link := Link{ID: id, URL: URL, ShortURL: "/s/" + id, CreateTime: now, LastAccessTime: now}
	if !s.links.PutIfAbsent(id, link) {
		writeDetail(w, http.StatusBadRequest, "Failed to create link. Custom ID may already be in use.")
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (s *LinkService) getLinkHandler(w http.ResponseWriter, r *http.Request) {
	link, ok := s.links.Get(chi.URLParam(r, "id"))
	if !ok {
		writeDetail(w, http.StatusNotFound, "Link not found")
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (s *LinkService) updateLinkHandler(w http.ResponseWriter, r *http.Request) {
	URL := r.URL.Query().Get("url")
	if URL == "" {
		writeDetail(w, http.StatusUnprocessableEntity, missingQuery("url"))
		return
	}
	link, ok := s.links.Update(chi.URLParam(r, "id"), func(link Link) Link {
		link.URL = URL
		return link
	})
	if !ok {
		writeDetail(w, http.StatusNotFound, "Link not found")
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (s *LinkService) deleteLinkHandler(w http.ResponseWriter, r *http.Request) {
	if !s.links.Delete(chi.URLParam(r, "id")) {
		writeDetail(w, http.StatusNotFound, "Link not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *LinkService) analyticsHandler(w http.ResponseWriter, r *http.Request) {
	link, ok := s.links.Get(chi.URLParam(r, "id"))
	if !ok {
		writeDetail(w, http.StatusNotFound, "Link not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":               link.ID,
		"url":              link.URL,
		"short_url":        link.ShortURL,
		"access_count":     link.AccessCount,
		"create_time":      link.CreateTime,
		"last_access_time": link.LastAccessTime,
	})
}

func (s *LinkService) redirectHandler(w http.ResponseWriter, r *http.Request) {
	link, ok := s.links.Update(chi.URLParam(r, "id"), func(link Link) Link {
		link.AccessCount++
		link.LastAccessTime = s.now()
		return link
	})
	if !ok {
		writeDetail(w, http.StatusNotFound, "Link not found")
		return
	}
	http.Redirect(w, r, link.URL, http.StatusTemporaryRedirect)
}
