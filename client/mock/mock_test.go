package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, server *Server, username, password string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.PostForm(server.URL+"/auth/login", url.Values{"username": {username}, "password": {password}})
	require.NoError(t, err)
	defer resp.Body.Close()
	payload := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func do(t *testing.T, method, URL, token string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, URL, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestLogin(t *testing.T) {
	server := NewHTTPTestServer(WithUser("alice", "secret"))
	defer server.Close()

	status, payload := login(t, server, "alice", "secret")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, payload["access_token"])
	assert.EqualValues(t, 3600, payload["expires_in"])

	status, payload = login(t, server, "alice", "wrong")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", payload["detail"])

	recorded, ok := server.Service.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "application/x-www-form-urlencoded", recorded.ContentType)
	assert.Equal(t, "password=wrong&username=alice", recorded.Body)
}

func TestLinksLifecycle(t *testing.T) {
	server := NewHTTPTestServer(WithUser("alice", "secret"))
	defer server.Close()
	_, payload := login(t, server, "alice", "secret")
	token := payload["access_token"].(string)

	resp, _ := do(t, http.MethodPost, server.URL+"/links?url=https%3A%2F%2Fx.com", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := do(t, http.MethodPost, server.URL+"/links?url=https%3A%2F%2Fx.com&custom_id=abc", token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, body, `"short_url":"/s/abc"`)

	resp, body = do(t, http.MethodPost, server.URL+"/links?url=https%3A%2F%2Fy.com&custom_id=abc", token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Custom ID may already be in use")

	resp, body = do(t, http.MethodPost, server.URL+"/links?url=https%3A%2F%2Fx.com", token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, body, `"id":"abc"`, "same URL returns the existing link")

	resp, body = do(t, http.MethodPost, server.URL+"/links?url=https%3A%2F%2Fz.com", token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Len(t, server.Service.Links(), 2)
	var created Link
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Len(t, created.ID, idLength)

	resp, _ = do(t, http.MethodGet, server.URL+"/s/abc", "")
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "https://x.com", resp.Header.Get("Location"))

	resp, body = do(t, http.MethodGet, server.URL+"/links/abc/analytics", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"access_count":1`)

	resp, _ = do(t, http.MethodDelete, server.URL+"/links/abc", token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, http.MethodDelete, server.URL+"/links/abc", token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, http.MethodGet, server.URL+"/links", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, "["))
}

func TestLogoutRevokesToken(t *testing.T) {
	server := NewHTTPTestServer(WithUser("alice", "secret"))
	defer server.Close()
	_, payload := login(t, server, "alice", "secret")
	token := payload["access_token"].(string)

	resp, _ := do(t, http.MethodPost, server.URL+"/auth/logout", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, http.MethodPost, server.URL+"/links?url=a", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Could not validate credentials")
}

func TestMissingURL(t *testing.T) {
	server := NewHTTPTestServer(WithUser("alice", "secret"))
	defer server.Close()
	_, payload := login(t, server, "alice", "secret")
	resp, body := do(t, http.MethodPost, server.URL+"/links", payload["access_token"].(string))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "field required")
}
