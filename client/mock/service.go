package mock

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/viant/shortlink/internal/collection"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 6
)

// LinkService is the mock backend state and its endpoint handlers. Handler
// fields, when set, replace the default handler of that endpoint.
type LinkService struct {
	Secret    []byte
	ExpiresIn int

	LoginHandler  http.HandlerFunc
	LogoutHandler http.HandlerFunc
	LinksHandler  http.HandlerFunc

	users    map[string]string
	links    *collection.SyncMap[string, Link]
	revoked  *collection.SyncMap[string, time.Time]
	mu       sync.Mutex
	requests []Request
	now      func() time.Time
}

type Option func(*LinkService)

// WithUser registers credentials accepted by the login endpoint
func WithUser(username, password string) Option {
	return func(s *LinkService) {
		s.users[username] = password
	}
}

// WithLink seeds a link record
func WithLink(link Link) Option {
	return func(s *LinkService) {
		s.links.Put(link.ID, link)
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(s *LinkService) {
		s.now = now
	}
}

func NewLinkService(options ...Option) *LinkService {
	ret := &LinkService{
		Secret:    []byte("test_secret"),
		ExpiresIn: 3600,
		users:     map[string]string{},
		links:     collection.NewSyncMap[string, Link](),
		revoked:   collection.NewSyncMap[string, time.Time](),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Requests returns a copy of the recorded requests.
func (s *LinkService) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent recorded request.
func (s *LinkService) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// ResetRequests clears the recorded requests.
func (s *LinkService) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *LinkService) record(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}

// Link returns a stored link.
func (s *LinkService) Link(id string) (Link, bool) {
	return s.links.Get(id)
}

// Links returns all stored links in creation order.
func (s *LinkService) Links() []Link {
	return s.links.Values()
}

func (s *LinkService) findByURL(URL string) (Link, bool) {
	var found Link
	var ok bool
	s.links.Range(func(_ string, link Link) bool {
		if link.URL == URL {
			found, ok = link, true
			return false
		}
		return true
	})
	return found, ok
}

func (s *LinkService) newID() (string, error) {
	for {
		buf := make([]byte, idLength)
		for i := range buf {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idAlphabet))))
			if err != nil {
				return "", err
			}
			buf[i] = idAlphabet[n.Int64()]
		}
		id := string(buf)
		if _, ok := s.links.Get(id); !ok {
			return id, nil
		}
	}
}

// Server is a running mock backend.
type Server struct {
	*httptest.Server
	Service *LinkService
}

// NewHTTPTestServer starts a mock backend; callers must Close it.
func NewHTTPTestServer(options ...Option) *Server {
	service := NewLinkService(options...)
	return &Server{
		Server:  httptest.NewServer(NewRouter(service)),
		Service: service,
	}
}
