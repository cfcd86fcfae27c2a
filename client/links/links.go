package links

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/viant/shortlink/client/state"
	"github.com/viant/shortlink/internal/rest"
	"github.com/viant/shortlink/schema"
)

// Service performs link operations and holds the last fetched collection.
type Service struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	state   state.State
	mu      sync.RWMutex
	links   []schema.Link
}

// New creates a links service for baseURL. Without WithHTTPClient requests go
// through http.DefaultClient and carry no bearer token; use the auth service's
// client (or shortlink.NewClient, which wires both) for authenticated calls.
func New(baseURL string, options ...Option) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL was empty")
	}
	ret := &Service{baseURL: baseURL, links: []schema.Link{}}
	for _, opt := range options {
		opt(ret)
	}
	if ret.client == nil {
		ret.client = http.DefaultClient
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	return ret, nil
}

// FetchLinks replaces the local collection with the server's list and returns it.
func (s *Service) FetchLinks(ctx context.Context) ([]schema.Link, error) {
	return state.Track(&s.state, func() ([]schema.Link, error) {
		var links []schema.Link
		response, err := s.do(ctx, &rest.Request{Method: http.MethodGet, Path: linksPath})
		if err == nil {
			links, err = s.replaceLinks(response.Body)
		}
		if err != nil {
			s.logger.Error("error fetching links", "error", err)
			return nil, schema.NewError(schema.LinksFetchFailure, schema.MessageFetchLinks, err, false)
		}
		return links, nil
	}).Unpack()
}

// CreateLink shortens URL, using customID as the link id when not empty.
// The local collection is not updated; call FetchLinks to see the new link.
func (s *Service) CreateLink(ctx context.Context, URL, customID string) (schema.Link, error) {
	return state.Track(&s.state, func() (schema.Link, error) {
		link, err := s.fetchLink(ctx, &rest.Request{Method: http.MethodPost, Path: linksPath, RawQuery: createQuery(URL, customID)})
		if err != nil {
			return schema.Link{}, schema.NewError(schema.LinksCreateFailure, schema.MessageCreateLink, err, true)
		}
		return link, nil
	}).Unpack()
}

// DeleteLink deletes the link with id and returns true. The local collection
// is not updated; call FetchLinks to see the removal.
func (s *Service) DeleteLink(ctx context.Context, id string) (bool, error) {
	return state.Track(&s.state, func() (bool, error) {
		if _, err := s.do(ctx, &rest.Request{Method: http.MethodDelete, Path: linkPath(id)}); err != nil {
			return false, schema.NewError(schema.LinksDeleteFailure, schema.MessageDeleteLink, err, false)
		}
		return true, nil
	}).Unpack()
}

// GetLinkAnalytics returns the raw analytics payload of the link with id.
func (s *Service) GetLinkAnalytics(ctx context.Context, id string) (schema.Analytics, error) {
	return state.Track(&s.state, func() (schema.Analytics, error) {
		response, err := s.do(ctx, &rest.Request{Method: http.MethodGet, Path: linkPath(id, "analytics")})
		if err != nil {
			return schema.Analytics{}, schema.NewError(schema.AnalyticsFetchFailure, schema.MessageFetchAnalytics, err, false)
		}
		return schema.Analytics{RawMessage: response.Body}, nil
	}).Unpack()
}

// GetLink returns a single link record.
func (s *Service) GetLink(ctx context.Context, id string) (schema.Link, error) {
	return state.Track(&s.state, func() (schema.Link, error) {
		link, err := s.fetchLink(ctx, &rest.Request{Method: http.MethodGet, Path: linkPath(id)})
		if err != nil {
			return schema.Link{}, schema.NewError(schema.LinkFetchFailure, schema.MessageFetchLink, err, false)
		}
		return link, nil
	}).Unpack()
}

// UpdateLink points the link with id at URL. The local collection is not updated.
func (s *Service) UpdateLink(ctx context.Context, id, URL string) (schema.Link, error) {
	return state.Track(&s.state, func() (schema.Link, error) {
		link, err := s.fetchLink(ctx, &rest.Request{Method: http.MethodPut, Path: linkPath(id), RawQuery: "url=" + EncodeURIComponent(URL)})
		if err != nil {
			return schema.Link{}, schema.NewError(schema.LinkUpdateFailure, schema.MessageUpdateLink, err, true)
		}
		return link, nil
	}).Unpack()
}

// ResolveLink returns the redirect target of a short id without following it.
// The server counts the call as an access.
func (s *Service) ResolveLink(ctx context.Context, id string) (string, error) {
	return state.Track(&s.state, func() (string, error) {
		target, err := s.resolve(ctx, id)
		if err != nil {
			return "", schema.NewError(schema.LinkResolveFailure, schema.MessageResolveLink, err, false)
		}
		return target, nil
	}).Unpack()
}

func (s *Service) resolve(ctx context.Context, id string) (string, error) {
	client := *s.client
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	response, err := rest.Do(ctx, &client, s.baseURL, &rest.Request{Method: http.MethodGet, Path: redirectPath + "/" + url.PathEscape(id)})
	if response == nil {
		return "", err
	}
	if response.StatusCode >= 300 && response.StatusCode <= 399 {
		location := response.Header.Get("Location")
		if location == "" {
			return "", fmt.Errorf("redirect had no location")
		}
		return location, nil
	}
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("expected redirect, got %d", response.StatusCode)
}

// Links returns a copy of the last fetched collection.
func (s *Service) Links() []schema.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]schema.Link{}, s.links...)
}

func (s *Service) Loading() bool { return s.state.Loading() }

func (s *Service) ErrorMessage() string { return s.state.ErrorMessage() }

// replaceLinks decodes data into the local collection and returns a copy of it.
func (s *Service) replaceLinks(data []byte) ([]schema.Link, error) {
	var links []schema.Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}
	if links == nil {
		links = []schema.Link{}
	}
	s.mu.Lock()
	s.links = links
	s.mu.Unlock()
	return append([]schema.Link{}, links...), nil
}

func (s *Service) do(ctx context.Context, request *rest.Request) (*rest.Response, error) {
	return rest.Do(ctx, s.client, s.baseURL, request)
}

func (s *Service) fetchLink(ctx context.Context, request *rest.Request) (schema.Link, error) {
	response, err := s.do(ctx, request)
	if err != nil {
		return schema.Link{}, err
	}
	return schema.Link{RawMessage: response.Body}, nil
}
