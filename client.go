package shortlink

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/shortlink/client/auth"
	"github.com/viant/shortlink/client/auth/store"
	authtransport "github.com/viant/shortlink/client/auth/transport"
	"github.com/viant/shortlink/client/links"
)

const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultStoreURL = "~/.shortlink/storage.json"
)

// ClientOptions
//
// defines options for configuring a shortlink client.
type ClientOptions struct {
	BaseURL   string `yaml:"baseURL,omitempty" json:"baseURL,omitempty" short:"u" long:"url" env:"SHORTLINK_URL" description:"service base URL"`
	StoreURL  string `yaml:"storeURL,omitempty" json:"storeURL,omitempty" short:"s" long:"store" env:"SHORTLINK_STORE" description:"token storage file (afs URL); empty keeps the token in memory"`
	TimeoutMs int    `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty" long:"timeout" env:"SHORTLINK_TIMEOUT_MS" description:"request timeout in milliseconds, 0 disables it"`

	// Store, if set, replaces the store built from StoreURL.
	Store store.Store `yaml:"-" json:"-" no-flag:"true"`
	// Navigator is notified with auth.LoginRoute after logout.
	Navigator auth.Navigator `yaml:"-" json:"-" no-flag:"true"`
	// Transport is the base transport below the bearer RoundTripper.
	Transport http.RoundTripper `yaml:"-" json:"-" no-flag:"true"`
	Logger    *slog.Logger      `yaml:"-" json:"-" no-flag:"true"`
}

// Init applies defaults.
func (o *ClientOptions) Init() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Merge fills empty serializable fields from other.
func (o *ClientOptions) Merge(other *ClientOptions) {
	if other == nil {
		return
	}
	if o.BaseURL == "" {
		o.BaseURL = other.BaseURL
	}
	if o.StoreURL == "" {
		o.StoreURL = other.StoreURL
	}
	if o.TimeoutMs == 0 {
		o.TimeoutMs = other.TimeoutMs
	}
}

// LoadClientOptions reads YAML options from an afs URL.
func LoadClientOptions(ctx context.Context, URL string) (*ClientOptions, error) {
	data, err := afs.New().DownloadWithURL(ctx, ExpandHome(URL))
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &ClientOptions{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(location string) string {
	if !strings.HasPrefix(location, "~/") {
		return location
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return location
	}
	return filepath.Join(home, location[2:])
}

// Client groups the services sharing one session.
type Client struct {
	Auth       *auth.Service
	Links      *links.Service
	Store      store.Store
	HTTPClient *http.Client
}

// NewClient creates a Client. A token persisted in the store is loaded
// immediately, so a restarted client stays signed in.
func NewClient(options *ClientOptions) (*Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	aStore := options.Store
	if aStore == nil {
		if options.StoreURL == "" {
			aStore = store.NewMemoryStore()
		} else {
			fileStore, err := store.NewFileStore(ExpandHome(options.StoreURL))
			if err != nil {
				return nil, err
			}
			aStore = fileStore
		}
	}
	session := &auth.Session{}
	roundTripper := authtransport.New(
		authtransport.WithTokenSource(session),
		authtransport.WithTransport(options.Transport),
	)
	httpClient := &http.Client{Transport: roundTripper}
	if options.TimeoutMs > 0 {
		httpClient.Timeout = time.Duration(options.TimeoutMs) * time.Millisecond
	}
	authOptions := []auth.Option{
		auth.WithStore(aStore),
		auth.WithSession(session),
		auth.WithHTTPClient(httpClient),
		auth.WithLogger(options.Logger),
	}
	if options.Navigator != nil {
		authOptions = append(authOptions, auth.WithNavigator(options.Navigator))
	}
	authService, err := auth.New(options.BaseURL, authOptions...)
	if err != nil {
		return nil, err
	}
	linksService, err := links.New(options.BaseURL, links.WithHTTPClient(httpClient), links.WithLogger(options.Logger))
	if err != nil {
		return nil, err
	}
	return &Client{Auth: authService, Links: linksService, Store: aStore, HTTPClient: httpClient}, nil
}
