package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the recipe backend operations. It is implemented by *Client
// and can be faked in tests.
type API interface {
	List(ctx context.Context) ([]Recipe, error)
	Search(ctx context.Context, query Query) ([]Recipe, error)
	Get(ctx context.Context, uuid string) (*Recipe, error)
	Create(ctx context.Context, recipe Recipe) (*Recipe, error)
	Update(ctx context.Context, uuid string, recipe Recipe) (*Recipe, error)
	Cook(ctx context.Context, uuid string) (*Recipe, error)
	Delete(ctx context.Context, uuid string) error
	AddPhoto(ctx context.Context, uuid string, photo Photo) error
	FindTags(ctx context.Context, query string) ([]string, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the recipe backend over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

const (
	defaultAPIURL    = "http://127.0.0.1:8080"
	defaultUserAgent = "przepisnik/0.1"
	requestTimeout   = 10 * time.Second
	apiPrefix        = "/api"
)

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger routes request logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the backend rooted at apiURL. The /api
// prefix is appended to every request path.
func NewClient(apiURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root the client resolves against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// List retrieves every recipe in backend order.
func (c *Client) List(ctx context.Context) ([]Recipe, error) {
	var payload []Recipe
	if err := c.do(ctx, http.MethodGet, "/recipe/getAll", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Search filters recipes by title substring, dish type and tags. Each tag
// is sent as a repeated tags parameter.
func (c *Client) Search(ctx context.Context, query Query) ([]Recipe, error) {
	values := url.Values{}
	if query.Title != "" {
		values.Set("title", query.Title)
	}
	if query.DishType != "" {
		values.Set("typeOfDish", string(query.DishType))
	}
	for _, tag := range query.Tags {
		values.Add("tags", tag)
	}
	var payload []Recipe
	if err := c.do(ctx, http.MethodGet, "/recipe/find", values, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Fetch lists everything for an empty query and searches otherwise. A
// query carrying only a dish type still goes through Search.
func Fetch(ctx context.Context, api API, query Query) ([]Recipe, error) {
	if query.IsEmpty() {
		return api.List(ctx)
	}
	return api.Search(ctx, query)
}

// Get retrieves a single recipe.
func (c *Client) Get(ctx context.Context, uuid string) (*Recipe, error) {
	if strings.TrimSpace(uuid) == "" {
		return nil, ErrMissingID
	}
	var payload Recipe
	if err := c.do(ctx, http.MethodGet, "/recipe/"+url.PathEscape(uuid), nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Create persists a new recipe. The caller assigns the identifier.
func (c *Client) Create(ctx context.Context, recipe Recipe) (*Recipe, error) {
	if strings.TrimSpace(recipe.Title) == "" {
		return nil, ErrInvalidRecipe
	}
	body, err := jsonBody(recipe)
	if err != nil {
		return nil, err
	}
	var payload Recipe
	if err := c.do(ctx, http.MethodPost, "/recipe/create", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Update replaces the recipe stored under uuid with the full payload.
func (c *Client) Update(ctx context.Context, uuid string, recipe Recipe) (*Recipe, error) {
	if strings.TrimSpace(uuid) == "" {
		return nil, ErrMissingID
	}
	if strings.TrimSpace(recipe.Title) == "" {
		return nil, ErrInvalidRecipe
	}
	body, err := jsonBody(recipe)
	if err != nil {
		return nil, err
	}
	var payload Recipe
	if err := c.do(ctx, http.MethodPut, "/recipe/update/"+url.PathEscape(uuid), nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Cook increments the cook counter server-side and returns the new copy.
func (c *Client) Cook(ctx context.Context, uuid string) (*Recipe, error) {
	if strings.TrimSpace(uuid) == "" {
		return nil, ErrMissingID
	}
	var payload Recipe
	if err := c.do(ctx, http.MethodPost, "/recipe/"+url.PathEscape(uuid)+"/cook", nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Delete removes a recipe.
func (c *Client) Delete(ctx context.Context, uuid string) error {
	if strings.TrimSpace(uuid) == "" {
		return ErrMissingID
	}
	return c.do(ctx, http.MethodDelete, "/recipe/delete/"+url.PathEscape(uuid), nil, nil, nil)
}

// AddPhoto uploads photo as the multipart field "image".
func (c *Client) AddPhoto(ctx context.Context, uuid string, photo Photo) error {
	if strings.TrimSpace(uuid) == "" {
		return ErrMissingID
	}
	body, err := photo.multipartBody()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/recipe/"+url.PathEscape(uuid)+"/addPhoto", nil, body, nil)
}

// FindTags looks up known tags. An empty query lists all of them; matching
// is left to the backend.
func (c *Client) FindTags(ctx context.Context, query string) ([]string, error) {
	values := url.Values{}
	if query != "" {
		values.Set("tagName", query)
	}
	var payload []string
	if err := c.do(ctx, http.MethodGet, "/recipeTag/find", values, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

type requestBody struct {
	contentType string
	data        []byte
}

func jsonBody(v any) (*requestBody, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return &requestBody{contentType: "application/json", data: data}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body *requestBody, dest any) error {
	// Callers escape path segments already.
	endpoint := apiPrefix + path
	reqURL := c.baseURL.String() + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body.data)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", endpoint, "error", err)
		return &TransportError{Method: method, Path: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("request complete",
		"method", method,
		"path", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn("request rejected", "method", method, "path", endpoint, "status", resp.StatusCode)
		return &StatusError{Method: method, Path: endpoint, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", apiURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.Path = strings.TrimSuffix(u.Path, apiPrefix)
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
