package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credentials supplies the bearer token and is wiped on a 401.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type Config struct {
	AuthSvcURL    string
	CatalogSvcURL string
	OrderSvcURL   string
}

type Service string

const (
	ServiceAuth    Service = "auth"
	ServiceCatalog Service = "catalog"
	ServiceOrder   Service = "order"
)

var (
	authPrefixes    = []string{"/auth", "/users", "/admin/users"}
	catalogPrefixes = []string{"/restaurant", "/admin/restaurant", "/categories", "/admin/categories", "/menu", "/admin/menu"}
	orderPrefixes   = []string{"/cart", "/orders", "/admin/orders", "/payments", "/reviews", "/admin/stats"}
)

// ServiceFor picks the backend that owns path. Unmatched paths go to the
// order service.
func ServiceFor(path string) Service {
	switch {
	case hasAnyPrefix(path, authPrefixes):
		return ServiceAuth
	case hasAnyPrefix(path, catalogPrefixes):
		return ServiceCatalog
	case hasAnyPrefix(path, orderPrefixes):
		return ServiceOrder
	}
	return ServiceOrder
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (c Config) BaseURL(service Service) string {
	switch service {
	case ServiceAuth:
		return c.AuthSvcURL
	case ServiceCatalog:
		return c.CatalogSvcURL
	}
	return c.OrderSvcURL
}

type Client struct {
	config         Config
	client         HTTPClient
	credentials    Credentials
	logger         *zap.Logger
	onUnauthorized func()
}

func NewClient(config Config, client HTTPClient, credentials Credentials, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config:      config,
		client:      client,
		credentials: credentials,
		logger:      logger,
	}
}

// OnUnauthorized registers the navigation hook run after credentials are
// wiped because a service answered 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Do sends one request and decodes a JSON response into out when out is
// non-nil. Failures are never retried.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	service := ServiceFor(path)
	target := strings.TrimRight(c.config.BaseURL(service), "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.credentials != nil {
		token, err := c.credentials.Token(ctx)
		if err != nil {
			c.logger.Warn("read credentials", zap.Error(err))
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("service", string(service)),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("service", string(service)),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
		return newAPIError(resp)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) handleUnauthorized(ctx context.Context) {
	if c.credentials != nil {
		if err := c.credentials.Clear(ctx); err != nil {
			c.logger.Warn("clear credentials", zap.Error(err))
		}
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
