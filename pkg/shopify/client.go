package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simplytrees/bacqyard-bridge/pkg/config"
	"github.com/simplytrees/bacqyard-bridge/pkg/logger"
)

const accessTokenHeader = "X-Shopify-Access-Token"

var (
	errStoreURLRequired = errors.New("shopify store url is required")
	errTokenRequired    = errors.New("shopify access token is required")
)

// Client talks to the store's Admin API. It is the catalog source for the
// product projection endpoint.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	storeDomain string
	token       string
	apiVersion  string
}

// NewClient validates the Shopify configuration and returns a ready client.
func NewClient(ctx context.Context, cfg config.ShopifyConfig, logg *logger.Logger) (*Client, error) {
	storeURL := strings.TrimSpace(cfg.StoreURL)
	if storeURL == "" {
		return nil, errStoreURLRequired
	}

	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		return nil, errTokenRequired
	}

	baseURL := storeURL
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	domain := baseURL
	if idx := strings.Index(domain, "://"); idx >= 0 {
		domain = domain[idx+3:]
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	if logg != nil {
		logg.Info(ctx, fmt.Sprintf("shopify client initialized for %s", domain))
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		storeDomain: domain,
		token:       token,
		apiVersion:  cfg.APIVersion,
	}, nil
}

// StoreDomain reports the bare store domain, used to synthesize cart links.
func (c *Client) StoreDomain() string {
	if c == nil {
		return ""
	}
	return c.storeDomain
}

// ListProducts fetches the full product catalog, variants included.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	url := fmt.Sprintf("%s/admin/api/%s/products.json", c.baseURL, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building products request: %w", err)
	}
	req.Header.Set(accessTokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("products request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding products response: %w", err)
	}

	return payload.Products, nil
}
