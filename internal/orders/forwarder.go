package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simplytrees/bacqyard-bridge/internal/intake"
	"github.com/simplytrees/bacqyard-bridge/pkg/config"
)

// Forwarder pushes a matched order to the partner system. The upstream
// integration was never specified, so the default strategy is a no-op and
// HTTPForwarder stays behind a config flag.
type Forwarder interface {
	Forward(ctx context.Context, order intake.OrderEvent, refID string) error
}

// DiscardForwarder is the default no-op strategy.
type DiscardForwarder struct{}

func (DiscardForwarder) Forward(ctx context.Context, order intake.OrderEvent, refID string) error {
	return nil
}

// HTTPForwarder posts a compact order summary to the partner endpoint.
type HTTPForwarder struct {
	url        string
	httpClient *http.Client
}

type forwardPayload struct {
	ShopifyOrderID int64  `json:"shopify_order_id"`
	RefID          string `json:"ref_id"`
	Total          string `json:"total"`
}

// NewHTTPForwarder builds the outbound forward strategy from partner config.
func NewHTTPForwarder(cfg config.PartnerConfig) (*HTTPForwarder, error) {
	if cfg.ForwardURL == "" {
		return nil, fmt.Errorf("partner forward url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPForwarder{
		url:        cfg.ForwardURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (f *HTTPForwarder) Forward(ctx context.Context, order intake.OrderEvent, refID string) error {
	body, err := json.Marshal(forwardPayload{
		ShopifyOrderID: order.ID,
		RefID:          refID,
		Total:          order.TotalPrice,
	})
	if err != nil {
		return fmt.Errorf("encoding forward payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building forward request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("forwarding order: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("partner forward returned %d", resp.StatusCode)
	}
	return nil
}
