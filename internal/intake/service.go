package intake

import (
	"context"
	"encoding/json"
	"fmt"

	pkgerrors "github.com/simplytrees/bacqyard-bridge/pkg/errors"
	"github.com/simplytrees/bacqyard-bridge/pkg/logger"
	"github.com/simplytrees/bacqyard-bridge/pkg/metrics"
)

// RouteResult distinguishes "matched but failed downstream" from "not
// matched" so routing failures stay observable without failing the delivery.
type RouteResult struct {
	Matched bool
	Err     error
}

// Router handles a partner-tagged order downstream (persist and/or forward).
type Router interface {
	Route(ctx context.Context, order OrderEvent, raw json.RawMessage, refID string) RouteResult
}

// Service validates and dispatches inbound order webhooks.
type Service interface {
	Process(ctx context.Context, payload []byte, signature string) error
}

type service struct {
	secret       string
	acceptedRefs map[string]struct{}
	router       Router
	logg         *logger.Logger
	metrics      *metrics.BridgeMetrics
}

// NewService builds the intake service. acceptedRefs are the reference tag
// values that mark an order as belonging to the partner.
func NewService(secret string, acceptedRefs []string, router Router, logg *logger.Logger, m *metrics.BridgeMetrics) (Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret required")
	}
	if len(acceptedRefs) == 0 {
		return nil, fmt.Errorf("at least one accepted ref required")
	}
	if router == nil {
		return nil, fmt.Errorf("order router required")
	}

	refs := make(map[string]struct{}, len(acceptedRefs))
	for _, ref := range acceptedRefs {
		refs[ref] = struct{}{}
	}

	return &service{
		secret:       secret,
		acceptedRefs: refs,
		router:       router,
		logg:         logg,
		metrics:      m,
	}, nil
}

// Process verifies the delivery signature, parses one-or-many orders, and
// routes the partner-tagged ones. A routing failure for one order never
// aborts its siblings and never fails the delivery; signature or parse
// failures abort the whole request.
func (s *service) Process(ctx context.Context, payload []byte, signature string) error {
	if !ValidSignature(payload, s.secret, signature) {
		s.metrics.IncWebhookDelivery("signature_mismatch")
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "webhook signature mismatch")
	}

	rawOrders, err := splitPayload(payload)
	if err != nil {
		s.metrics.IncWebhookDelivery("malformed")
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "malformed webhook payload")
	}

	for _, raw := range rawOrders {
		var order OrderEvent
		if err := json.Unmarshal(raw, &order); err != nil {
			s.metrics.IncWebhookDelivery("malformed")
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "malformed order entry")
		}
		s.processOrder(ctx, order, raw)
	}

	s.metrics.IncWebhookDelivery("accepted")
	return nil
}

func (s *service) processOrder(ctx context.Context, order OrderEvent, raw json.RawMessage) {
	ref := order.Attribute(RefAttribute)
	refID := order.Attribute(RefIDAttribute)

	if s.logg != nil {
		ctx = s.logg.WithOrderID(ctx, order.ID)
		ctx = s.logg.WithRef(ctx, ref)
		s.logg.Info(ctx, "order received")
	}

	if _, ok := s.acceptedRefs[ref]; !ok {
		return
	}

	result := s.router.Route(ctx, order, raw, refID)
	if result.Err != nil {
		s.metrics.IncOrderRouted("failed")
		if s.logg != nil {
			s.logg.Error(ctx, "order routing failed", result.Err)
		}
		return
	}

	s.metrics.IncOrderRouted("routed")
	if s.logg != nil {
		s.logg.Info(ctx, "partner order routed")
	}
}
