package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simplytrees/bacqyard-bridge/internal/intake"
	"github.com/simplytrees/bacqyard-bridge/pkg/db/models"
	pkgerrors "github.com/simplytrees/bacqyard-bridge/pkg/errors"
)

// Router persists a matched order and forwards it to the partner. It
// implements intake.Router.
type Router struct {
	repo Repository
	fwd  Forwarder
}

// NewRouter builds the downstream order router.
func NewRouter(repo Repository, fwd Forwarder) (*Router, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if fwd == nil {
		fwd = DiscardForwarder{}
	}
	return &Router{repo: repo, fwd: fwd}, nil
}

// Route writes the order record and runs the forward strategy. Redelivered
// order ids insert additional rows; deduplication is intentionally absent.
func (r *Router) Route(ctx context.Context, order intake.OrderEvent, raw json.RawMessage, refID string) intake.RouteResult {
	record := &models.OrderRecord{
		OrderID:      order.ID,
		Status:       order.FinancialStatus,
		TotalPrice:   truncatePrice(order.TotalPrice),
		OrderDetails: raw,
	}
	if refID != "" {
		record.RefID = &refID
	}

	if _, err := r.repo.Create(ctx, record); err != nil {
		return intake.RouteResult{
			Matched: true,
			Err:     pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting order record"),
		}
	}

	if err := r.fwd.Forward(ctx, order, refID); err != nil {
		return intake.RouteResult{
			Matched: true,
			Err:     pkgerrors.Wrap(pkgerrors.CodeDependency, err, "forwarding order to partner"),
		}
	}

	return intake.RouteResult{Matched: true}
}

// truncatePrice stores the decimal price string as a whole amount, fractional
// part dropped. Unparseable prices persist as zero.
func truncatePrice(price string) int64 {
	if price == "" {
		return 0
	}
	dec, err := decimal.NewFromString(price)
	if err != nil {
		return 0
	}
	return dec.IntPart()
}
