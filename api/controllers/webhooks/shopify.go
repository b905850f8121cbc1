package webhooks

import (
	"context"
	"io"
	"net/http"

	"github.com/simplytrees/bacqyard-bridge/api/responses"
	pkgerrors "github.com/simplytrees/bacqyard-bridge/pkg/errors"
	"github.com/simplytrees/bacqyard-bridge/pkg/logger"
)

// SignatureHeader is the Shopify HMAC header on webhook deliveries.
const SignatureHeader = "X-Shopify-Hmac-Sha256"

type OrderIntakeService interface {
	Process(ctx context.Context, payload []byte, signature string) error
}

// ShopifyOrders handles order-creation webhook deliveries. The body must be
// read raw before any decoding so the HMAC covers the exact bytes sent.
func ShopifyOrders(svc OrderIntakeService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intake service unavailable"))
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read request body"))
			return
		}

		if err := svc.Process(ctx, payload, r.Header.Get(SignatureHeader)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteText(w, http.StatusOK, "Processed")
	}
}
