package catalog

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/simplytrees/bacqyard-bridge/pkg/errors"
	"github.com/simplytrees/bacqyard-bridge/pkg/metrics"
	"github.com/simplytrees/bacqyard-bridge/pkg/shopify"
)

// CatalogSource pulls the raw product list from the upstream platform.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]shopify.Product, error)
}

// Service serves the projected product listing.
type Service interface {
	List(ctx context.Context, opts Options) (Projection, error)
}

type service struct {
	source    CatalogSource
	projector *Projector
	metrics   *metrics.BridgeMetrics
}

// NewService builds the catalog service with the required dependencies.
func NewService(source CatalogSource, projector *Projector, m *metrics.BridgeMetrics) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("catalog source required")
	}
	if projector == nil {
		return nil, fmt.Errorf("projector required")
	}
	return &service{source: source, projector: projector, metrics: m}, nil
}

// List fetches the catalog and projects it. A fetch failure aborts the whole
// request; no partial results are returned.
func (s *service) List(ctx context.Context, opts Options) (Projection, error) {
	start := time.Now()
	raw, err := s.source.ListProducts(ctx)
	if err != nil {
		s.metrics.ObserveCatalogFetch("error", time.Since(start))
		return Projection{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to fetch store inventory").
			WithDetails(err.Error())
	}
	s.metrics.ObserveCatalogFetch("ok", time.Since(start))

	return s.projector.Project(raw, opts), nil
}
