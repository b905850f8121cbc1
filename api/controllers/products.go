package controllers

import (
	"net/http"

	"github.com/simplytrees/bacqyard-bridge/api/responses"
	"github.com/simplytrees/bacqyard-bridge/api/validators"
	"github.com/simplytrees/bacqyard-bridge/internal/catalog"
	"github.com/simplytrees/bacqyard-bridge/pkg/logger"
	"github.com/simplytrees/bacqyard-bridge/pkg/types"
)

type productsQuery struct {
	Limit         int    `json:"limit" validate:"omitempty,min=1,max=250"`
	Status        string `json:"status" validate:"omitempty,oneof=all"`
	IncludeDrafts bool   `json:"include_drafts"`
}

// ListProducts serves the projected catalog for the partner storefront.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		query, err := parseProductsQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		projection, err := svc.List(ctx, catalog.Options{
			Limit:         query.Limit,
			Status:        query.Status,
			IncludeDrafts: query.IncludeDrafts,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.ProductListEnvelope{
			Success: true,
			Meta: types.Meta{
				TotalReturned:  projection.TotalReturned,
				TotalAvailable: projection.TotalAvailable,
				FiltersApplied: filtersApplied(query),
			},
			Data: projection.Items,
		})
	}
}

func parseProductsQuery(r *http.Request) (productsQuery, error) {
	limit, err := validators.ParseQueryInt(r, "limit", 0)
	if err != nil {
		return productsQuery{}, err
	}

	query := productsQuery{
		Limit:         limit,
		Status:        r.URL.Query().Get("status"),
		IncludeDrafts: r.URL.Query().Get("include_drafts") == "true",
	}
	if err := validators.ValidateStruct(query); err != nil {
		return productsQuery{}, err
	}
	return query, nil
}

func filtersApplied(query productsQuery) types.Filters {
	filters := types.Filters{
		Status:        catalog.StatusAvailableOnly,
		IncludeDrafts: query.IncludeDrafts,
	}
	if query.Status != "" {
		filters.Status = query.Status
	}
	if query.Limit > 0 {
		limit := query.Limit
		filters.Limit = &limit
	}
	return filters
}
