package types

// ProductListEnvelope is the contract consumed by the Bacqyard storefront.
type ProductListEnvelope struct {
	Success bool `json:"success"`
	Meta    Meta `json:"meta"`
	Data    any  `json:"data"`
}

type Meta struct {
	TotalReturned  int     `json:"total_returned"`
	TotalAvailable int     `json:"total_available"`
	FiltersApplied Filters `json:"filters_applied"`
}

type Filters struct {
	Limit         *int   `json:"limit"`
	Status        string `json:"status"`
	IncludeDrafts bool   `json:"include_drafts"`
}

type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
