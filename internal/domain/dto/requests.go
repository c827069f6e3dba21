package dto

// FilterRequest is the PATCH /api/v1/session/filters body. Every field is
// optional; only the fields present are applied. The literal value "all"
// (or an empty string) clears a selector, matching the dropdown sentinel the
// dashboard uses; any other value constrains the field to exact equality.
// Dates are YYYY-MM-DD and an empty string clears the bound.
type FilterRequest struct {
	Search    *string `json:"search,omitempty"`
	Party     *string `json:"party,omitempty" example:"Democrat"`
	Type      *string `json:"type,omitempty" example:"purchase"`
	State     *string `json:"state,omitempty" example:"CA"`
	Sector    *string `json:"sector,omitempty" example:"Information Technology"`
	Amount    *string `json:"amount,omitempty" example:"under15k"`
	DateStart *string `json:"date_start,omitempty" example:"2021-01-01"`
	DateEnd   *string `json:"date_end,omitempty" example:"2021-12-31"`
}

// SortRequest is the POST /api/v1/session/sort body. It carries the clicked
// column; the toggle semantics (same column flips direction, a new column
// starts ascending) live server-side.
type SortRequest struct {
	Field string `json:"field" binding:"required" example:"transaction_date"`
}

// PageRequest is the POST /api/v1/session/page body. Either a 1-based
// absolute page number or one of the navigation actions first, prev, next,
// last. Action wins when both are present.
type PageRequest struct {
	Page   int    `json:"page,omitempty" example:"3"`
	Action string `json:"action,omitempty" example:"next"`
}

// StatsVisibilityRequest toggles the statistics panel flag.
type StatsVisibilityRequest struct {
	Visible bool `json:"visible"`
}
