package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
	MaxPageSkip      = 99
)

// Pagination carries validated list query parameters.
type Pagination struct {
	Skip         int  `query:"skip"`
	Limit        int  `query:"limit"`
	IncludeCount bool `query:"include_count"`
}

// PaginationMiddleware validates skip, limit and include_count and
// stores the result for the handler. Limit is capped, never clamped
// silently above the maximum.
func PaginationMiddleware(c *fiber.Ctx) error {
	params := Pagination{Skip: 0, Limit: DefaultPageLimit}
	if err := c.QueryParser(&params); err != nil {
		return NewValidationError("Invalid query parameters")
	}

	errors := make(map[string]string)
	if params.Skip < 0 {
		errors["skip"] = "Must be at least 0!"
	}
	if params.Skip > MaxPageSkip {
		errors["skip"] = "Must be at most 99!"
	}
	if params.Limit < 1 {
		errors["limit"] = "Must be at least 1!"
	}
	if params.Limit > MaxPageLimit {
		errors["limit"] = "Must be at most 100!"
	}
	if len(errors) > 0 {
		return NewValidationFieldErrors(errors)
	}

	c.Locals("pagination", params)
	return c.Next()
}

// GetPagination returns the parameters stored by PaginationMiddleware,
// falling back to defaults when the route did not use it.
func GetPagination(c *fiber.Ctx) Pagination {
	params, ok := c.Locals("pagination").(Pagination)
	if !ok {
		return Pagination{Skip: 0, Limit: DefaultPageLimit}
	}
	return params
}
