package theone

import (
	"fmt"
	"strings"
)

// DefaultLimit is the page size used when the caller does not supply one
const DefaultLimit = 100

// ValidatePositiveInteger fails when value is supplied and not greater than zero.
func ValidatePositiveInteger(value *int, name string) error {
	if value != nil && *value <= 0 {
		return &ValidationError{
			Param:   name,
			Message: fmt.Sprintf("%s must be a positive integer.", name),
		}
	}
	return nil
}

// ValidateNonNegativeInteger fails when value is supplied and negative.
func ValidateNonNegativeInteger(value *int, name string) error {
	if value != nil && *value < 0 {
		return &ValidationError{
			Param:   name,
			Message: fmt.Sprintf("%s must be a non-negative integer.", name),
		}
	}
	return nil
}

// ValidateID fails when id is empty or blank. An empty path segment would
// address the collection endpoint instead of a single record.
func ValidateID(id, name string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{
			Param:   name,
			Message: fmt.Sprintf("%s must not be empty.", name),
		}
	}
	return nil
}

// PageOption configures the pagination of a collection call.
type PageOption func(*PageOptions)

// PageOptions holds the resolved pagination parameters. A nil field was not supplied.
type PageOptions struct {
	Limit  *int
	Page   *int
	Offset *int
}

// Limit sets the maximum number of documents returned.
func Limit(n int) PageOption {
	return func(o *PageOptions) {
		o.Limit = &n
	}
}

// Page selects the 1-based result page.
func Page(n int) PageOption {
	return func(o *PageOptions) {
		o.Page = &n
	}
}

// Offset skips the first n documents.
func Offset(n int) PageOption {
	return func(o *PageOptions) {
		o.Offset = &n
	}
}

// resolvePageOptions applies opts over the defaults and validates the result
func resolvePageOptions(opts []PageOption) (PageOptions, error) {
	limit := DefaultLimit
	o := PageOptions{Limit: &limit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Limit == nil {
		o.Limit = &limit
	}

	if err := ValidatePositiveInteger(o.Limit, "limit"); err != nil {
		return o, err
	}
	if err := ValidatePositiveInteger(o.Page, "page"); err != nil {
		return o, err
	}
	if err := ValidateNonNegativeInteger(o.Offset, "offset"); err != nil {
		return o, err
	}
	return o, nil
}
