package domain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// ErrNotFound is returned by lookups for an identifier that is not indexed.
var ErrNotFound = errors.New("entry not found")

// NotFound wraps ErrNotFound with the identifier that was asked for.
func NotFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ValidationError reports a content source that cannot become an Entry.
type ValidationError struct {
	ID     string // entry identifier
	Field  string // offending frontmatter field, "body", "frontmatter" or "id"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content %q: field %q: %s", e.ID, e.Field, e.Reason)
}

// Invalid is a shorthand constructor for ValidationError.
func Invalid(id, field, reason string) *ValidationError {
	return &ValidationError{ID: id, Field: field, Reason: reason}
}

// CombineValidation sorts validation errors by identifier then field and
// joins them with multierr. The result only depends on the set of errors,
// never on the order they were produced in. Returns nil for no errors.
func CombineValidation(verrs []*ValidationError) error {
	if len(verrs) == 0 {
		return nil
	}
	sorted := slices.Clone(verrs)
	slices.SortStableFunc(sorted, func(a, b *ValidationError) int {
		return cmp.Or(
			strings.Compare(a.ID, b.ID),
			strings.Compare(a.Field, b.Field),
			strings.Compare(a.Reason, b.Reason),
		)
	})
	errs := make([]error, len(sorted))
	for i, v := range sorted {
		errs[i] = v
	}
	return multierr.Combine(errs...)
}

// ValidationErrors unpacks a combined error into its validation errors.
// Errors of any other type are ignored.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError
	for _, e := range multierr.Errors(err) {
		var verr *ValidationError
		if errors.As(e, &verr) {
			out = append(out, verr)
		}
	}
	return out
}
