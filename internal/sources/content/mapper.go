package content

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/thisisamank/thisisamank.in/internal/domain"
)

// Mapper converts discovered sources into entries.
type Mapper struct {
	parser  *Parser
	workers int
}

// NewMapper creates a mapper that parses at most workers sources at once.
func NewMapper(workers int) *Mapper {
	if workers < 1 {
		workers = 1
	}
	return &Mapper{
		parser:  NewParser(),
		workers: workers,
	}
}

// MapAll parses every source. Sources are parsed independently; results are
// slotted by position so the output order matches the input order.
//
// The returned entries are the valid ones. The error combines one
// *domain.ValidationError per invalid source, sorted by identifier then
// field, so the same tree always yields the same error regardless of
// scheduling. A non-validation error is only returned for ctx cancellation.
func (m *Mapper) MapAll(ctx context.Context, sources []Source) ([]domain.Entry, error) {
	entries := make([]domain.Entry, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i], errs[i] = m.parser.Parse(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	valid := make([]domain.Entry, 0, len(sources))
	var invalid []*domain.ValidationError
	for i := range sources {
		if errs[i] == nil {
			valid = append(valid, entries[i])
			continue
		}
		var verr *domain.ValidationError
		if !errors.As(errs[i], &verr) {
			verr = domain.Invalid(sources[i].ID, "", errs[i].Error())
		}
		invalid = append(invalid, verr)
	}

	return valid, domain.CombineValidation(invalid)
}
