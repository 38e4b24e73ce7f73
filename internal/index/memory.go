package index

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/thisisamank/thisisamank.in/internal/domain"
)

// Index is the read-only view of one load cycle.
//
// It is built once by New and never mutated afterwards, so it is safe for
// concurrent readers without locking. Content changes produce a new Index.
type Index struct {
	byID     map[string]int // ID -> position in ordered
	ordered  []domain.Entry // date desc, then ID desc
	drafts   int
	loadedAt time.Time
}

// New validates identifier uniqueness and freezes the ordering.
func New(entries []domain.Entry) (*Index, error) {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, Compare)

	idx := &Index{
		byID:     make(map[string]int, len(ordered)),
		ordered:  ordered,
		loadedAt: time.Now(),
	}

	var dups []*domain.ValidationError
	for i, e := range ordered {
		if _, exists := idx.byID[e.ID]; exists {
			dups = append(dups, domain.Invalid(e.ID, "id", "identifier is used by more than one source"))
			continue
		}
		idx.byID[e.ID] = i
		if e.Draft {
			idx.drafts++
		}
	}
	if len(dups) > 0 {
		return nil, domain.CombineValidation(dups)
	}

	return idx, nil
}

// Compare orders entries newest first. Equal dates fall back to
// reverse-lexicographic identifiers so the order is total.
func Compare(a, b domain.Entry) int {
	return cmp.Or(
		b.Date.Compare(a.Date),
		strings.Compare(b.ID, a.ID),
	)
}

// ListPublished yields non-draft entries, newest first. The sequence can be
// ranged over any number of times and always yields the same order.
func (idx *Index) ListPublished() iter.Seq[domain.Entry] {
	return idx.list(false)
}

// ListAll is ListPublished plus drafts. Meant for local preview.
func (idx *Index) ListAll() iter.Seq[domain.Entry] {
	return idx.list(true)
}

func (idx *Index) list(withDrafts bool) iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		for _, e := range idx.ordered {
			if e.Draft && !withDrafts {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Get retrieves an entry by identifier, drafts included.
func (idx *Index) Get(id string) (domain.Entry, error) {
	i, ok := idx.byID[id]
	if !ok {
		return domain.Entry{}, domain.NotFound(id)
	}
	return idx.ordered[i], nil
}

// Len returns the number of entries, drafts included.
func (idx *Index) Len() int { return len(idx.ordered) }

// Drafts returns the number of draft entries.
func (idx *Index) Drafts() int { return idx.drafts }

// LoadedAt returns when the index was built.
func (idx *Index) LoadedAt() time.Time { return idx.loadedAt }

// Paginate returns at most limit entries of seq after skipping offset.
// A limit <= 0 means no limit.
func Paginate(seq iter.Seq[domain.Entry], offset, limit int) []domain.Entry {
	page := make([]domain.Entry, 0)
	skipped := 0
	for e := range seq {
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(page) >= limit {
			break
		}
		page = append(page, e)
	}
	return page
}

// Current holds the index of the latest successful load cycle.
// Swapping is atomic; readers keep whatever *Index they already loaded.
type Current struct {
	p atomic.Pointer[Index]
}

// Load returns the active index, or nil before the first load cycle.
func (c *Current) Load() *Index { return c.p.Load() }

// Store makes idx the active index.
func (c *Current) Store(idx *Index) { c.p.Store(idx) }
