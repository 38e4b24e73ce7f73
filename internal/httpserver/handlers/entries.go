package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/thisisamank/thisisamank.in/internal/domain"
	"github.com/thisisamank/thisisamank.in/internal/httpserver/deps"
	"github.com/thisisamank/thisisamank.in/internal/index"
	"github.com/thisisamank/thisisamank.in/internal/logger"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type entryResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        domain.Date `json:"date"`
	Draft       bool        `json:"draft"`
	External    bool        `json:"external"`
	Link        string      `json:"link"`
	WordCount   int         `json:"word_count"`
	ReadingTime int         `json:"reading_time_minutes"`
	Body        string      `json:"body,omitempty"`
}

type listResponse struct {
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	Total   int             `json:"total"`
	Entries []entryResponse `json:"entries"`
}

func toResponse(e domain.Entry, baseURL string, withBody bool) entryResponse {
	resp := entryResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Draft:       e.Draft,
		External:    e.External,
		Link:        e.Link(baseURL),
		WordCount:   e.WordCount,
		ReadingTime: e.ReadingTime,
	}
	if withBody {
		resp.Body = e.Body
	}
	return resp
}

// ListEntries serves published entries newest first, paginated.
// ?drafts=true includes drafts when draft preview is enabled.
func ListEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, err := positiveParam(q.Get("page"), 1)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		perPage, err := positiveParam(q.Get("per_page"), defaultPerPage)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid per_page")
			return
		}
		perPage = min(perPage, maxPerPage)

		withDrafts := false
		if raw := q.Get("drafts"); raw != "" {
			withDrafts, err = strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid drafts")
				return
			}
		}
		if withDrafts && !d.PreviewDrafts {
			writeError(w, http.StatusForbidden, "draft preview is disabled")
			return
		}

		idx := d.Current.Load()
		if idx == nil {
			writeError(w, http.StatusServiceUnavailable, "content not loaded")
			return
		}

		seq := idx.ListPublished()
		if withDrafts {
			seq = idx.ListAll()
		}

		total := 0
		for range seq {
			total++
		}

		// Pages past the end are empty. Checking against total first keeps
		// (page-1)*perPage from overflowing.
		var entries []domain.Entry
		if page-1 <= total/perPage {
			entries = index.Paginate(seq, (page-1)*perPage, perPage)
		}
		resp := listResponse{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Entries: make([]entryResponse, 0, len(entries)),
		}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, toResponse(e, d.Site.BaseURL, false))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// GetEntry serves a single entry, drafts included, with its body.
func GetEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(chi.URLParam(r, "*"), "/")
		if id == "" {
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}

		idx := d.Current.Load()
		if idx == nil {
			writeError(w, http.StatusServiceUnavailable, "content not loaded")
			return
		}

		e, err := idx.Get(id)
		if errors.Is(err, domain.ErrNotFound) {
			d.Logger.Debug("entry not found", logger.String("id", id))
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		if err != nil {
			d.Logger.Error("entry lookup failed", logger.String("id", id), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toResponse(e, d.Site.BaseURL, true))
	}
}

func positiveParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
