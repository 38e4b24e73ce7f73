package handlers

import (
	"net/http"
	"time"

	"github.com/thisisamank/thisisamank.in/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool   `json:"ready"`
	Entries  int    `json:"entries"`
	Drafts   int    `json:"drafts"`
	LoadedAt string `json:"loaded_at,omitempty"`
}

// Readyz reports ready once a load cycle has published an index.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx := d.Current.Load()
		if idx == nil {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{
			Ready:    true,
			Entries:  idx.Len(),
			Drafts:   idx.Drafts(),
			LoadedAt: idx.LoadedAt().UTC().Format(time.RFC3339),
		})
	}
}
