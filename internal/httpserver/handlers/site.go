package handlers

import (
	"net/http"

	"github.com/thisisamank/thisisamank.in/internal/httpserver/deps"
)

type siteResponse struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	AuthorName   string `json:"author_name"`
	SocialHandle string `json:"social_handle"`
	BaseURL      string `json:"base_url"`
}

func Site(d deps.Deps) http.HandlerFunc {
	resp := siteResponse{
		Title:        d.Site.Title,
		Description:  d.Site.Description,
		AuthorName:   d.Site.AuthorName,
		SocialHandle: d.Site.SocialHandle,
		BaseURL:      d.Site.BaseURL,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
