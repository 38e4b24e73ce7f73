package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/thisisamank/thisisamank.in/internal/httpserver/deps"
	"github.com/thisisamank/thisisamank.in/internal/httpserver/handlers"
)

func init() { Register(registerEntries) }

func registerEntries(r chi.Router, d deps.Deps) {
	r.Get("/api/site", handlers.Site(d))
	r.Route("/api/entries", func(r chi.Router) {
		r.Get("/", handlers.ListEntries(d))
		// identifiers may contain slashes
		r.Get("/*", handlers.GetEntry(d))
	})
}
