package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/thisisamank/thisisamank.in/internal/httpserver/deps"
	"github.com/thisisamank/thisisamank.in/internal/httpserver/handlers"
	"github.com/thisisamank/thisisamank.in/internal/httpserver/mw"
)

func init() { Register(registerReload, middleware.NoCache) }

func registerReload(r chi.Router, d deps.Deps) {
	r.With(mw.LocalOnly(d.Logger)).Post("/api/reload", handlers.Reload(d))
}
