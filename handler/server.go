package handler

import (
	"net/http"

	"pegvault/core"
	"pegvault/handler/render"
	"pegvault/handler/rest"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	cfg     *core.Config
	eng     core.Engine
	journal core.EventJournal
}

// New new server. journal may be nil, the events api is mounted only
// when one is configured.
func New(cfg *core.Config, eng core.Engine, journal core.EventJournal) Server {
	return Server{
		cfg:     cfg,
		eng:     eng,
		journal: journal,
	}
}

// Handler the full api surface
func (s Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, http.StatusNotFound, twirp.NotFoundError("not found"))
	})

	r.Mount("/api", rest.Handle(s.eng, s.journal))

	r.Get("/hc", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{"status": "ok"})
	})

	return r
}
