package rest

import (
	"errors"
	"net/http"

	"pegvault/core"
	"pegvault/handler/render"

	"github.com/go-chi/chi"
	"github.com/spf13/cast"
)

const maxEventPageSize = 100

func eventsHandler(journal core.EventJournal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := cast.ToInt(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > maxEventPageSize {
			limit = maxEventPageSize
		}

		entries, err := journal.List(r.Context(), limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"events": entries})
	}
}

func eventHandler(journal core.EventJournal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := cast.ToInt64(chi.URLParam(r, "id"))

		entry, err := journal.Find(r.Context(), id)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if entry == nil {
			render.NotFoundRequest(w, errors.New("event not found"))
			return
		}

		render.JSON(w, entry)
	}
}
