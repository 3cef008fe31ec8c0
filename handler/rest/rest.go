package rest

import (
	"errors"
	"net/http"

	"pegvault/core"
	"pegvault/handler/render"
	"pegvault/handler/views"

	"github.com/go-chi/chi"
)

// Handle handle rest api requests against the engine
func Handle(eng core.Engine, journal core.EventJournal) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	if journal != nil {
		router.Get("/events", eventsHandler(journal))
		router.Get("/events/{id}", eventHandler(journal))
	}

	router.Get("/constants", constantsHandler())
	router.Get("/assets", assetsHandler(eng))
	router.Get("/accounts/{account}", accountHandler(eng))
	router.Get("/accounts/{account}/collateral/{asset}", collateralHandler(eng))

	router.Post("/deposit", depositHandler(eng))
	router.Post("/mint", mintHandler(eng))
	router.Post("/deposit-and-mint", depositAndMintHandler(eng))
	router.Post("/redeem", redeemHandler(eng))
	router.Post("/burn", burnHandler(eng))
	router.Post("/burn-and-redeem", burnAndRedeemHandler(eng))
	router.Post("/liquidate", liquidateHandler(eng))

	return router
}

func constantsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, views.ConstantsView())
	}
}
