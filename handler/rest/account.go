package rest

import (
	"net/http"

	"pegvault/core"
	"pegvault/handler/render"
	"pegvault/handler/views"
	"pegvault/pkg/number"

	"github.com/go-chi/chi"
)

func accountHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := chi.URLParam(r, "account")

		info, err := eng.AccountInfo(r.Context(), account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.AccountFromCore(info))
	}
}

func collateralHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := chi.URLParam(r, "account")
		assetID := chi.URLParam(r, "asset")

		balance, err := eng.CollateralBalance(r.Context(), account, assetID)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"account":  account,
			"asset_id": assetID,
			"balance":  number.ToDecimal(balance, 18),
		})
	}
}

func assetsHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		assets := make([]views.Asset, 0, len(eng.CollateralAssets()))
		for _, assetID := range eng.CollateralAssets() {
			view := views.Asset{AssetID: assetID}

			// one whole unit priced in USD
			if price, err := eng.USDValue(ctx, assetID, number.Precision); err != nil {
				view.Error = err.Error()
			} else {
				view.Price = number.ToDecimal(price, 18)
			}

			assets = append(assets, view)
		}

		render.JSON(w, assets)
	}
}
