package rest

import (
	"net/http"

	"pegvault/core"
	"pegvault/handler/param"
	"pegvault/handler/render"
	"pegvault/pkg/number"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

type amountParams struct {
	Account string          `json:"account"`
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
}

func scaled(d decimal.Decimal) (*uint256.Int, error) {
	return number.FromDecimal(d, 18)
}

func depositHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params amountParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := scaled(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := eng.DepositCollateral(r.Context(), params.Account, params.AssetID, amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}

func mintHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params amountParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := scaled(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := eng.MintDebt(r.Context(), params.Account, amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}

func redeemHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params amountParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := scaled(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := eng.RedeemCollateral(r.Context(), params.Account, params.AssetID, amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}

func burnHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params amountParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := scaled(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := eng.BurnDebt(r.Context(), params.Account, amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}

type compositeParams struct {
	Account          string          `json:"account"`
	AssetID          string          `json:"asset_id"`
	CollateralAmount decimal.Decimal `json:"collateral_amount"`
	DebtAmount       decimal.Decimal `json:"debt_amount"`
}

func depositAndMintHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params compositeParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		collateralAmount, err := scaled(params.CollateralAmount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		debtAmount, err := scaled(params.DebtAmount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := eng.DepositAndMint(r.Context(), params.Account, params.AssetID, collateralAmount, debtAmount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}

func burnAndRedeemHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params compositeParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		collateralAmount, err := scaled(params.CollateralAmount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		debtAmount, err := scaled(params.DebtAmount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := eng.BurnAndRedeem(r.Context(), params.Account, debtAmount, params.AssetID, collateralAmount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}

type liquidateParams struct {
	Liquidator  string          `json:"liquidator"`
	Target      string          `json:"target"`
	AssetID     string          `json:"asset_id"`
	DebtToCover decimal.Decimal `json:"debt_to_cover"`
}

func liquidateHandler(eng core.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params liquidateParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		debtToCover, err := scaled(params.DebtToCover)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := eng.Liquidate(r.Context(), params.Liquidator, params.Target, params.AssetID, debtToCover); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}
