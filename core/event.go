package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/holiman/uint256"
)

const (
	EventTypeCollateralDeposited = "collateral_deposited"
	EventTypeCollateralRedeemed  = "collateral_redeemed"
)

// Event is a domain event emitted by the engine. Events produced inside
// one operation are buffered and delivered only if the operation commits,
// ordered exactly as emitted.
type Event interface {
	EventType() string
}

// CollateralDeposited emitted after a deposit credits the ledger
type CollateralDeposited struct {
	TraceID   string       `json:"trace_id"`
	Account   string       `json:"account"`
	AssetID   string       `json:"asset_id"`
	Amount    *uint256.Int `json:"amount"`
	CreatedAt time.Time    `json:"created_at"`
}

func (CollateralDeposited) EventType() string {
	return EventTypeCollateralDeposited
}

// CollateralRedeemed emitted after collateral leaves an account's ledger,
// either by self redemption (From == To owner path) or by liquidation
// (To is the liquidator).
type CollateralRedeemed struct {
	TraceID   string       `json:"trace_id"`
	From      string       `json:"from"`
	To        string       `json:"to"`
	AssetID   string       `json:"asset_id"`
	Amount    *uint256.Int `json:"amount"`
	CreatedAt time.Time    `json:"created_at"`
}

func (CollateralRedeemed) EventType() string {
	return EventTypeCollateralRedeemed
}

// EventSink receives committed events
type EventSink interface {
	Emit(ctx context.Context, events ...Event) error
}

// EventEntry is one persisted event row
type EventEntry struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventJournal persists committed events and reads them back, newest
// first
type EventJournal interface {
	EventSink
	// Find returns nil without error when no entry has the id
	Find(ctx context.Context, id int64) (*EventEntry, error)
	List(ctx context.Context, limit int) ([]*EventEntry, error)
}
