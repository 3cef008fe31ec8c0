package oracle

import (
	"context"
	"sync"
	"time"

	"pegvault/core"

	"github.com/shopspring/decimal"
)

// MemoryFeed is an in-process price feed. The priceoracle worker keeps
// it fresh from a remote endpoint while request goroutines read it, so
// the reading is guarded; tests drive it directly.
type MemoryFeed struct {
	assetID   string
	decimals  int32
	heartbeat time.Duration

	mux       sync.RWMutex
	answer    decimal.Decimal
	updatedAt time.Time
}

// NewMemoryFeed new feed for one asset
func NewMemoryFeed(assetID string, decimals int32, heartbeat time.Duration) *MemoryFeed {
	return &MemoryFeed{
		assetID:   assetID,
		decimals:  decimals,
		heartbeat: heartbeat,
	}
}

func (f *MemoryFeed) AssetID() string {
	return f.assetID
}

func (f *MemoryFeed) Decimals() int32 {
	return f.decimals
}

func (f *MemoryFeed) Heartbeat() time.Duration {
	return f.heartbeat
}

// SetAnswer records a new reading
func (f *MemoryFeed) SetAnswer(answer decimal.Decimal, updatedAt time.Time) {
	f.mux.Lock()
	defer f.mux.Unlock()

	f.answer = answer
	f.updatedAt = updatedAt
}

func (f *MemoryFeed) Latest(ctx context.Context) (decimal.Decimal, time.Time, error) {
	f.mux.RLock()
	defer f.mux.RUnlock()

	if f.updatedAt.IsZero() {
		return decimal.Zero, time.Time{}, core.ErrInvalidPrice
	}

	return f.answer, f.updatedAt, nil
}
