package oracle

import (
	"context"
	"time"

	"pegvault/core"
	"pegvault/pkg/number"

	"github.com/holiman/uint256"
)

// StalenessFactor scales a feed's heartbeat into the maximum allowed
// price age. A feed that misses this many heartbeats is rejected.
const StalenessFactor = 3

type priceOracleService struct {
	order []string
	feeds map[string]core.PriceFeed
	now   func() time.Time
}

// New pairs registered asset ids with their price feeds, 1:1 and in
// order. Mismatched list lengths fail construction.
func New(assetIDs []string, feeds []core.PriceFeed) (core.PriceOracleService, error) {
	if len(assetIDs) != len(feeds) {
		return nil, core.ErrLengthMismatch
	}

	s := &priceOracleService{
		order: make([]string, 0, len(assetIDs)),
		feeds: make(map[string]core.PriceFeed, len(assetIDs)),
		now:   time.Now,
	}

	for i, assetID := range assetIDs {
		if assetID == "" || feeds[i] == nil {
			return nil, core.ErrNotAllowedToken
		}
		if _, ok := s.feeds[assetID]; ok {
			return nil, core.ErrNotAllowedToken
		}

		s.order = append(s.order, assetID)
		s.feeds[assetID] = feeds[i]
	}

	return s, nil
}

func (s *priceOracleService) Price(ctx context.Context, assetID string) (*uint256.Int, error) {
	feed, err := s.Feed(assetID)
	if err != nil {
		return nil, err
	}

	answer, updatedAt, err := feed.Latest(ctx)
	if err != nil {
		return nil, err
	}

	maxAge := feed.Heartbeat() * StalenessFactor
	if s.now().Sub(updatedAt) > maxAge {
		return nil, core.ErrStalePrice
	}

	if !answer.IsPositive() {
		return nil, core.ErrInvalidPrice
	}

	// quantize to the feed's own precision, then scale to the internal
	// one so downstream math never needs per asset alignment
	price, err := number.FromDecimal(answer.Truncate(feed.Decimals()), 18)
	if err != nil {
		return nil, err
	}

	return price, nil
}

func (s *priceOracleService) Assets() []string {
	assets := make([]string, len(s.order))
	copy(assets, s.order)
	return assets
}

func (s *priceOracleService) Feed(assetID string) (core.PriceFeed, error) {
	feed, ok := s.feeds[assetID]
	if !ok {
		return nil, core.ErrNotAllowedToken
	}

	return feed, nil
}
