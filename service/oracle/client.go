package oracle

import (
	"context"
	"fmt"
	"time"

	"pegvault/core"
	"pegvault/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
)

// Client pulls price tickers from a remote oracle endpoint
type Client struct {
	endpoint string
}

// NewClient new ticker client
func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint}
}

// PullPriceTicker pull one asset's ticker
func (c *Client) PullPriceTicker(ctx context.Context, assetID string, t time.Time) (*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/v2/tickers/%s?ts=%d", c.endpoint, assetID, t.UTC().Unix())
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

// PullAllPriceTickers pull all tickers at once
func (c *Client) PullAllPriceTickers(ctx context.Context, t time.Time) ([]*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/tickers?ts=%d", c.endpoint, t.UTC().Unix())

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var tickers []*core.PriceTicker
	if err := resthttp.ParseResponse(resp, &tickers); err != nil {
		return nil, err
	}

	return tickers, nil
}
