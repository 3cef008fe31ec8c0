package cmd

import (
	"time"

	"pegvault/core"
	"pegvault/pkg/id"
	"pegvault/pkg/number"
	"pegvault/service/engine"
	"pegvault/service/oracle"
	"pegvault/service/solvency"
	"pegvault/service/token"
	"pegvault/store/collateral"
	"pegvault/store/debt"
	"pegvault/store/journal"

	"github.com/fox-one/pkg/store/db"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideEventJournal() core.EventJournal {
	if cfg.DB.Dialect == "" {
		return nil
	}

	return journal.New(provideDatabase())
}

func provideFeeds() []*oracle.MemoryFeed {
	feeds := make([]*oracle.MemoryFeed, 0, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		heartbeat := time.Duration(asset.Heartbeat) * time.Second
		if heartbeat <= 0 {
			heartbeat = time.Hour
		}

		feeds = append(feeds, oracle.NewMemoryFeed(asset.AssetID, asset.Decimals, heartbeat))
	}

	return feeds
}

func provideOracleClient() *oracle.Client {
	return oracle.NewClient(cfg.Oracle.EndPoint)
}

// provideEngine wires ledgers, oracle, tokens and engine from config
func provideEngine(feeds []*oracle.MemoryFeed, sink core.EventSink) (core.Engine, error) {
	address := id.TraceIDFrom("pegvault-engine")

	assetIDs := make([]string, 0, len(cfg.Assets))
	priceFeeds := make([]core.PriceFeed, 0, len(feeds))
	tokens := make([]core.Token, 0, len(cfg.Assets))
	for i, asset := range cfg.Assets {
		assetIDs = append(assetIDs, asset.AssetID)
		priceFeeds = append(priceFeeds, feeds[i])

		fungible := token.NewFungible(asset.AssetID)
		for _, grant := range cfg.Genesis {
			if grant.AssetID != asset.AssetID {
				continue
			}

			amount, err := number.FromDecimal(grant.Amount, 18)
			if err != nil {
				return nil, err
			}

			fungible.Deposit(grant.Account, amount)
			fungible.Approve(grant.Account, address, amount)
		}

		tokens = append(tokens, fungible.Bind(address))
	}

	priceSrv, err := oracle.New(assetIDs, priceFeeds)
	if err != nil {
		return nil, err
	}

	debtToken := token.NewDebtToken("dsc")
	if err := debtToken.TransferOwnership(address); err != nil {
		return nil, err
	}

	collateralStore := collateral.New()
	debtStore := debt.New()
	solvencySrv := solvency.New(collateralStore, debtStore, priceSrv)

	return engine.New(
		address,
		collateralStore,
		debtStore,
		priceSrv,
		solvencySrv,
		token.NewRegistry(tokens...),
		debtToken.Bind(address),
		sink,
	), nil
}
