// Package backend opens the configured store.Store implementation. main and
// the CLI tools share it so backend selection lives in one place.
package backend

import (
	"context"
	"fmt"

	"github.com/rferraz1/interfacefinalvasco/config"
	"github.com/rferraz1/interfacefinalvasco/db"
	"github.com/rferraz1/interfacefinalvasco/roster"
	"github.com/rferraz1/interfacefinalvasco/sheets"
	"github.com/rferraz1/interfacefinalvasco/store"
)

// Tabs returns the configured tab names.
func Tabs(cfg *config.Config) roster.Tabs {
	return roster.Tabs{
		Players: cfg.PlayersTab,
		Titles:  cfg.TitlesTab,
		Market:  cfg.MarketTab,
	}
}

// Headers maps each configured tab to its canonical column header.
func Headers(cfg *config.Config) map[string][]string {
	return map[string][]string{
		cfg.PlayersTab: roster.Players(cfg.DefaultCategory).Columns,
		cfg.TitlesTab:  roster.Titles().Columns,
		cfg.MarketTab:  roster.Market().Columns,
	}
}

// Open builds the store named by cfg.StoreBackend. On success the returned
// closer is never nil.
func Open(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		bdb := db.Setup(cfg)
		if err := db.CreateTables(ctx, bdb); err != nil {
			bdb.Close()
			return nil, nil, fmt.Errorf("create tables: %w", err)
		}
		return db.NewRowStore(bdb, Headers(cfg)), func() { _ = bdb.Close() }, nil

	case config.BackendMemory:
		m := store.NewMemory()
		for tab, header := range Headers(cfg) {
			m.CreateTab(tab, header)
		}
		return m, func() {}, nil

	default: // sheets
		cached := store.NewCached(cfg.StoreTTL, func(ctx context.Context) (store.Store, error) {
			if cfg.CredentialsJSON != "" {
				return sheets.NewFromJSON(ctx, cfg.SpreadsheetID, []byte(cfg.CredentialsJSON))
			}
			return sheets.New(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
		})
		return cached, func() {}, nil
	}
}
