// cmd/migrate/main.go
// Copies every tab from the Google Spreadsheet into the local PostgreSQL
// row store, so the dashboard can be pointed at STORE_BACKEND=postgres.
//
// Usage:
//
//	SHEETS_SPREADSHEET_ID=... SHEETS_CREDENTIALS_FILE=sa.json \
//	DB_PASS=... go run ./cmd/migrate
package main

import (
	"context"
	"errors"
	"log"

	"github.com/rferraz1/interfacefinalvasco/backend"
	"github.com/rferraz1/interfacefinalvasco/config"
	bundb "github.com/rferraz1/interfacefinalvasco/db"
	"github.com/rferraz1/interfacefinalvasco/roster"
	"github.com/rferraz1/interfacefinalvasco/sheets"
	"github.com/rferraz1/interfacefinalvasco/store"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- Google Sheets source ---
	if cfg.SpreadsheetID == "" {
		log.Fatal("SHEETS_SPREADSHEET_ID required")
	}
	var (
		src store.Store
		err error
	)
	if cfg.CredentialsJSON != "" {
		src, err = sheets.NewFromJSON(ctx, cfg.SpreadsheetID, []byte(cfg.CredentialsJSON))
	} else {
		src, err = sheets.New(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
	}
	if err != nil {
		log.Fatalf("open sheets: %v", err)
	}
	log.Println("connected to Google Sheets")

	// --- PostgreSQL destination ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}
	dst := bundb.NewRowStore(pgDB, backend.Headers(cfg))
	log.Println("connected to PostgreSQL")

	steps := []struct {
		tab    string
		schema roster.Schema
	}{
		{cfg.PlayersTab, roster.Players(cfg.DefaultCategory)},
		{cfg.TitlesTab, roster.Titles()},
		{cfg.MarketTab, roster.Market()},
	}

	for _, step := range steps {
		n, err := migrateTab(ctx, src, dst, step.tab, step.schema)
		if err != nil {
			log.Fatalf("migrate %s: %v", step.tab, err)
		}
		log.Printf("%s: %d rows", step.tab, n)
	}
}

// migrateTab normalizes the source rows onto the canonical schema before
// writing, so the relational copy starts clean even when the spreadsheet
// headers drifted.
func migrateTab(ctx context.Context, src, dst store.Store, tab string, schema roster.Schema) (int, error) {
	rows, err := src.Read(ctx, tab)
	if errors.Is(err, store.ErrTabNotFound) {
		log.Printf("%s: tab not found, skipping", tab)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	recs := schema.Normalize(rows)
	if err := dst.Append(ctx, tab, schema.Rows(recs)); err != nil {
		return 0, err
	}
	return len(recs), nil
}
