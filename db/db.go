// Package db provides the PostgreSQL-backed variant of the row store.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/rferraz1/interfacefinalvasco/config"
	"github.com/rferraz1/interfacefinalvasco/models"
	"github.com/rferraz1/interfacefinalvasco/store"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates the row table and its read-path index.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.SheetRow)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS sheet_rows_tab_id_idx ON sheet_rows (tab, id)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("index: %v", err)
		}
	}

	return nil
}

// RowStore implements store.Store over Postgres. Tabs and their headers are
// fixed at construction from the canonical schemas; a tab outside that set
// behaves like a missing worksheet.
type RowStore struct {
	db   *bun.DB
	tabs map[string][]string
}

// NewRowStore wraps db with the given tab-to-header mapping.
func NewRowStore(db *bun.DB, tabs map[string][]string) *RowStore {
	return &RowStore{db: db, tabs: tabs}
}

func (s *RowStore) header(tab string) ([]string, error) {
	h, ok := s.tabs[tab]
	if !ok {
		return nil, store.ErrTabNotFound
	}
	return h, nil
}

// Read implements store.Store, returning rows in insertion order.
func (s *RowStore) Read(ctx context.Context, tab string) ([]map[string]string, error) {
	header, err := s.header(tab)
	if err != nil {
		return nil, err
	}

	var rows []models.SheetRow
	err = s.db.NewSelect().Model(&rows).
		Where("tab = ?", tab).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select rows for %q: %w", tab, err)
	}

	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		var cells []string
		if err := json.Unmarshal(r.Cells, &cells); err != nil {
			return nil, fmt.Errorf("decode row %d of %q: %w", r.ID, tab, err)
		}
		keyed := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(cells) {
				keyed[col] = cells[i]
			} else {
				keyed[col] = ""
			}
		}
		out = append(out, keyed)
	}
	return out, nil
}

// Append implements store.Store.
func (s *RowStore) Append(ctx context.Context, tab string, rows [][]string) error {
	if _, err := s.header(tab); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	ms := make([]models.SheetRow, 0, len(rows))
	for _, row := range rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encode row for %q: %w", tab, err)
		}
		ms = append(ms, models.SheetRow{Tab: tab, Cells: cells})
	}

	if _, err := s.db.NewInsert().Model(&ms).Exec(ctx); err != nil {
		return fmt.Errorf("insert rows for %q: %w", tab, err)
	}
	return nil
}

// Delete implements store.Store. Position counting matches the spreadsheet
// layout: the (virtual) header occupies position 1.
func (s *RowStore) Delete(ctx context.Context, tab string, pos int) error {
	if _, err := s.header(tab); err != nil {
		return err
	}
	offset := pos - 2
	if offset < 0 {
		return fmt.Errorf("row position %d is not a data row", pos)
	}

	var row models.SheetRow
	err := s.db.NewSelect().Model(&row).
		Column("id").
		Where("tab = ?", tab).
		OrderExpr("id ASC").
		Offset(offset).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("row position %d out of range for tab %q", pos, tab)
		}
		return fmt.Errorf("locate row %d of %q: %w", pos, tab, err)
	}

	if _, err := s.db.NewDelete().Model((*models.SheetRow)(nil)).
		Where("id = ?", row.ID).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete row %d of %q: %w", pos, tab, err)
	}
	return nil
}
