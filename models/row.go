package models

import (
	"encoding/json"

	"github.com/uptrace/bun"
)

// SheetRow is one positional data row of a tab in the relational backend.
// Cells are stored as a JSON array of strings in canonical column order;
// insertion order of IDs preserves the row positions the dashboard deletes
// by.
type SheetRow struct {
	bun.BaseModel `bun:"table:sheet_rows,alias:sr"`

	ID    int             `bun:"id,pk,autoincrement" json:"id"`
	Tab   string          `bun:"tab,notnull" json:"tab"`
	Cells json.RawMessage `bun:"cells,notnull,type:jsonb" json:"cells"`
}
