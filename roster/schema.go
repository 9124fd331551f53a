// Package roster holds the canonical record schemas and the normalization,
// filtering and bulk-sync logic shared by every backing store.
package roster

import (
	"fmt"
	"strings"
)

// Canonical column names.
const (
	ColName        = "name"
	ColYear        = "year"
	ColPosition    = "position"
	ColCompetition = "competition"
	ColGoals       = "goals"
	ColMinutes     = "minutes"
	ColCategory    = "category"

	ColTitle = "title"

	ColPlayer        = "player"
	ColMarketValue   = "market_value"
	ColContractUntil = "contract_until"
	ColLink          = "link"
)

// Positions accepted on single-entry player forms.
var Positions = []string{"Goalkeeper", "Full-back", "Centre-back", "Midfielder", "Winger", "Forward"}

// Competitions accepted on single-entry player forms.
var Competitions = []string{"World", "South American", "Other"}

// ValidPosition reports whether p is one of the known field positions.
func ValidPosition(p string) bool { return contains(Positions, p) }

// ValidCompetition reports whether c is one of the known competitions.
func ValidCompetition(c string) bool { return contains(Competitions, c) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Schema declares, once per record kind, the ordered canonical column list,
// which columns are numeric, and per-column default fills. Column order here
// is exactly the positional order used when appending rows to the store.
type Schema struct {
	Columns  []string
	numeric  map[string]bool
	defaults map[string]string
}

// Players returns the call-up record schema. Records with no source category
// fall back to defaultCategory.
func Players(defaultCategory string) Schema {
	return Schema{
		Columns:  []string{ColName, ColYear, ColPosition, ColCompetition, ColGoals, ColMinutes, ColCategory},
		numeric:  map[string]bool{ColYear: true, ColGoals: true, ColMinutes: true},
		defaults: map[string]string{ColCategory: defaultCategory},
	}
}

// Titles returns the trophy record schema.
func Titles() Schema {
	return Schema{
		Columns: []string{ColCategory, ColTitle, ColYear},
		numeric: map[string]bool{ColYear: true},
	}
}

// Market returns the transfer-market record schema.
func Market() Schema {
	return Schema{
		Columns: []string{ColPlayer, ColMarketValue, ColContractUntil, ColLink},
	}
}

// Numeric reports whether col is integer-typed.
func (s Schema) Numeric(col string) bool { return s.numeric[col] }

// MissingColumnsError rejects a bulk batch whose header lacks required
// canonical columns. The whole batch is refused; there is no partial accept.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ValidateHeader checks a raw batch header against the canonical column set.
// Header names are matched case- and space-insensitively.
func (s Schema) ValidateHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[CanonicalKey(h)] = true
	}
	var missing []string
	for _, col := range s.Columns {
		if !seen[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
