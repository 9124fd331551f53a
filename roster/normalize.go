package roster

import (
	"strconv"
	"strings"
)

// CanonicalKey lowercases, trims and joins internal whitespace with
// underscores, the one key convention applied everywhere.
func CanonicalKey(k string) string {
	return strings.Join(strings.Fields(strings.ToLower(k)), "_")
}

// Normalize maps raw rows with arbitrary-cased, arbitrary-spaced keys onto
// the canonical schema. Keys normalizing to "" are dropped (trailing blank
// spreadsheet columns). Absent canonical columns are filled with the missing
// marker, or the schema default where one is declared. Numeric columns are
// best-effort coerced to int; a value that does not parse becomes missing
// rather than an error. The result is projected onto exactly the canonical
// column list; anything else in the source is discarded.
//
// Normalize never fails on row-level data.
func (s Schema) Normalize(raw []map[string]string) []Record {
	out := make([]Record, 0, len(raw))
	for _, row := range raw {
		keyed := make(map[string]string, len(row))
		for k, v := range row {
			ck := CanonicalKey(k)
			if ck == "" {
				continue
			}
			keyed[ck] = v
		}

		rec := make(Record, len(s.Columns))
		for _, col := range s.Columns {
			rawVal, ok := keyed[col]
			if !ok {
				if def, has := s.defaults[col]; has {
					rec[col] = TextValue(def)
				} else {
					rec[col] = Missing
				}
				continue
			}
			if s.numeric[col] {
				n, err := strconv.Atoi(strings.TrimSpace(rawVal))
				if err != nil {
					rec[col] = Missing
				} else {
					rec[col] = IntValue(n)
				}
				continue
			}
			rec[col] = TextValue(rawVal)
		}
		out = append(out, rec)
	}
	return out
}
