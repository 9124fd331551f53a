package roster

// Record is one normalized row keyed by canonical column name. A normalized
// Record carries every canonical column of its schema, each either typed or
// the missing marker.
type Record map[string]Value

// Row serializes a record to positional cells in canonical column order.
func (s Schema) Row(rec Record) []string {
	cells := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		cells[i] = rec[col].Cell()
	}
	return cells
}

// Rows serializes a batch of records for a store append.
func (s Schema) Rows(recs []Record) [][]string {
	rows := make([][]string, len(recs))
	for i, rec := range recs {
		rows[i] = s.Row(rec)
	}
	return rows
}
