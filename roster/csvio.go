package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV parses comma-delimited UTF-8 text with a header row into the raw
// keyed rows the normalizer consumes. Keys are the header cells verbatim;
// canonicalization happens later in Normalize.
func ReadCSV(r io.Reader) (header []string, rows []map[string]string, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errors.New("csv file is empty")
	}

	header = records[0]
	rows = make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// WriteCSV writes records in canonical column order, header row included.
func WriteCSV(w io.Writer, s Schema, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range recs {
		if err := cw.Write(s.Row(rec)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
