// Package csvutil serializes flat records to CSV for the export endpoints.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Row is one exported record: values aligned with the header column order.
type Row []string

// Write serializes the header and rows to w. Fields containing commas,
// quotes, or newlines are quoted with embedded quotes doubled; records are
// joined with "\n". Empty input (no header and no rows) writes nothing.
func Write(w io.Writer, header []string, rows []Row) error {
	if len(header) == 0 && len(rows) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for i, row := range rows {
		if len(header) > 0 && len(row) != len(header) {
			return fmt.Errorf("row %d has %d fields, header has %d", i, len(row), len(header))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Marshal renders the header and rows as CSV text.
func Marshal(header []string, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, header, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
