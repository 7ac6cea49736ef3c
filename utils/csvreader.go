package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads a whole CSV stream into rows. Device dumps are small
// enough that streaming is not worth it.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}
