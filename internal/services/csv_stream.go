package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column order of an import file. The first line is a header and is never imported.
const (
	columnTitle = iota
	columnType
	columnValue
	columnCategory
)

// csvRow is one trimmed data row. Missing trailing columns are empty strings.
type csvRow struct {
	Line     int
	Title    string
	Type     string
	Value    string
	Category string
}

// streamCSVRows decodes r on a producer goroutine. The rows channel is closed
// once the input is exhausted, a read error occurs or ctx is cancelled.
// The error channel receives at most one value and is closed after rows.
func streamCSVRows(ctx context.Context, r io.Reader) (<-chan csvRow, <-chan error) {
	rows := make(chan csvRow)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(rows)

		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		reader.ReuseRecord = true

		if _, err := reader.Read(); err != nil {
			if !errors.Is(err, io.EOF) {
				errs <- fmt.Errorf("%w: header: %v", ErrMalformedSource, err)
			}
			return
		}

		for {
			if err := ctx.Err(); err != nil {
				errs <- err
				return
			}

			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				errs <- fmt.Errorf("%w: %v", ErrMalformedSource, err)
				return
			}

			line, _ := reader.FieldPos(0)
			row := csvRow{
				Line:     line,
				Title:    field(record, columnTitle),
				Type:     field(record, columnType),
				Value:    field(record, columnValue),
				Category: field(record, columnCategory),
			}

			select {
			case rows <- row:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return rows, errs
}

func field(record []string, index int) string {
	if index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}
