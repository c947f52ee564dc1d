// Package feed adapts external order records to engine submissions.
// Records are four bare CSV columns: id, buy flag (1|0), price in the
// minor currency unit, quantity. Orders are submitted in record order.
package feed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"matchbook/domain/orderbook"
)

type Record struct {
	ID    uint64
	Side  orderbook.Side
	Price int64
	Qty   int64
}

// ReadFile preloads every record into memory so replay measures the
// engine, not the disk. Malformed rows fail with their line number.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("feed: read %s: %w", path, err)
	}

	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("feed: %s line %d: %w", path, i+1, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseRow(row []string) (Record, error) {
	id, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad id %q", row[0])
	}
	side := orderbook.Ask
	switch row[1] {
	case "1":
		side = orderbook.Bid
	case "0":
	default:
		return Record{}, fmt.Errorf("bad side flag %q", row[1])
	}
	price, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad price %q", row[2])
	}
	qty, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad quantity %q", row[3])
	}
	return Record{ID: id, Side: side, Price: price, Qty: qty}, nil
}
