// Package dump writes per-cycle offer snapshots as CSV files, one file per
// cycle, for offline inspection.
package dump

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"miles_watch/internal/domain/entity"
)

type CSVWriter struct {
	dir string
}

func NewCSVWriter(dir string) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dump dir: %w", err)
	}

	return &CSVWriter{dir: dir}, nil
}

func (w *CSVWriter) Dump(_ context.Context, report entity.Report) error {
	f, err := os.Create(filepath.Join(w.dir, "offers_"+report.CycleID+".csv"))
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err = cw.Write([]string{
		"carrier", "origin", "destination", "date",
		"miles", "cash_taxes", "duration_hours", "segments",
	}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, offer := range report.Offers {
		taxes := ""
		if offer.CashTaxes != nil {
			taxes = strconv.FormatFloat(*offer.CashTaxes, 'f', 2, 64)
		}

		if err = cw.Write([]string{
			offer.Carrier,
			offer.Origin,
			offer.Destination,
			offer.Date.Format("2006-01-02"),
			strconv.Itoa(offer.Miles),
			taxes,
			strconv.FormatFloat(offer.DurationHours, 'f', 2, 64),
			strconv.Itoa(offer.Segments),
		}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	if err = cw.Error(); err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	return nil
}
