package dump_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"miles_watch/internal/domain/entity"
	"miles_watch/internal/infrastructure/dump"
)

func TestCSVWriterDump(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()

	writer, err := dump.NewCSVWriter(dir)
	rq.NoError(err)

	taxes := 98.5
	report := entity.Report{
		CycleID: "cvd92kml3cmg8g2sq1g0",
		Offers: []entity.Offer{
			{
				Carrier:       "ANA",
				Origin:        "GIG",
				Destination:   "NRT",
				Date:          time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
				Miles:         50000,
				CashTaxes:     &taxes,
				DurationHours: 9.5,
				Segments:      1,
			},
		},
	}

	rq.NoError(writer.Dump(context.Background(), report))

	raw, err := os.ReadFile(filepath.Join(dir, "offers_cvd92kml3cmg8g2sq1g0.csv"))
	rq.NoError(err)

	rq.Contains(string(raw), "carrier,origin,destination,date")
	rq.Contains(string(raw), "ANA,GIG,NRT,2025-09-10,50000,98.50,9.50,1")
}
