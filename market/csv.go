package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// LoadBars reads daily bars from a CSV file. Files ending in ".xz" are
// decompressed transparently; archived daily feeds are usually shipped that
// way.
//
// Expected columns: trade_date,open,high,low,close[,prevadj_factor] with a
// header row. Dates may be "20060102" or "2006-01-02".
func LoadBars(path string) ([]Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bars file: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz stream %s: %w", path, err)
		}
		src = xr
	}

	bars, err := ReadBars(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bars, nil
}

// ReadBars parses bars from CSV content.
func ReadBars(r io.Reader) ([]Bar, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty bar file")
	}

	// Skip the header row if the first field is not a date.
	start := 0
	if _, err := parseDate(rows[0][0]); err != nil {
		start = 1
	}

	bars := make([]Bar, 0, len(rows)-start)
	for i, row := range rows[start:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("row %d: want at least 5 columns, got %d", i+start+1, len(row))
		}

		date, err := parseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+start+1, err)
		}

		vals := make([]float64, 4)
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+start+1, j+2, err)
			}
			vals[j] = v
		}

		b := Bar{Date: date, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}
		if len(row) >= 6 && strings.TrimSpace(row[5]) != "" {
			f, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d prevadj_factor: %w", i+start+1, err)
			}
			b.PrevAdjFactor = f
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	if err := CheckOrdered(bars); err != nil {
		return nil, err
	}
	return bars, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"20060102", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad trade date %q", s)
}
