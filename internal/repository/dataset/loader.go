package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/precipitation-dashboard/internal/domain"
	"github.com/precipitation-dashboard/internal/pkg/utils"
	"go.uber.org/zap"
)

// Source file column names, fixed by the upstream data export.
const (
	colUF            = "SIGLA_UF"
	colMunicipality  = "NM_MUN"
	colLat           = "Lat"
	colLon           = "Long"
	colPrecipitation = "precipitation"
	colDate          = "date"
)

// loadCSV reads the source file into records. Rows with a missing or
// unparseable coordinate or measured value are dropped, as are rows with
// out-of-range coordinates or negative values. A file-level failure
// (absence, broken header) is returned as an error so the caller can
// fall back to the synthetic sample.
func loadCSV(path string, logger *zap.Logger) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	dropped := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A short or long row only invalidates itself.
			if errors.Is(err, csv.ErrFieldCount) {
				dropped++
				continue
			}
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		record, ok := parseRow(row, cols)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}

	if dropped > 0 {
		logger.Warn("Dropped incomplete dataset rows",
			zap.String("file", path),
			zap.Int("dropped", dropped),
			zap.Int("kept", len(records)),
		)
	}
	return records, nil
}

type columns struct {
	uf            int
	municipality  int
	lat           int
	lon           int
	precipitation int
	date          int
}

func columnIndex(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			// Spreadsheet exports often prepend a UTF-8 BOM.
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}

	cols := columns{}
	for _, req := range []struct {
		name string
		dst  *int
	}{
		{colUF, &cols.uf},
		{colMunicipality, &cols.municipality},
		{colLat, &cols.lat},
		{colLon, &cols.lon},
		{colPrecipitation, &cols.precipitation},
		{colDate, &cols.date},
	} {
		i, ok := index[req.name]
		if !ok {
			return columns{}, fmt.Errorf("dataset header is missing column %q", req.name)
		}
		*req.dst = i
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (domain.Record, bool) {
	lat, ok := parseCoordinate(row[cols.lat])
	if !ok {
		return domain.Record{}, false
	}
	lon, ok := parseCoordinate(row[cols.lon])
	if !ok {
		return domain.Record{}, false
	}
	if !utils.ValidateCoordinates(lat, lon) {
		return domain.Record{}, false
	}

	precip, err := strconv.ParseFloat(strings.TrimSpace(row[cols.precipitation]), 64)
	if err != nil || math.IsNaN(precip) || math.IsInf(precip, 0) || precip < 0 {
		return domain.Record{}, false
	}

	return domain.Record{
		UF:            strings.TrimSpace(row[cols.uf]),
		Municipality:  strings.TrimSpace(row[cols.municipality]),
		Lat:           lat,
		Lon:           lon,
		Precipitation: precip,
		Date:          strings.TrimSpace(row[cols.date]),
	}, true
}

// parseCoordinate parses a coordinate cell, normalizing the decimal
// comma used by the upstream export.
func parseCoordinate(cell string) (float64, bool) {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", ".")
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
