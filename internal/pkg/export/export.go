package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/precipitation-dashboard/internal/domain"
	"github.com/precipitation-dashboard/internal/pkg/errors"
	"github.com/tealeg/xlsx/v2"
)

// Supported export formats. Anything else falls back to CSV.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatExcel = "excel"
)

const (
	baseFilename = "dados_precipitacao"
	sheetName    = "Precipitacao"

	mimeCSV   = "text/csv; charset=utf-8"
	mimeJSON  = "application/json"
	mimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// utf8BOM lets spreadsheet tools detect the CSV encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Column order matches the source data file, so exported CSV files can
// be fed back into the loader unchanged.
var header = []string{"SIGLA_UF", "NM_MUN", "Lat", "Long", "precipitation", "date"}

// File is an encoded attachment ready to be served.
type File struct {
	Data     []byte
	MIMEType string
	Filename string
}

// Encode serializes a view in the requested format. An empty view is an
// error here, unlike the geo encoder: there is nothing to download.
func Encode(records []domain.Record, format string) (*File, error) {
	if len(records) == 0 {
		return nil, errors.ErrNothingToExport
	}

	// Format selection is case-insensitive.
	switch strings.ToLower(format) {
	case FormatJSON:
		return encodeJSON(records)
	case FormatExcel:
		return encodeExcel(records)
	default:
		return encodeCSV(records)
	}
}

func encodeCSV(records []domain.Record) (*File, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range records {
		r := &records[i]
		row := []string{
			r.UF,
			r.Municipality,
			formatFloat(r.Lat),
			formatFloat(r.Lon),
			formatFloat(r.Precipitation),
			r.Date,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &File{
		Data:     buf.Bytes(),
		MIMEType: mimeCSV,
		Filename: baseFilename + ".csv",
	}, nil
}

// exportRecord keeps the JSON keys aligned with the CSV header.
type exportRecord struct {
	UF            string  `json:"SIGLA_UF"`
	Municipality  string  `json:"NM_MUN"`
	Lat           float64 `json:"Lat"`
	Lon           float64 `json:"Long"`
	Precipitation float64 `json:"precipitation"`
	Date          string  `json:"date"`
}

func encodeJSON(records []domain.Record) (*File, error) {
	out := make([]exportRecord, 0, len(records))
	for i := range records {
		r := &records[i]
		out = append(out, exportRecord{
			UF:            r.UF,
			Municipality:  r.Municipality,
			Lat:           r.Lat,
			Lon:           r.Lon,
			Precipitation: r.Precipitation,
			Date:          r.Date,
		})
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal json export: %w", err)
	}

	return &File{
		Data:     data,
		MIMEType: mimeJSON,
		Filename: baseFilename + ".json",
	}, nil
}

func encodeExcel(records []domain.Record) (*File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("add xlsx sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, name := range header {
		headerRow.AddCell().Value = name
	}

	for i := range records {
		r := &records[i]
		row := sheet.AddRow()
		row.AddCell().Value = r.UF
		row.AddCell().Value = r.Municipality
		row.AddCell().SetFloat(r.Lat)
		row.AddCell().SetFloat(r.Lon)
		row.AddCell().SetFloat(r.Precipitation)
		row.AddCell().Value = r.Date
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return &File{
		Data:     buf.Bytes(),
		MIMEType: mimeExcel,
		Filename: baseFilename + ".xlsx",
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
