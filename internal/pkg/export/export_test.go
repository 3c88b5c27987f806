package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/precipitation-dashboard/internal/domain"
	"github.com/precipitation-dashboard/internal/pkg/errors"
)

func sampleView() []domain.Record {
	return []domain.Record{
		{UF: "SP", Municipality: "Campinas", Lat: -22.9056, Lon: -47.0608, Precipitation: 12.5, Date: "2024-01-01"},
		{UF: "RJ", Municipality: "Niteroi", Lat: -22.8832, Lon: -43.1034, Precipitation: 0, Date: "2024-01-02"},
		{UF: "MG", Municipality: "Uberaba", Lat: -19.7472, Lon: -47.9381, Precipitation: 88.3, Date: "2024-01-03"},
	}
}

func TestEncode_EmptyView(t *testing.T) {
	for _, format := range []string{FormatCSV, FormatJSON, FormatExcel, "pdf", ""} {
		t.Run("format "+format, func(t *testing.T) {
			file, err := Encode(nil, format)
			assert.Nil(t, file)
			assert.ErrorIs(t, err, errors.ErrNothingToExport)
		})
	}
}

func TestEncode_FormatIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		format   string
		filename string
	}{
		{"JSON", "dados_precipitacao.json"},
		{"Json", "dados_precipitacao.json"},
		{"Excel", "dados_precipitacao.xlsx"},
		{"EXCEL", "dados_precipitacao.xlsx"},
		{"CSV", "dados_precipitacao.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			file, err := Encode(sampleView(), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.filename, file.Filename)
		})
	}
}

func TestEncode_UnknownFormatFallsBackToCSV(t *testing.T) {
	file, err := Encode(sampleView(), "pdf")
	require.NoError(t, err)

	assert.Equal(t, "dados_precipitacao.csv", file.Filename)
	assert.Equal(t, mimeCSV, file.MIMEType)
	assert.True(t, bytes.HasPrefix(file.Data, utf8BOM))
}

func TestEncode_CSV(t *testing.T) {
	records := sampleView()

	file, err := Encode(records, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "dados_precipitacao.csv", file.Filename)
	assert.Equal(t, mimeCSV, file.MIMEType)

	t.Run("starts with the UTF-8 BOM", func(t *testing.T) {
		assert.True(t, bytes.HasPrefix(file.Data, utf8BOM),
			"Spreadsheet tools rely on the BOM to pick the encoding")
	})

	t.Run("round-trips through a CSV reader", func(t *testing.T) {
		rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(file.Data, utf8BOM))).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, len(records)+1)

		assert.Equal(t, header, rows[0])

		for i, r := range records {
			row := rows[i+1]
			assert.Equal(t, r.UF, row[0])
			assert.Equal(t, r.Municipality, row[1])

			precip, err := strconv.ParseFloat(row[4], 64)
			require.NoError(t, err)
			assert.InDelta(t, r.Precipitation, precip, 1e-9)

			assert.Equal(t, r.Date, row[5])
		}
	})
}

func TestEncode_JSON(t *testing.T) {
	records := sampleView()

	file, err := Encode(records, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "dados_precipitacao.json", file.Filename)
	assert.Equal(t, mimeJSON, file.MIMEType)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(file.Data, &decoded))
	require.Len(t, decoded, len(records))

	t.Run("keys match the CSV header", func(t *testing.T) {
		for _, name := range header {
			assert.Contains(t, decoded[0], name)
		}
	})

	t.Run("values survive the round-trip", func(t *testing.T) {
		for i, r := range records {
			obj := decoded[i]
			assert.Equal(t, r.UF, obj["SIGLA_UF"])
			assert.Equal(t, r.Municipality, obj["NM_MUN"])
			assert.InDelta(t, r.Precipitation, obj["precipitation"].(float64), 1e-9)
			assert.Equal(t, r.Date, obj["date"], "Dates keep the YYYY-MM-DD interchange form")
		}
	})
}

func TestEncode_Excel(t *testing.T) {
	records := sampleView()

	file, err := Encode(records, FormatExcel)
	require.NoError(t, err)

	assert.Equal(t, "dados_precipitacao.xlsx", file.Filename)
	assert.Equal(t, mimeExcel, file.MIMEType)

	workbook, err := xlsx.OpenBinary(file.Data)
	require.NoError(t, err)

	sheet, ok := workbook.Sheet[sheetName]
	require.True(t, ok, "Workbook must carry the %s sheet", sheetName)
	require.Len(t, sheet.Rows, len(records)+1)

	t.Run("first row is the header", func(t *testing.T) {
		for i, name := range header {
			assert.Equal(t, name, sheet.Rows[0].Cells[i].String())
		}
	})

	t.Run("values survive the round-trip", func(t *testing.T) {
		for i, r := range records {
			cells := sheet.Rows[i+1].Cells
			assert.Equal(t, r.UF, cells[0].String())
			assert.Equal(t, r.Municipality, cells[1].String())

			precip, err := cells[4].Float()
			require.NoError(t, err)
			assert.InDelta(t, r.Precipitation, precip, 1e-9)

			assert.Equal(t, r.Date, cells[5].String())
		}
	})
}
