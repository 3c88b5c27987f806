package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/precipitation-dashboard/internal/config"
	"github.com/precipitation-dashboard/internal/domain"
)

func TestNew(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	ctx := context.Background()

	t.Run("loads the configured file", func(t *testing.T) {
		path := writeCSV(t,
			"SIGLA_UF,NM_MUN,Lat,Long,precipitation,date\n"+
				"SP,Campinas,-22.9,-47.06,12.5,2024-01-02\n"+
				"RJ,Niteroi,-22.88,-43.1,3,2024-01-01\n")

		repo := New(&config.DataConfig{File: path}, logger)

		assert.False(t, repo.Fallback(ctx))
		assert.Equal(t, path, repo.Source(ctx))
		assert.Len(t, repo.Records(ctx), 2)
		assert.Equal(t, []string{"RJ", "SP"}, repo.UFs(ctx))
		assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, repo.Dates(ctx))
	})

	t.Run("missing file falls back to the synthetic sample", func(t *testing.T) {
		repo := New(&config.DataConfig{File: "nao_existe.csv"}, logger)

		assert.True(t, repo.Fallback(ctx))
		assert.Equal(t, SyntheticSource, repo.Source(ctx))
		assert.Len(t, repo.Records(ctx), sampleSize)
		assert.Equal(t, []string{"MG", "RJ", "SP"}, repo.UFs(ctx))
		assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, repo.Dates(ctx))
	})

	t.Run("file without usable rows falls back", func(t *testing.T) {
		path := writeCSV(t,
			"SIGLA_UF,NM_MUN,Lat,Long,precipitation,date\n"+
				"SP,Campinas,abc,-47.06,10,2024-01-01\n")

		repo := New(&config.DataConfig{File: path}, logger)

		assert.True(t, repo.Fallback(ctx))
		assert.Equal(t, SyntheticSource, repo.Source(ctx))
		assert.Len(t, repo.Records(ctx), sampleSize)
	})

	t.Run("synthetic sample is deterministic", func(t *testing.T) {
		first := New(&config.DataConfig{File: "nao_existe.csv"}, logger)
		second := New(&config.DataConfig{File: "nao_existe.csv"}, logger)

		assert.Equal(t, first.Records(ctx), second.Records(ctx))
	})

	t.Run("synthetic sample stays within the data ranges", func(t *testing.T) {
		repo := New(&config.DataConfig{File: "nao_existe.csv"}, logger)

		for _, r := range repo.Records(ctx) {
			assert.GreaterOrEqual(t, r.Lat, -30.0)
			assert.LessOrEqual(t, r.Lat, -10.0)
			assert.GreaterOrEqual(t, r.Lon, -55.0)
			assert.LessOrEqual(t, r.Lon, -35.0)
			assert.GreaterOrEqual(t, r.Precipitation, 0.0)
			assert.LessOrEqual(t, r.Precipitation, 150.0)
			assert.NotEmpty(t, r.Municipality)
		}
	})
}

func TestNewFromRecords(t *testing.T) {
	ctx := context.Background()

	records := []domain.Record{
		{UF: "SP", Municipality: "Santos", Precipitation: 20, Date: "2024-01-02"},
		{UF: "MG", Municipality: "Uberaba", Precipitation: 5, Date: "2024-01-01"},
		{UF: "SP", Municipality: "Campinas", Precipitation: 80, Date: "2024-01-01"},
	}

	repo := NewFromRecords(records, nil)

	t.Run("keeps load order", func(t *testing.T) {
		got := repo.Records(ctx)
		require.Len(t, got, 3)
		assert.Equal(t, "Santos", got[0].Municipality)
		assert.Equal(t, "Campinas", got[2].Municipality)
	})

	t.Run("derives sorted unique value sets", func(t *testing.T) {
		assert.Equal(t, []string{"MG", "SP"}, repo.UFs(ctx))
		assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, repo.Dates(ctx))
	})

	t.Run("membership checks", func(t *testing.T) {
		assert.True(t, repo.HasUF(ctx, "SP"))
		assert.False(t, repo.HasUF(ctx, "sp"))
		assert.False(t, repo.HasUF(ctx, "ZZ"))
		assert.True(t, repo.HasDate(ctx, "2024-01-01"))
		assert.False(t, repo.HasDate(ctx, "2024-02-01"))
	})

	t.Run("reports the in-memory source", func(t *testing.T) {
		assert.Equal(t, "in-memory", repo.Source(ctx))
		assert.False(t, repo.Fallback(ctx))
	})
}
