package dataset

import (
	"fmt"
	"math/rand"

	"github.com/precipitation-dashboard/internal/domain"
)

const sampleSize = 30

// sampleSeed keeps the fallback dataset identical across restarts.
const sampleSeed = 42

var (
	sampleUFs   = []string{"SP", "RJ", "MG"}
	sampleDates = []string{"2024-01-01", "2024-01-02", "2024-01-03"}
)

// sampleRecords generates the synthetic dataset served when the source
// file cannot be loaded. Coordinates and values stay within the ranges
// of the real data so the dashboard remains usable.
func sampleRecords() []domain.Record {
	rng := rand.New(rand.NewSource(sampleSeed))

	records := make([]domain.Record, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		records = append(records, domain.Record{
			UF:            sampleUFs[i%len(sampleUFs)],
			Municipality:  fmt.Sprintf("Cidade_%d", i),
			Lat:           -30 + rng.Float64()*20,
			Lon:           -55 + rng.Float64()*20,
			Precipitation: rng.Float64() * 150,
			Date:          sampleDates[i%len(sampleDates)],
		})
	}
	return records
}
