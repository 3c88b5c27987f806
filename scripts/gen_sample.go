// +build ignore

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Municipality seeds per state, roughly around their real coordinates.
var seeds = map[string][]struct {
	name string
	lat  float64
	lon  float64
}{
	"SP": {
		{"Campinas", -22.9056, -47.0608},
		{"Santos", -23.9608, -46.3336},
		{"Sorocaba", -23.5015, -47.4526},
		{"Ribeirao Preto", -21.1775, -47.8103},
	},
	"RJ": {
		{"Niteroi", -22.8832, -43.1034},
		{"Petropolis", -22.5112, -43.1779},
		{"Campos dos Goytacazes", -21.7622, -41.3181},
	},
	"MG": {
		{"Uberaba", -19.7472, -47.9381},
		{"Juiz de Fora", -21.7624, -43.3434},
		{"Montes Claros", -16.7282, -43.8578},
	},
}

var dates = []string{"2024-01-01", "2024-01-02", "2024-01-03"}

func main() {
	out := flag.String("out", "precipitacao.csv", "output CSV path")
	rows := flag.Int("rows", 120, "number of rows to generate")
	seed := flag.Int64("seed", 42, "random seed")
	decimalComma := flag.Bool("decimal-comma", true, "write coordinates with decimal commas, as the upstream export does")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	ufs := make([]string, 0, len(seeds))
	for uf := range seeds {
		ufs = append(ufs, uf)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"SIGLA_UF", "NM_MUN", "Lat", "Long", "precipitation", "date"}); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}

	for i := 0; i < *rows; i++ {
		uf := ufs[rng.Intn(len(ufs))]
		m := seeds[uf][rng.Intn(len(seeds[uf]))]

		// Jitter around the seed coordinates so points spread on the map.
		lat := m.lat + (rng.Float64()-0.5)*0.4
		lon := m.lon + (rng.Float64()-0.5)*0.4
		precip := rng.Float64() * 150

		row := []string{
			uf,
			m.name,
			coord(lat, *decimalComma),
			coord(lon, *decimalComma),
			strconv.FormatFloat(precip, 'f', 1, 64),
			dates[rng.Intn(len(dates))],
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("Failed to write row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush: %v", err)
	}

	fmt.Printf("Wrote %d rows to %s\n", *rows, *out)
}

func coord(v float64, decimalComma bool) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if decimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}
