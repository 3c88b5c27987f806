package domain

import (
	"math"
	"sort"
)

// Histogram bucket upper bounds in millimeters. Each bucket is inclusive
// on its upper end; the last bucket is open ended.
const (
	bucketLowMax      = 10.0
	bucketModerateMax = 30.0
	bucketHighMax     = 70.0
)

// GroupStats aggregates the measured value within one group.
type GroupStats struct {
	Mean  float64 `json:"mean"`
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// Distribution counts records per fixed precipitation range.
type Distribution struct {
	Low      int `json:"low_0_10mm"`
	Moderate int `json:"moderate_10_30mm"`
	High     int `json:"high_30_70mm"`
	VeryHigh int `json:"very_high_70mm_plus"`
}

// Summary is the full statistics object for a filtered view.
type Summary struct {
	TotalRecords         int                   `json:"total_records"`
	MeanPrecipitation    float64               `json:"mean_precipitation"`
	MaxPrecipitation     float64               `json:"max_precipitation"`
	MinPrecipitation     float64               `json:"min_precipitation"`
	TotalPrecipitation   float64               `json:"total_precipitation"`
	UniqueMunicipalities int                   `json:"unique_municipalities"`
	UniqueStates         int                   `json:"unique_states"`
	ByState              map[string]GroupStats `json:"by_state"`
	Distribution         Distribution          `json:"distribution"`
}

// TimelineEntry aggregates the measured value for one date.
type TimelineEntry struct {
	Date               string  `json:"date"`
	MeanPrecipitation  float64 `json:"mean_precipitation"`
	TotalPrecipitation float64 `json:"total_precipitation"`
	RecordCount        int     `json:"record_count"`
}

// Period is the first and last date covered by the dataset.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OverviewStats is the condensed dataset summary shown on the landing
// page.
type OverviewStats struct {
	TotalRecords        int     `json:"total_records"`
	TotalMunicipalities int     `json:"total_municipalities"`
	TotalStates         int     `json:"total_states"`
	MeanPrecipitation   float64 `json:"mean_precipitation"`
	Period              Period  `json:"period"`
}

// Summarize computes the statistics object over a view. A nil result
// means the view was empty, which callers treat as "no data" rather than
// a zero-filled summary.
func Summarize(records []Record) *Summary {
	if len(records) == 0 {
		return nil
	}

	sum := 0.0
	min := records[0].Precipitation
	max := records[0].Precipitation
	municipalities := make(map[string]struct{})
	byState := make(map[string]GroupStats)
	var dist Distribution

	for i := range records {
		r := &records[i]
		v := r.Precipitation

		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		municipalities[r.Municipality] = struct{}{}

		gs := byState[r.UF]
		gs.Sum += v
		gs.Count++
		byState[r.UF] = gs

		switch {
		case v <= bucketLowMax:
			dist.Low++
		case v <= bucketModerateMax:
			dist.Moderate++
		case v <= bucketHighMax:
			dist.High++
		default:
			dist.VeryHigh++
		}
	}

	for uf, gs := range byState {
		gs.Mean = round2(gs.Sum / float64(gs.Count))
		gs.Sum = round2(gs.Sum)
		byState[uf] = gs
	}

	return &Summary{
		TotalRecords:         len(records),
		MeanPrecipitation:    round2(sum / float64(len(records))),
		MaxPrecipitation:     round2(max),
		MinPrecipitation:     round2(min),
		TotalPrecipitation:   round2(sum),
		UniqueMunicipalities: len(municipalities),
		UniqueStates:         len(byState),
		ByState:              byState,
		Distribution:         dist,
	}
}

// Timeline aggregates a view per date, sorted by date ascending. An
// empty view yields an empty sequence.
func Timeline(records []Record) []TimelineEntry {
	byDate := make(map[string]GroupStats)
	for i := range records {
		gs := byDate[records[i].Date]
		gs.Sum += records[i].Precipitation
		gs.Count++
		byDate[records[i].Date] = gs
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	entries := make([]TimelineEntry, 0, len(dates))
	for _, date := range dates {
		gs := byDate[date]
		entries = append(entries, TimelineEntry{
			Date:               date,
			MeanPrecipitation:  round2(gs.Sum / float64(gs.Count)),
			TotalPrecipitation: round2(gs.Sum),
			RecordCount:        gs.Count,
		})
	}
	return entries
}

// BasicStats condenses the whole dataset for the overview page.
func BasicStats(records []Record) *OverviewStats {
	stats := &OverviewStats{TotalRecords: len(records)}
	if len(records) == 0 {
		return stats
	}

	sum := 0.0
	municipalities := make(map[string]struct{})
	states := make(map[string]struct{})
	start := records[0].Date
	end := records[0].Date

	for i := range records {
		r := &records[i]
		sum += r.Precipitation
		municipalities[r.Municipality] = struct{}{}
		states[r.UF] = struct{}{}
		if r.Date < start {
			start = r.Date
		}
		if r.Date > end {
			end = r.Date
		}
	}

	stats.TotalMunicipalities = len(municipalities)
	stats.TotalStates = len(states)
	stats.MeanPrecipitation = round2(sum / float64(len(records)))
	stats.Period = Period{Start: start, End: end}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
