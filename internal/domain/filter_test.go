package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteria_Matches(t *testing.T) {
	record := Record{
		UF:            "SP",
		Municipality:  "Campinas",
		Lat:           -22.9,
		Lon:           -47.06,
		Precipitation: 42.5,
		Date:          "2024-01-02",
	}

	tests := []struct {
		name        string
		criteria    FilterCriteria
		expected    bool
		description string
	}{
		{
			name:        "empty criteria",
			criteria:    FilterCriteria{},
			expected:    true,
			description: "Should match every record when no criterion is active",
		},
		{
			name:        "matching state",
			criteria:    FilterCriteria{UF: "SP"},
			expected:    true,
			description: "Should match when the state is equal",
		},
		{
			name:        "different state",
			criteria:    FilterCriteria{UF: "RJ"},
			expected:    false,
			description: "Should reject a record from another state",
		},
		{
			name:        "matching date",
			criteria:    FilterCriteria{Date: "2024-01-02"},
			expected:    true,
			description: "Should match when the date is equal",
		},
		{
			name:        "different date",
			criteria:    FilterCriteria{Date: "2024-01-03"},
			expected:    false,
			description: "Should reject a record from another date",
		},
		{
			name:        "min bound below value",
			criteria:    FilterCriteria{MinPrecip: floatPtr(10)},
			expected:    true,
			description: "Should match when precipitation is above the lower bound",
		},
		{
			name:        "min bound equal to value",
			criteria:    FilterCriteria{MinPrecip: floatPtr(42.5)},
			expected:    true,
			description: "Should match when precipitation equals the lower bound",
		},
		{
			name:        "min bound above value",
			criteria:    FilterCriteria{MinPrecip: floatPtr(50)},
			expected:    false,
			description: "Should reject when precipitation is below the lower bound",
		},
		{
			name:        "max bound equal to value",
			criteria:    FilterCriteria{MaxPrecip: floatPtr(42.5)},
			expected:    true,
			description: "Should match when precipitation equals the upper bound",
		},
		{
			name:        "max bound below value",
			criteria:    FilterCriteria{MaxPrecip: floatPtr(42.49)},
			expected:    false,
			description: "Should reject when precipitation is above the upper bound",
		},
		{
			name:        "municipality in list",
			criteria:    FilterCriteria{Municipalities: []string{"Santos", "Campinas"}},
			expected:    true,
			description: "Should match when the municipality is in the list",
		},
		{
			name:        "municipality not in list",
			criteria:    FilterCriteria{Municipalities: []string{"Santos", "Sorocaba"}},
			expected:    false,
			description: "Should reject when the municipality is not in the list",
		},
		{
			name:        "municipality match is case sensitive",
			criteria:    FilterCriteria{Municipalities: []string{"campinas"}},
			expected:    false,
			description: "Should compare municipality names exactly",
		},
		{
			name: "all criteria satisfied",
			criteria: FilterCriteria{
				UF:             "SP",
				Date:           "2024-01-02",
				MinPrecip:      floatPtr(40),
				MaxPrecip:      floatPtr(50),
				Municipalities: []string{"Campinas"},
			},
			expected:    true,
			description: "Should match when every active criterion holds",
		},
		{
			name: "one criterion fails",
			criteria: FilterCriteria{
				UF:        "SP",
				Date:      "2024-01-02",
				MinPrecip: floatPtr(43),
			},
			expected:    false,
			description: "Should reject as soon as any active criterion fails",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.criteria.Matches(&record)
			assert.Equal(t, tt.expected, result, tt.description)
		})
	}
}

func TestFilterCriteria_Apply(t *testing.T) {
	records := []Record{
		{UF: "SP", Municipality: "Campinas", Precipitation: 5, Date: "2024-01-01"},
		{UF: "RJ", Municipality: "Niteroi", Precipitation: 20, Date: "2024-01-01"},
		{UF: "SP", Municipality: "Santos", Precipitation: 80, Date: "2024-01-02"},
		{UF: "MG", Municipality: "Uberaba", Precipitation: 33, Date: "2024-01-02"},
	}

	t.Run("preserves dataset order", func(t *testing.T) {
		criteria := FilterCriteria{UF: "SP"}
		view := criteria.Apply(records)

		assert.Len(t, view, 2)
		assert.Equal(t, "Campinas", view[0].Municipality)
		assert.Equal(t, "Santos", view[1].Municipality)
	})

	t.Run("no match yields empty non nil slice", func(t *testing.T) {
		criteria := FilterCriteria{UF: "SP", Date: "2024-01-03"}
		view := criteria.Apply(records)

		assert.NotNil(t, view)
		assert.Empty(t, view)
	})

	t.Run("does not mutate the dataset", func(t *testing.T) {
		criteria := FilterCriteria{MinPrecip: floatPtr(10)}
		view := criteria.Apply(records)

		view[0].Precipitation = -1
		assert.Equal(t, 20.0, records[1].Precipitation)
		assert.Len(t, records, 4)
	})

	t.Run("empty criteria copies everything", func(t *testing.T) {
		criteria := FilterCriteria{}
		view := criteria.Apply(records)

		assert.Equal(t, records, view)
	})
}

// Helper function to create float pointers
func floatPtr(v float64) *float64 {
	return &v
}
