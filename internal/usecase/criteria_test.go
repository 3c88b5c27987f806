package usecase

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/precipitation-dashboard/internal/domain"
	apperrors "github.com/precipitation-dashboard/internal/pkg/errors"
	"github.com/precipitation-dashboard/internal/repository/dataset"
	"github.com/precipitation-dashboard/internal/usecase/dto"
)

func criteriaRepo() *dataset.Repository {
	return dataset.NewFromRecords([]domain.Record{
		{UF: "SP", Municipality: "Campinas", Precipitation: 5, Date: "2024-01-01"},
		{UF: "RJ", Municipality: "Niteroi", Precipitation: 20, Date: "2024-01-02"},
	}, nil)
}

func TestBuildCriteria(t *testing.T) {
	ctx := context.Background()
	repo := criteriaRepo()

	t.Run("no parameters means no constraints", func(t *testing.T) {
		criteria, err := buildCriteria(ctx, repo, dto.FilterQuery{})
		require.NoError(t, err)
		assert.Equal(t, domain.FilterCriteria{}, criteria)
	})

	t.Run("known values pass through", func(t *testing.T) {
		criteria, err := buildCriteria(ctx, repo, dto.FilterQuery{
			UF:        "SP",
			Date:      "2024-01-01",
			MinPrecip: "1.5",
			MaxPrecip: "90",
		})
		require.NoError(t, err)

		assert.Equal(t, "SP", criteria.UF)
		assert.Equal(t, "2024-01-01", criteria.Date)
		require.NotNil(t, criteria.MinPrecip)
		assert.Equal(t, 1.5, *criteria.MinPrecip)
		require.NotNil(t, criteria.MaxPrecip)
		assert.Equal(t, 90.0, *criteria.MaxPrecip)
	})

	t.Run("unknown state is a validation error", func(t *testing.T) {
		_, err := buildCriteria(ctx, repo, dto.FilterQuery{UF: "ZZ"})

		var appErr *apperrors.AppError
		require.True(t, goerrors.As(err, &appErr))
		assert.Equal(t, 400, appErr.StatusCode)
		assert.Equal(t, []string{"state 'ZZ' not found"}, appErr.Errors)
	})

	t.Run("unknown date is a validation error", func(t *testing.T) {
		_, err := buildCriteria(ctx, repo, dto.FilterQuery{Date: "1999-12-31"})

		var appErr *apperrors.AppError
		require.True(t, goerrors.As(err, &appErr))
		assert.Equal(t, []string{"date '1999-12-31' not found"}, appErr.Errors)
	})

	t.Run("bounds must parse as non-negative numbers", func(t *testing.T) {
		tests := []struct {
			name     string
			query    dto.FilterQuery
			expected string
		}{
			{
				name:     "min not a number",
				query:    dto.FilterQuery{MinPrecip: "muito"},
				expected: "min_precip must be a non-negative number",
			},
			{
				name:     "min negative",
				query:    dto.FilterQuery{MinPrecip: "-3"},
				expected: "min_precip must be a non-negative number",
			},
			{
				name:     "max not a number",
				query:    dto.FilterQuery{MaxPrecip: "8,5"},
				expected: "max_precip must be a non-negative number",
			},
			{
				name:     "max negative",
				query:    dto.FilterQuery{MaxPrecip: "-0.1"},
				expected: "max_precip must be a non-negative number",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := buildCriteria(ctx, repo, tt.query)

				var appErr *apperrors.AppError
				require.True(t, goerrors.As(err, &appErr))
				assert.Equal(t, []string{tt.expected}, appErr.Errors)
			})
		}
	})

	t.Run("every problem is collected into one error", func(t *testing.T) {
		_, err := buildCriteria(ctx, repo, dto.FilterQuery{
			UF:        "ZZ",
			Date:      "1999-12-31",
			MinPrecip: "abc",
			MaxPrecip: "-1",
		})

		var appErr *apperrors.AppError
		require.True(t, goerrors.As(err, &appErr))
		assert.Len(t, appErr.Errors, 4, "One message per rejected parameter")
	})

	t.Run("zero is a valid bound", func(t *testing.T) {
		criteria, err := buildCriteria(ctx, repo, dto.FilterQuery{MinPrecip: "0"})
		require.NoError(t, err)
		require.NotNil(t, criteria.MinPrecip)
		assert.Equal(t, 0.0, *criteria.MinPrecip)
	})
}

func TestNormalizeNames(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{
			name:     "nil input",
			raw:      nil,
			expected: nil,
		},
		{
			name:     "repeated values",
			raw:      []string{"Campinas", "Santos"},
			expected: []string{"Campinas", "Santos"},
		},
		{
			name:     "comma separated list",
			raw:      []string{"Campinas,Santos"},
			expected: []string{"Campinas", "Santos"},
		},
		{
			name:     "mixed with whitespace",
			raw:      []string{" Campinas , Santos ", "Niteroi"},
			expected: []string{"Campinas", "Santos", "Niteroi"},
		},
		{
			name:     "empty parts are dropped",
			raw:      []string{",,", " "},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeNames(tt.raw))
		})
	}
}
