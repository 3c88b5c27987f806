package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/precipitation-dashboard/internal/domain"
	"github.com/precipitation-dashboard/internal/domain/repository"
	"github.com/precipitation-dashboard/internal/pkg/errors"
	"github.com/precipitation-dashboard/internal/usecase/dto"
)

// buildCriteria validates the raw filter parameters against the
// dataset's known value sets and assembles the domain criteria. All
// problems are collected so one response reports every rejected
// parameter; an unknown region or date is a validation error, never a
// silently empty view.
func buildCriteria(ctx context.Context, repo repository.DatasetRepository, q dto.FilterQuery) (domain.FilterCriteria, error) {
	var problems []string
	criteria := domain.FilterCriteria{}

	if q.UF != "" {
		if repo.HasUF(ctx, q.UF) {
			criteria.UF = q.UF
		} else {
			problems = append(problems, fmt.Sprintf("state '%s' not found", q.UF))
		}
	}

	if q.Date != "" {
		if repo.HasDate(ctx, q.Date) {
			criteria.Date = q.Date
		} else {
			problems = append(problems, fmt.Sprintf("date '%s' not found", q.Date))
		}
	}

	if q.MinPrecip != "" {
		if v, ok := parseBound(q.MinPrecip); ok {
			criteria.MinPrecip = &v
		} else {
			problems = append(problems, "min_precip must be a non-negative number")
		}
	}

	if q.MaxPrecip != "" {
		if v, ok := parseBound(q.MaxPrecip); ok {
			criteria.MaxPrecip = &v
		} else {
			problems = append(problems, "max_precip must be a non-negative number")
		}
	}

	criteria.Municipalities = normalizeNames(q.Municipalities)

	if len(problems) > 0 {
		return domain.FilterCriteria{}, errors.NewValidation(problems)
	}
	return criteria, nil
}

func parseBound(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// normalizeNames flattens repeated query values and comma-separated
// lists into one clean name set.
func normalizeNames(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	names := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
