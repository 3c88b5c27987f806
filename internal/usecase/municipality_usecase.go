package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/precipitation-dashboard/internal/domain/repository"
	"github.com/precipitation-dashboard/internal/pkg/errors"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// maxSuggestions caps the autocomplete result size.
const maxSuggestions = 50

// MunicipalityUseCase serves autocomplete suggestions over municipality
// names.
type MunicipalityUseCase struct {
	datasetRepo repository.DatasetRepository
	logger      *zap.Logger
}

// NewMunicipalityUseCase creates a new MunicipalityUseCase.
func NewMunicipalityUseCase(datasetRepo repository.DatasetRepository, logger *zap.Logger) *MunicipalityUseCase {
	return &MunicipalityUseCase{
		datasetRepo: datasetRepo,
		logger:      logger,
	}
}

// Suggest returns municipality names matching the query substring
// (case-insensitive) within the optional region scope. The result is
// deduplicated, sorted and truncated to 50 entries.
func (uc *MunicipalityUseCase) Suggest(ctx context.Context, q dto.SuggestQuery) ([]string, error) {
	if q.UF != "" && !uc.datasetRepo.HasUF(ctx, q.UF) {
		return nil, errors.NewValidation([]string{fmt.Sprintf("state '%s' not found", q.UF)})
	}

	needle := strings.ToLower(strings.TrimSpace(q.Query))
	seen := make(map[string]struct{})

	records := uc.datasetRepo.Records(ctx)
	for i := range records {
		r := &records[i]
		if q.UF != "" && r.UF != q.UF {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Municipality), needle) {
			continue
		}
		seen[r.Municipality] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}
	return names, nil
}
