package usecase

import (
	"context"
	"strings"

	"github.com/barangay-poblacion/console/internal/domain"
)

type ResidentUsecase struct {
	repo ResidentRepository
}

func NewResidentUsecase(repo ResidentRepository) *ResidentUsecase {
	return &ResidentUsecase{repo: repo}
}

// List serves the resident chooser. search filters by name or purok.
func (uc *ResidentUsecase) List(ctx context.Context, search string) ([]domain.Resident, error) {
	residents, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return residents, nil
	}

	filtered := make([]domain.Resident, 0, len(residents))
	for _, r := range residents {
		if strings.Contains(strings.ToLower(r.FullName), needle) ||
			strings.Contains(strings.ToLower(r.Purok), needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (uc *ResidentUsecase) Get(ctx context.Context, id string) (domain.Resident, error) {
	return uc.repo.Get(ctx, id)
}
