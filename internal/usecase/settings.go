package usecase

import (
	"context"

	"github.com/pkg/errors"

	"github.com/barangay-poblacion/console/internal/domain"
)

type SettingsUsecase struct {
	repo SettingsRepository
}

func NewSettingsUsecase(repo SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{repo: repo}
}

// Get resolves the letterhead settings, falling back to the defaults when
// no settings row has been saved yet.
func (uc *SettingsUsecase) Get(ctx context.Context) (domain.BarangaySettings, error) {
	settings, err := uc.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.BarangaySettings{}, err
	}
	return settings, nil
}
