package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/barangay-poblacion/console/internal/domain"
	"github.com/barangay-poblacion/console/internal/infra/database/models"
)

type ResidentRepository struct {
	db *gorm.DB
}

func NewResidentRepository(db *gorm.DB) *ResidentRepository {
	return &ResidentRepository{db: db}
}

func (r *ResidentRepository) List(ctx context.Context) ([]domain.Resident, error) {
	var rows []models.Resident
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	residents := make([]domain.Resident, 0, len(rows))
	for _, row := range rows {
		residents = append(residents, residentToDomain(row))
	}
	return residents, nil
}

func (r *ResidentRepository) Get(ctx context.Context, id string) (domain.Resident, error) {
	var row models.Resident
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Resident{}, domain.NotFoundError{Resource: "resident"}
	}
	if err != nil {
		return domain.Resident{}, err
	}
	return residentToDomain(row), nil
}

func residentToDomain(row models.Resident) domain.Resident {
	return domain.Resident{
		ID:            row.ID,
		FullName:      row.FullName,
		Age:           row.Age,
		Gender:        row.Gender,
		Purok:         row.Purok,
		Status:        row.Status,
		SpecialStatus: row.SpecialStatus,
		HouseholdID:   row.HouseholdID,
	}
}
