package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/barangay-poblacion/console/internal/domain"
	"github.com/barangay-poblacion/console/internal/infra/database/models"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get resolves the letterhead settings row together with the incumbent
// Punong Barangay resolved from the officials table.
func (r *SettingsRepository) Get(ctx context.Context) (domain.BarangaySettings, error) {
	var row models.BarangaySettings
	err := r.db.WithContext(ctx).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.BarangaySettings{}, domain.NotFoundError{Resource: "barangay settings"}
	}
	if err != nil {
		return domain.BarangaySettings{}, err
	}

	settings := domain.BarangaySettings{
		BarangayName:  row.BarangayName,
		Municipality:  row.Municipality,
		Province:      row.Province,
		Address:       row.Address,
		ContactNumber: row.ContactNumber,
		Email:         row.Email,
		CaptainName:   r.captainName(ctx),
	}
	return settings, nil
}

func (r *SettingsRepository) captainName(ctx context.Context) string {
	var name string
	err := r.db.WithContext(ctx).
		Model(&models.Official{}).
		Joins("JOIN residents ON residents.id = officials.resident_id").
		Where("officials.position = ? AND officials.status = ?", "Punong Barangay", "Active").
		Order("officials.term_start DESC").
		Limit(1).
		Select("residents.full_name").
		Scan(&name).Error
	if err != nil || name == "" {
		return domain.DefaultSettings().CaptainName
	}
	return name
}
