package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/barangay-poblacion/console/internal/domain"
	"github.com/barangay-poblacion/console/internal/infra/database/models"
)

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) Insert(ctx context.Context, cert domain.Certificate) (domain.Certificate, error) {
	row := certToRow(cert)
	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// the only unique constraint besides the uuid pkey is certificate_no
		return domain.Certificate{}, domain.ErrDuplicateNumber
	}
	if err != nil {
		return domain.Certificate{}, err
	}
	return certToDomain(row), nil
}

func (r *CertificateRepository) List(ctx context.Context) ([]domain.Certificate, error) {
	var rows []models.Certificate
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	certs := make([]domain.Certificate, 0, len(rows))
	for _, row := range rows {
		certs = append(certs, certToDomain(row))
	}
	return certs, nil
}

func (r *CertificateRepository) Get(ctx context.Context, id string) (domain.Certificate, error) {
	var row models.Certificate
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Certificate{}, domain.NotFoundError{Resource: "certificate"}
	}
	if err != nil {
		return domain.Certificate{}, err
	}
	return certToDomain(row), nil
}

// Delete is a hard delete. Removing an id that no longer exists is a no-op.
func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Certificate{}, "id = ?", id).Error
}

func certToRow(cert domain.Certificate) models.Certificate {
	return models.Certificate{
		ID:            cert.ID,
		CertificateNo: cert.CertificateNo,
		Type:          string(cert.Type),
		ResidentID:    cert.ResidentID,
		ResidentName:  cert.ResidentName,
		ResidentAge:   cert.ResidentAge,
		Purpose:       cert.Purpose,
		IssuedDate:    parseDate(cert.IssuedDate),
		ValidUntil:    parseDatePtr(cert.ValidUntil),
		Status:        string(cert.Status),
		ControlNumber: cert.ControlNumber,
		AmountPaid:    cert.AmountPaid,
		BusinessType:  cert.BusinessType,
		Kagawad1:      cert.Kagawad1,
		Kagawad2:      cert.Kagawad2,
	}
}

func certToDomain(row models.Certificate) domain.Certificate {
	return domain.Certificate{
		ID:            row.ID,
		CertificateNo: row.CertificateNo,
		Type:          domain.CertificateType(row.Type),
		ResidentID:    row.ResidentID,
		ResidentName:  row.ResidentName,
		ResidentAge:   row.ResidentAge,
		Purpose:       row.Purpose,
		IssuedDate:    row.IssuedDate.Format(domain.DateLayout),
		ValidUntil:    formatDatePtr(row.ValidUntil),
		Status:        domain.CertificateStatus(row.Status),
		ControlNumber: row.ControlNumber,
		AmountPaid:    row.AmountPaid,
		BusinessType:  row.BusinessType,
		Kagawad1:      row.Kagawad1,
		Kagawad2:      row.Kagawad2,
		CreatedAt:     row.CreatedAt,
	}
}

func parseDate(s string) time.Time {
	date, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Now()
	}
	return date
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	date, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &date
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(domain.DateLayout)
	return &formatted
}
