package models

import (
	"time"
)

// Certificate is an issued document row. resident_name/resident_age are
// denormalized on purpose: they snapshot the resident at issuance time.
type Certificate struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid"`
	CertificateNo string     `json:"certificate_no" gorm:"type:text;uniqueIndex;not null"`
	Type          string     `json:"certificate_type" gorm:"column:certificate_type;type:text;not null"`
	ResidentID    *string    `json:"resident_id" gorm:"type:uuid;index"`
	Resident      *Resident  `json:"-" gorm:"foreignKey:ResidentID;constraint:OnDelete:SET NULL;"`
	ResidentName  string     `json:"resident_name" gorm:"type:text;not null"`
	ResidentAge   *int       `json:"resident_age"`
	Purpose       string     `json:"purpose" gorm:"type:text;not null"`
	IssuedDate    time.Time  `json:"issued_date" gorm:"type:date;not null"`
	ValidUntil    *time.Time `json:"valid_until" gorm:"type:date"`
	Status        string     `json:"status" gorm:"type:text;not null;default:Active"`
	ControlNumber *string    `json:"control_number" gorm:"type:text"`
	AmountPaid    *int       `json:"amount_paid"`
	BusinessType  *string    `json:"business_type" gorm:"type:text"`
	Kagawad1      *string    `json:"verified_by_kagawad1" gorm:"column:verified_by_kagawad1;type:text"`
	Kagawad2      *string    `json:"verified_by_kagawad2" gorm:"column:verified_by_kagawad2;type:text"`
	CreatedAt     time.Time  `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}
