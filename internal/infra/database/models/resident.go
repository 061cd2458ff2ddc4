package models

import (
	"time"
)

type Resident struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid"`
	FullName      string     `json:"full_name" gorm:"type:text;not null;index"`
	Age           int        `json:"age" gorm:"not null"`
	Gender        string     `json:"gender" gorm:"type:text;not null"`
	Purok         string     `json:"purok" gorm:"type:text;not null"`
	Status        string     `json:"status" gorm:"type:text;not null;default:Active"`
	SpecialStatus *string    `json:"special_status" gorm:"type:text"`
	HouseholdID   *string    `json:"household_id" gorm:"type:uuid;index"`
	Household     *Household `json:"-" gorm:"foreignKey:HouseholdID;constraint:OnDelete:SET NULL;"`
	CreatedAt     time.Time  `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Household struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	HouseNumber    string    `json:"house_number" gorm:"type:text;not null"`
	Purok          *string   `json:"purok" gorm:"type:text"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	HasElectricity *bool     `json:"has_electricity"`
	HasWater       *bool     `json:"has_water"`
	CreatedAt      time.Time `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Official struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	ResidentID string     `json:"resident_id" gorm:"type:uuid;not null;index"`
	Resident   *Resident  `json:"-" gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE;"`
	Position   string     `json:"position" gorm:"type:text;not null"`
	Status     string     `json:"status" gorm:"type:text;not null;default:Active"`
	TermStart  time.Time  `json:"term_start" gorm:"type:date;not null"`
	TermEnd    *time.Time `json:"term_end" gorm:"type:date"`
	CreatedAt  time.Time  `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}
