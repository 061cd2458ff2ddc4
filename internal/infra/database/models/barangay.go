package models

import (
	"time"
)

type BarangaySettings struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	BarangayName  string    `json:"barangay_name" gorm:"type:text;not null"`
	Municipality  string    `json:"municipality" gorm:"type:text;not null"`
	Province      string    `json:"province" gorm:"type:text;not null"`
	Address       *string   `json:"address" gorm:"type:text"`
	ContactNumber *string   `json:"contact_number" gorm:"type:text"`
	Email         *string   `json:"email" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

func (BarangaySettings) TableName() string { return "barangay_settings" }

type Ordinance struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid"`
	OrdinanceNo   string     `json:"ordinance_no" gorm:"type:text;not null"`
	Title         string     `json:"title" gorm:"type:text;not null"`
	Description   *string    `json:"description" gorm:"type:text"`
	Status        string     `json:"status" gorm:"type:text;not null;default:Active"`
	DateApproved  *time.Time `json:"date_approved" gorm:"type:date"`
	DateEffective *time.Time `json:"date_effective" gorm:"type:date"`
	CreatedAt     time.Time  `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Activity struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title        string    `json:"title" gorm:"type:text;not null"`
	Description  *string   `json:"description" gorm:"type:text"`
	ActivityDate time.Time `json:"activity_date" gorm:"type:date;not null"`
	Location     *string   `json:"location" gorm:"type:text"`
	Status       string    `json:"status" gorm:"type:text;not null;default:Upcoming"`
	CreatedAt    time.Time `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Report struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	ReportType  string    `json:"report_type" gorm:"type:text;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	ReportDate  time.Time `json:"report_date" gorm:"type:date;not null"`
	Status      string    `json:"status" gorm:"type:text;not null;default:Pending"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	FullName  *string   `json:"full_name" gorm:"type:text"`
	Email     *string   `json:"email" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type UserRole struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Role      string    `json:"role" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}
