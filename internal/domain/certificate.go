package domain

import (
	"time"
)

// DateLayout is the wire format for issued_date and valid_until.
const DateLayout = "2006-01-02"

type CertificateType string

const (
	TypeBarangayClearance CertificateType = "Barangay Clearance"
	TypeIndigency         CertificateType = "Certificate of Indigency"
	TypeResidency         CertificateType = "Certificate of Residency"
	TypeBusinessPermit    CertificateType = "Business Permit"
)

// Known reports whether t is one of the issuable certificate types.
func (t CertificateType) Known() bool {
	switch t {
	case TypeBarangayClearance, TypeIndigency, TypeResidency, TypeBusinessPermit:
		return true
	}
	return false
}

type CertificateStatus string

const (
	StatusActive  CertificateStatus = "Active"
	StatusExpired CertificateStatus = "Expired"
)

// Certificate is an issued legal document record. ResidentName and
// ResidentAge are snapshots taken at issuance time and are never
// re-synchronized with the resident row.
type Certificate struct {
	ID            string            `json:"id"`
	CertificateNo string            `json:"certificate_no"`
	Type          CertificateType   `json:"certificate_type"`
	ResidentID    *string           `json:"resident_id,omitempty"`
	ResidentName  string            `json:"resident_name"`
	ResidentAge   *int              `json:"resident_age,omitempty"`
	Purpose       string            `json:"purpose"`
	IssuedDate    string            `json:"issued_date"`
	ValidUntil    *string           `json:"valid_until,omitempty"`
	Status        CertificateStatus `json:"status"`
	ControlNumber *string           `json:"control_number,omitempty"`
	AmountPaid    *int              `json:"amount_paid,omitempty"`
	BusinessType  *string           `json:"business_type,omitempty"`
	Kagawad1      *string           `json:"verified_by_kagawad1,omitempty"`
	Kagawad2      *string           `json:"verified_by_kagawad2,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// DeriveStatus computes the effective lifecycle status at read time. A
// certificate past its valid-until date reads as Expired regardless of the
// stored flag; the stored flag is never written back.
func DeriveStatus(cert Certificate, now time.Time) CertificateStatus {
	if cert.ValidUntil == nil || *cert.ValidUntil == "" {
		return cert.Status
	}
	until, err := time.Parse(DateLayout, *cert.ValidUntil)
	if err != nil {
		return cert.Status
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if until.Before(today) {
		return StatusExpired
	}
	return cert.Status
}
