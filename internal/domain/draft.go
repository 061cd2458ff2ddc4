package domain

// DefaultAmountPaid is the standing fee applied to Barangay Clearance and
// Certificate of Residency when no amount is supplied.
const DefaultAmountPaid = 30

// CertificateDraft carries the type-specific fields of a generation request.
// Each variant holds only the fields its certificate type uses, so a field
// sent for the wrong type cannot silently leak into the stored row.
type CertificateDraft interface {
	CertificateType() CertificateType
	apply(cert *Certificate)
}

type ClearanceDraft struct {
	AmountPaid *int `json:"amount_paid,omitempty"`
}

func (d ClearanceDraft) CertificateType() CertificateType { return TypeBarangayClearance }

func (d ClearanceDraft) apply(cert *Certificate) {
	cert.AmountPaid = defaultAmount(d.AmountPaid)
}

type IndigencyDraft struct{}

func (d IndigencyDraft) CertificateType() CertificateType { return TypeIndigency }

func (d IndigencyDraft) apply(cert *Certificate) {}

type ResidencyDraft struct {
	Kagawad1   string `json:"verified_by_kagawad1,omitempty"`
	Kagawad2   string `json:"verified_by_kagawad2,omitempty"`
	AmountPaid *int   `json:"amount_paid,omitempty"`
}

func (d ResidencyDraft) CertificateType() CertificateType { return TypeResidency }

func (d ResidencyDraft) apply(cert *Certificate) {
	cert.Kagawad1 = optional(d.Kagawad1)
	cert.Kagawad2 = optional(d.Kagawad2)
	cert.AmountPaid = defaultAmount(d.AmountPaid)
}

type BusinessPermitDraft struct {
	BusinessType  string `json:"business_type,omitempty"`
	ControlNumber string `json:"control_number,omitempty"`
	AmountPaid    *int   `json:"amount_paid,omitempty"`
}

func (d BusinessPermitDraft) CertificateType() CertificateType { return TypeBusinessPermit }

func (d BusinessPermitDraft) apply(cert *Certificate) {
	cert.BusinessType = optional(d.BusinessType)
	cert.ControlNumber = optional(d.ControlNumber)
	// no default fee: the permit template renders a blank placeholder
	cert.AmountPaid = d.AmountPaid
}

// Apply stamps the draft's fields onto the certificate being assembled.
func Apply(draft CertificateDraft, cert *Certificate) {
	draft.apply(cert)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func defaultAmount(amount *int) *int {
	if amount != nil {
		return amount
	}
	def := DefaultAmountPaid
	return &def
}
