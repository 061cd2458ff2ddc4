package document

import (
	"fmt"
	"time"

	"github.com/barangay-poblacion/console/internal/domain"
)

const (
	republicLine = "Republic of the Philippines"
	officeLine   = "OFFICE OF THE PUNONG BARANGAY"
	signerTitle  = "Punong Barangay"
	sealNote     = "Not valid without seal"

	blankControl = "________"
	blankName    = "_________________________"
	blankAmount  = "______"
	blankField   = "_______________"
	blankAge     = "____"
)

// Render maps an issued certificate to its legal document view. Pure and
// total over the four known types; unknown types render to nil.
func Render(cert domain.Certificate, settings domain.BarangaySettings) *DocumentView {
	day, month, year := dateParts(cert.IssuedDate)
	place := fmt.Sprintf("Barangay %s, %s, %s", settings.BarangayName, settings.Municipality, settings.Province)

	view := &DocumentView{
		Number: cert.CertificateNo,
		Letterhead: []string{
			republicLine,
			"Province of " + settings.Province,
			"Municipality of " + settings.Municipality,
			"Barangay " + settings.BarangayName,
		},
		OfficeLine:  officeLine,
		SignerName:  settings.CaptainName,
		SignerTitle: signerTitle,
	}

	switch cert.Type {
	case domain.TypeBarangayClearance:
		view.Title = "C L E A R A N C E"
		view.Salutation = "To Whom It May Concern:"
		view.Paragraphs = []string{
			fmt.Sprintf("This is to certify that %s, of legal age, a bona fide resident of %s is known to be a person of good moral character and a law-abiding citizen in this barangay.", cert.ResidentName, place),
			"Certifies further that he/she has never been accused or convicted of any crime whatsoever or has violated any barangay ordinance promulgated by competent authority and the Barangay Council.",
			fmt.Sprintf("This clearance is being issued upon request of the interested party for all legal intents and %s purpose.", cert.Purpose),
			fmt.Sprintf("Issued this %d day of %s %d at %s.", day, month, year, place),
		}
		view.FooterNotes = []string{sealNote, amountLine(cert.AmountPaid, true)}

	case domain.TypeIndigency:
		view.Title = "CERTIFICATE OF INDIGENCY"
		view.Salutation = "To Whom It May Concern:"
		view.Paragraphs = []string{
			fmt.Sprintf("This is to certify that %s, %s years of age, is a bonafide resident of %s.", cert.ResidentName, ageText(cert.ResidentAge), place),
			"This is to further certify that the above-named individual belongs to an indigent family in the barangay.",
			fmt.Sprintf("This certification is issued upon the request of the interested party for all legal intents and %s purpose.", cert.Purpose),
			fmt.Sprintf("Given this %d day of %s, %d at %s.", day, month, year, place),
		}
		view.FooterNotes = []string{sealNote}

	case domain.TypeResidency:
		view.Title = "CERTIFICATE OF RESIDENCY"
		view.Salutation = "To Whom It May Concern:"
		view.Paragraphs = []string{
			fmt.Sprintf("This is to certify that %s, %s years of age, is a bonafide resident of %s.", cert.ResidentName, ageText(cert.ResidentAge), place),
			fmt.Sprintf("This certification is issued upon the request of the interested party for all legal intents and %s purpose/s.", cert.Purpose),
			fmt.Sprintf("Given this %d day of %s %d at %s.", day, month, year, place),
		}
		view.Verification = &VerificationBlock{
			Heading: "Verified by:",
			Lines: []SignatureLine{
				{Name: orBlank(cert.Kagawad1, blankName), Role: "Barangay Kagawad"},
				{Name: orBlank(cert.Kagawad2, blankName), Role: "Barangay Kagawad"},
			},
		}
		view.ApprovedHeading = "Approved by:"
		view.FooterNotes = []string{sealNote, amountLine(cert.AmountPaid, true)}

	case domain.TypeBusinessPermit:
		view.Title = "C E R T I F I C A T I O N"
		view.Subtitle = "(Business Permit)"
		view.ControlLine = "Control No. " + orBlank(cert.ControlNumber, blankControl)
		view.Salutation = "TO WHOM IT MAY CONCERN:"
		view.Paragraphs = []string{
			fmt.Sprintf("This is to certify that %s, of legal age, a resident of %s operates a %s in %s, %s, %s.", cert.ResidentName, place, orBlank(cert.BusinessType, blankField), settings.BarangayName, settings.Municipality, settings.Province),
			fmt.Sprintf("This certification is being issued upon the request of the aforementioned for the application of Business Permit from the Local Government Unit of %s, %s.", settings.Municipality, settings.Province),
			fmt.Sprintf("Issued this %d day of %s %d at %s, Philippines.", day, month, year, place),
		}
		view.FooterNotes = []string{amountLine(cert.AmountPaid, false)}

	default:
		return nil
	}

	return view
}

// dateParts decomposes an issued date into the day numeral, full month name
// and year that the legal prose interpolates separately.
func dateParts(issued string) (int, string, int) {
	date, err := time.Parse(domain.DateLayout, issued)
	if err != nil {
		date = time.Now()
	}
	return date.Day(), date.Month().String(), date.Year()
}

func amountLine(amount *int, defaulted bool) string {
	if amount == nil {
		if defaulted {
			return fmt.Sprintf("Amount paid: ₱%d.00", domain.DefaultAmountPaid)
		}
		return fmt.Sprintf("Amount paid: ₱%s.00", blankAmount)
	}
	return fmt.Sprintf("Amount paid: ₱%d.00", *amount)
}

func ageText(age *int) string {
	if age == nil {
		return blankAge
	}
	return fmt.Sprintf("%d", *age)
}

func orBlank(s *string, blank string) string {
	if s == nil || *s == "" {
		return blank
	}
	return *s
}
