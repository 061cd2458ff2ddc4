package document

import (
	"strings"
	"testing"

	"github.com/barangay-poblacion/console/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func testSettings() domain.BarangaySettings {
	return domain.DefaultSettings()
}

func TestRenderClearance(t *testing.T) {
	cert := domain.Certificate{
		CertificateNo: "CERT-2025-123",
		Type:          domain.TypeBarangayClearance,
		ResidentName:  "Juan Dela Cruz",
		Purpose:       "employment",
		IssuedDate:    "2025-03-03",
		AmountPaid:    ptr(30),
	}
	view := Render(cert, testSettings())
	if view == nil {
		t.Fatal("expected a view")
	}
	if view.Title != "C L E A R A N C E" {
		t.Fatalf("unexpected title %q", view.Title)
	}
	joined := strings.Join(view.Paragraphs, " ")
	if !strings.Contains(joined, "Juan Dela Cruz") || !strings.Contains(joined, "employment") {
		t.Fatalf("missing interpolations: %s", joined)
	}
	// date decomposed into separate day numeral, month name, year
	if !strings.Contains(joined, "Issued this 3 day of March 2025") {
		t.Fatalf("date decomposition broken: %s", joined)
	}
	if view.FooterNotes[1] != "Amount paid: ₱30.00" {
		t.Fatalf("unexpected amount line %q", view.FooterNotes[1])
	}
}

func TestRenderIndigency(t *testing.T) {
	cert := domain.Certificate{
		CertificateNo: "CERT-2025-77",
		Type:          domain.TypeIndigency,
		ResidentName:  "Ana Lopez",
		ResidentAge:   ptr(28),
		Purpose:       "school requirements",
		IssuedDate:    "2025-06-15",
	}
	view := Render(cert, testSettings())
	if view == nil {
		t.Fatal("expected a view")
	}
	joined := strings.Join(view.Paragraphs, " ")
	for _, want := range []string{"Ana Lopez", "28", "school requirements"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in rendered body: %s", want, joined)
		}
	}
	if len(view.FooterNotes) != 1 || view.FooterNotes[0] != "Not valid without seal" {
		t.Fatalf("indigency must have no payment footer: %v", view.FooterNotes)
	}
}

func TestRenderResidencyWitnessPlaceholders(t *testing.T) {
	cert := domain.Certificate{
		Type:         domain.TypeResidency,
		ResidentName: "Maria Santos",
		ResidentAge:  ptr(41),
		Purpose:      "bank account opening",
		IssuedDate:   "2025-01-20",
		Kagawad1:     ptr("Pedro Ramos"),
	}
	view := Render(cert, testSettings())
	if view.Verification == nil || len(view.Verification.Lines) != 2 {
		t.Fatal("expected two witness lines")
	}
	if view.Verification.Lines[0].Name != "Pedro Ramos" {
		t.Fatalf("unexpected first witness %q", view.Verification.Lines[0].Name)
	}
	if !strings.HasPrefix(view.Verification.Lines[1].Name, "____") {
		t.Fatalf("expected blank placeholder for absent witness, got %q", view.Verification.Lines[1].Name)
	}
	// unset amount defaults to the standing fee on residency
	if view.FooterNotes[1] != "Amount paid: ₱30.00" {
		t.Fatalf("unexpected amount line %q", view.FooterNotes[1])
	}
}

func TestRenderBusinessPermitBlanks(t *testing.T) {
	cert := domain.Certificate{
		Type:         domain.TypeBusinessPermit,
		ResidentName: "Jose Rizal",
		Purpose:      "for business",
		IssuedDate:   "2025-11-21",
		BusinessType: ptr("Sari-sari Store"),
	}
	view := Render(cert, testSettings())
	if view.Subtitle != "(Business Permit)" {
		t.Fatalf("unexpected subtitle %q", view.Subtitle)
	}
	if view.ControlLine != "Control No. ________" {
		t.Fatalf("expected blank control line, got %q", view.ControlLine)
	}
	if !strings.Contains(view.Paragraphs[0], "Sari-sari Store") {
		t.Fatalf("business type missing: %s", view.Paragraphs[0])
	}
	// no default fee on business permits
	if view.FooterNotes[0] != "Amount paid: ₱______.00" {
		t.Fatalf("unexpected amount line %q", view.FooterNotes[0])
	}
}

func TestRenderUnknownTypeIsNil(t *testing.T) {
	cert := domain.Certificate{Type: "Mayors Permit", IssuedDate: "2025-01-01"}
	if view := Render(cert, testSettings()); view != nil {
		t.Fatalf("expected nil view for unknown type, got %+v", view)
	}
}

func TestRenderHTMLAndFingerprint(t *testing.T) {
	cert := domain.Certificate{
		CertificateNo: "CERT-2025-9001",
		Type:          domain.TypeBarangayClearance,
		ResidentName:  "Juan Dela Cruz",
		Purpose:       "travel",
		IssuedDate:    "2025-02-02",
	}
	view := Render(cert, testSettings())

	page, err := RenderHTML(view)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(string(page), "<title>CERT-2025-9001</title>") {
		t.Fatal("print page must be titled with the certificate number")
	}
	if !strings.Contains(string(page), "Juan Dela Cruz") {
		t.Fatal("resident name missing from print page")
	}

	fp := Fingerprint(view)
	if fp == "" || fp == Fingerprint(Render(domain.Certificate{
		CertificateNo: "CERT-2025-9002",
		Type:          domain.TypeBarangayClearance,
		ResidentName:  "Juan Dela Cruz",
		Purpose:       "travel",
		IssuedDate:    "2025-02-02",
	}, testSettings())) {
		t.Fatal("fingerprints must distinguish different certificates")
	}
	if fp != Fingerprint(Render(cert, testSettings())) {
		t.Fatal("fingerprint must be stable for the same certificate")
	}
}

func TestRenderHTMLNilView(t *testing.T) {
	if _, err := RenderHTML(nil); err == nil {
		t.Fatal("expected error for nil view")
	}
}
