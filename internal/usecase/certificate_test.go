package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/barangay-poblacion/console/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// --- mocks ---

type mockCertRepo struct {
	inserted []domain.Certificate
	numbers  map[string]bool
	deleted  []string
	failWith error
}

func newMockCertRepo() *mockCertRepo {
	return &mockCertRepo{numbers: map[string]bool{}}
}

func (m *mockCertRepo) Insert(ctx context.Context, cert domain.Certificate) (domain.Certificate, error) {
	if m.failWith != nil {
		return domain.Certificate{}, m.failWith
	}
	if m.numbers[cert.CertificateNo] {
		return domain.Certificate{}, domain.ErrDuplicateNumber
	}
	m.numbers[cert.CertificateNo] = true
	cert.CreatedAt = time.Now()
	m.inserted = append(m.inserted, cert)
	return cert, nil
}

func (m *mockCertRepo) List(ctx context.Context) ([]domain.Certificate, error) {
	return m.inserted, nil
}

func (m *mockCertRepo) Get(ctx context.Context, id string) (domain.Certificate, error) {
	for _, c := range m.inserted {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Certificate{}, domain.NotFoundError{Resource: "certificate"}
}

func (m *mockCertRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockResidentRepo struct {
	residents map[string]domain.Resident
}

func (m *mockResidentRepo) List(ctx context.Context) ([]domain.Resident, error) {
	out := make([]domain.Resident, 0, len(m.residents))
	for _, r := range m.residents {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockResidentRepo) Get(ctx context.Context, id string) (domain.Resident, error) {
	r, ok := m.residents[id]
	if !ok {
		return domain.Resident{}, domain.NotFoundError{Resource: "resident"}
	}
	return r, nil
}

type mockInvalidator struct {
	keys []string
}

func (m *mockInvalidator) Invalidate(key string) { m.keys = append(m.keys, key) }

type mockSignaler struct {
	events []domain.Event
}

func (m *mockSignaler) Publish(ctx context.Context, ev domain.Event) {
	m.events = append(m.events, ev)
}

func newTestUsecase(repo *mockCertRepo, residents *mockResidentRepo) (*CertificateUsecase, *mockInvalidator, *mockSignaler) {
	inv := &mockInvalidator{}
	sig := &mockSignaler{}
	id := 0
	uc := NewCertificateUsecase(repo, residents, inv, sig, nil, func() string {
		id++
		return "id-" + string(rune('a'+id))
	})
	uc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return uc, inv, sig
}

func anaLopez() *mockResidentRepo {
	return &mockResidentRepo{residents: map[string]domain.Resident{
		"R1": {ID: "R1", FullName: "Ana Lopez", Age: 28, Gender: "Female", Purok: "Purok 2"},
	}}
}

// --- tests ---

func TestGenerateIndigencyEndToEnd(t *testing.T) {
	repo := newMockCertRepo()
	uc, inv, sig := newTestUsecase(repo, anaLopez())

	cert, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R1",
		Purpose:    "school requirements",
		Draft:      domain.IndigencyDraft{},
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !regexp.MustCompile(`^CERT-\d{4}-\d{1,4}$`).MatchString(cert.CertificateNo) {
		t.Fatalf("bad certificate number %q", cert.CertificateNo)
	}
	if cert.Status != domain.StatusActive {
		t.Fatalf("expected Active, got %s", cert.Status)
	}
	if cert.IssuedDate != "2025-06-15" {
		t.Fatalf("expected today's issue date, got %s", cert.IssuedDate)
	}
	if cert.ResidentName != "Ana Lopez" || cert.ResidentAge == nil || *cert.ResidentAge != 28 {
		t.Fatalf("snapshot wrong: %s / %v", cert.ResidentName, cert.ResidentAge)
	}
	if cert.AmountPaid != nil {
		t.Fatalf("indigency must carry no fee, got %d", *cert.AmountPaid)
	}
	if len(inv.keys) != 1 || inv.keys[0] != domain.CollectionCertificates {
		t.Fatalf("expected certificate cache invalidation, got %v", inv.keys)
	}
	if len(sig.events) != 1 || sig.events[0].Action != "created" {
		t.Fatalf("expected created event, got %v", sig.events)
	}
}

func TestGenerateValidationGate(t *testing.T) {
	repo := newMockCertRepo()
	uc, _, _ := newTestUsecase(repo, anaLopez())

	_, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R1",
		Purpose:    "",
		Draft:      domain.ClearanceDraft{},
	})

	var verr domain.ValidationError
	if !asValidation(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Missing) != 1 || verr.Missing[0] != "purpose" {
		t.Fatalf("expected purpose to be named, got %v", verr.Missing)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("validation failure must not reach the repository")
	}
}

func TestGenerateValidationNamesAllMissing(t *testing.T) {
	uc, _, _ := newTestUsecase(newMockCertRepo(), anaLopez())

	_, err := uc.Generate(context.Background(), "s1", GenerateInput{})
	var verr domain.ValidationError
	if !asValidation(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Missing) != 3 {
		t.Fatalf("expected resident, type and purpose to be named, got %v", verr.Missing)
	}
}

func TestGenerateUnknownResident(t *testing.T) {
	uc, _, _ := newTestUsecase(newMockCertRepo(), anaLopez())

	_, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R999",
		Purpose:    "anything",
		Draft:      domain.IndigencyDraft{},
	})
	if !isNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGenerateRetriesNumberCollisions(t *testing.T) {
	repo := newMockCertRepo()
	uc, _, _ := newTestUsecase(repo, anaLopez())

	// pre-claim the numbers the first two attempts will produce
	rolls := []int{7, 7, 42}
	i := 0
	uc.randInt = func(n int) int { v := rolls[i%len(rolls)]; i++; return v }
	repo.numbers["CERT-2025-7"] = true

	cert, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R1",
		Purpose:    "travel",
		Draft:      domain.ClearanceDraft{},
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if cert.CertificateNo != "CERT-2025-42" {
		t.Fatalf("expected retry to land on CERT-2025-42, got %s", cert.CertificateNo)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	repo := newMockCertRepo()
	uc, _, _ := newTestUsecase(repo, anaLopez())

	uc.randInt = func(n int) int { return 7 }
	repo.numbers["CERT-2025-7"] = true

	_, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R1",
		Purpose:    "travel",
		Draft:      domain.ClearanceDraft{},
	})
	var cerr domain.ConflictError
	if !asConflict(err, &cerr) {
		t.Fatalf("expected ConflictError after exhausted retries, got %v", err)
	}
}

func TestGenerateSequentialNumbersDistinct(t *testing.T) {
	repo := newMockCertRepo()
	uc, _, _ := newTestUsecase(repo, anaLopez())

	seen := map[string]bool{}
	for n := 0; n < 200; n++ {
		cert, err := uc.Generate(context.Background(), "s1", GenerateInput{
			ResidentID: "R1",
			Purpose:    "load",
			Draft:      domain.IndigencyDraft{},
		})
		if err != nil {
			t.Fatalf("generation %d failed: %v", n, err)
		}
		if seen[cert.CertificateNo] {
			t.Fatalf("duplicate number issued: %s", cert.CertificateNo)
		}
		seen[cert.CertificateNo] = true
	}
}

func TestSnapshotImmutability(t *testing.T) {
	repo := newMockCertRepo()
	residents := anaLopez()
	uc, _, _ := newTestUsecase(repo, residents)

	cert, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R1",
		Purpose:    "school requirements",
		Draft:      domain.IndigencyDraft{},
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// resident ages a year after issuance
	aged := residents.residents["R1"]
	aged.Age = 29
	residents.residents["R1"] = aged

	stored, err := uc.Get(context.Background(), cert.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ResidentAge == nil || *stored.ResidentAge != 28 {
		t.Fatalf("snapshot drifted: %v", stored.ResidentAge)
	}
}

func TestGenerateBusinessPermitFieldPropagation(t *testing.T) {
	repo := newMockCertRepo()
	uc, _, _ := newTestUsecase(repo, anaLopez())

	cert, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R1",
		Purpose:    "for business",
		Draft:      domain.BusinessPermitDraft{BusinessType: "Sari-sari Store"},
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if cert.BusinessType == nil || *cert.BusinessType != "Sari-sari Store" {
		t.Fatalf("business type lost: %v", cert.BusinessType)
	}
	if cert.ControlNumber != nil {
		t.Fatalf("expected nil control number, got %q", *cert.ControlNumber)
	}
	if cert.AmountPaid != nil {
		t.Fatalf("business permit must not default the fee, got %d", *cert.AmountPaid)
	}
}

func TestGenerateClearanceDefaultsFee(t *testing.T) {
	repo := newMockCertRepo()
	uc, _, _ := newTestUsecase(repo, anaLopez())

	cert, err := uc.Generate(context.Background(), "s1", GenerateInput{
		ResidentID: "R1",
		Purpose:    "employment",
		Draft:      domain.ClearanceDraft{},
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if cert.AmountPaid == nil || *cert.AmountPaid != 30 {
		t.Fatalf("expected default fee 30, got %v", cert.AmountPaid)
	}
}

func TestListDerivesStatusAndFilters(t *testing.T) {
	repo := newMockCertRepo()
	uc, _, _ := newTestUsecase(repo, anaLopez())

	repo.inserted = []domain.Certificate{
		{ID: "1", CertificateNo: "CERT-2025-1", Type: domain.TypeIndigency, ResidentName: "Ana Lopez", Status: domain.StatusActive, ValidUntil: ptr("2025-01-01")},
		{ID: "2", CertificateNo: "CERT-2025-2", Type: domain.TypeResidency, ResidentName: "Pedro Ramos", Status: domain.StatusActive},
	}

	all, err := uc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if all[0].Status != domain.StatusExpired {
		t.Fatalf("expected derived Expired for past valid_until, got %s", all[0].Status)
	}
	if all[1].Status != domain.StatusActive {
		t.Fatalf("expected Active, got %s", all[1].Status)
	}

	hits, err := uc.List(context.Background(), "pedro")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "2" {
		t.Fatalf("search miss: %v", hits)
	}
}

func TestDeleteInvalidatesAndSignals(t *testing.T) {
	repo := newMockCertRepo()
	uc, inv, sig := newTestUsecase(repo, anaLopez())

	if err := uc.Delete(context.Background(), "some-id"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "some-id" {
		t.Fatalf("delete not forwarded: %v", repo.deleted)
	}
	if len(inv.keys) != 1 {
		t.Fatalf("expected cache invalidation, got %v", inv.keys)
	}
	if len(sig.events) != 1 || sig.events[0].Action != "deleted" {
		t.Fatalf("expected deleted event, got %v", sig.events)
	}
}

// helpers for errors.As without importing errors twice in assertions
func asValidation(err error, target *domain.ValidationError) bool {
	v, ok := err.(domain.ValidationError)
	if ok {
		*target = v
	}
	return ok
}

func asConflict(err error, target *domain.ConflictError) bool {
	v, ok := err.(domain.ConflictError)
	if ok {
		*target = v
	}
	return ok
}

func isNotFound(err error) bool {
	_, ok := err.(domain.NotFoundError)
	return ok
}
