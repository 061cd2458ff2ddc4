package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/barangay-poblacion/console/internal/domain"
	"github.com/barangay-poblacion/console/internal/metrics"
)

var tracer = otel.Tracer("usecase")

// maxNumberAttempts bounds the regenerate-on-collision loop. The suffix
// space is only 10000 values per year, so collisions are expected under
// sustained issuance and must not loop forever.
const maxNumberAttempts = 5

// GenerateInput is the validated input for issuing a certificate.
type GenerateInput struct {
	ResidentID string
	Purpose    string
	ValidUntil string
	Draft      domain.CertificateDraft
}

type CertificateUsecase struct {
	repo      CertificateRepository
	residents ResidentRepository
	cache     Invalidator
	signal    Signaler
	metrics   *metrics.Metrics
	gates     *GateSet

	now     func() time.Time
	randInt func(n int) int
	newID   func() string
}

func NewCertificateUsecase(
	repo CertificateRepository,
	residents ResidentRepository,
	cache Invalidator,
	signal Signaler,
	m *metrics.Metrics,
	newID func() string,
) *CertificateUsecase {
	return &CertificateUsecase{
		repo:      repo,
		residents: residents,
		cache:     cache,
		signal:    signal,
		metrics:   m,
		gates:     NewGateSet(),
		now:       time.Now,
		randInt:   rand.IntN,
		newID:     newID,
	}
}

// Generate validates the request, snapshots the resident, assigns a unique
// certificate number and persists exactly one row. sessionKey identifies the
// submitting console session; a second call while one is in flight for the
// same key fails with domain.ErrBusy.
func (uc *CertificateUsecase) Generate(ctx context.Context, sessionKey string, input GenerateInput) (domain.Certificate, error) {
	ctx, span := tracer.Start(ctx, "Certificate.Generate")
	defer span.End()

	if err := validate(input); err != nil {
		span.RecordError(err)
		return domain.Certificate{}, err
	}

	release, ok := uc.gates.TryAcquire(sessionKey)
	if !ok {
		return domain.Certificate{}, domain.ErrBusy
	}
	defer release()

	resident, err := uc.residents.Get(ctx, input.ResidentID)
	if err != nil {
		span.RecordError(err)
		return domain.Certificate{}, err
	}

	today := uc.now()
	age := resident.Age
	cert := domain.Certificate{
		ID:           uc.newID(),
		Type:         input.Draft.CertificateType(),
		ResidentID:   &resident.ID,
		ResidentName: resident.FullName,
		ResidentAge:  &age,
		Purpose:      strings.TrimSpace(input.Purpose),
		IssuedDate:   today.Format(domain.DateLayout),
		Status:       domain.StatusActive,
	}
	if input.ValidUntil != "" {
		until := input.ValidUntil
		cert.ValidUntil = &until
	}
	domain.Apply(input.Draft, &cert)

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		cert.CertificateNo = fmt.Sprintf("CERT-%d-%d", today.Year(), uc.randInt(10000))

		stored, err := uc.repo.Insert(ctx, cert)
		if errors.Is(err, domain.ErrDuplicateNumber) {
			uc.metrics.IncCollision()
			continue
		}
		if err != nil {
			span.RecordError(errors.Wrap(err, "certificate insert failed"))
			return domain.Certificate{}, errors.Wrap(err, "failed to generate certificate")
		}

		uc.metrics.IncIssued(string(stored.Type))
		uc.afterMutation(ctx, "created", stored.ID)
		return stored, nil
	}

	err = domain.ConflictError{Resource: "certificate number"}
	span.RecordError(err)
	return domain.Certificate{}, err
}

func validate(input GenerateInput) error {
	var missing []string
	if strings.TrimSpace(input.ResidentID) == "" {
		missing = append(missing, "resident")
	}
	if input.Draft == nil || !input.Draft.CertificateType().Known() {
		missing = append(missing, "certificate type")
	}
	if strings.TrimSpace(input.Purpose) == "" {
		missing = append(missing, "purpose")
	}
	if len(missing) > 0 {
		return domain.ValidationError{Missing: missing}
	}
	return nil
}

// List returns certificates newest-first with the effective status derived
// at read time. search filters by number, resident name or type.
func (uc *CertificateUsecase) List(ctx context.Context, search string) ([]domain.Certificate, error) {
	certs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	filtered := make([]domain.Certificate, 0, len(certs))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, cert := range certs {
		cert.Status = domain.DeriveStatus(cert, now)
		if needle != "" && !matches(cert, needle) {
			continue
		}
		filtered = append(filtered, cert)
	}
	return filtered, nil
}

func matches(cert domain.Certificate, needle string) bool {
	return strings.Contains(strings.ToLower(cert.CertificateNo), needle) ||
		strings.Contains(strings.ToLower(cert.ResidentName), needle) ||
		strings.Contains(strings.ToLower(string(cert.Type)), needle)
}

func (uc *CertificateUsecase) Get(ctx context.Context, id string) (domain.Certificate, error) {
	cert, err := uc.repo.Get(ctx, id)
	if err != nil {
		return domain.Certificate{}, err
	}
	cert.Status = domain.DeriveStatus(cert, uc.now())
	return cert, nil
}

// Delete hard-deletes by id. Deleting an id that is already gone is a no-op,
// matching the backend's behavior.
func (uc *CertificateUsecase) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Certificate.Delete")
	defer span.End()

	if err := uc.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete certificate")
	}

	uc.metrics.IncDeleted()
	uc.afterMutation(ctx, "deleted", id)
	return nil
}

func (uc *CertificateUsecase) afterMutation(ctx context.Context, action, id string) {
	if uc.cache != nil {
		uc.cache.Invalidate(domain.CollectionCertificates)
	}
	if uc.signal != nil {
		uc.signal.Publish(ctx, domain.Event{
			Collection: domain.CollectionCertificates,
			Action:     action,
			ID:         id,
			Timestamp:  uc.now(),
		})
	}
}
