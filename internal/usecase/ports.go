package usecase

import (
	"context"

	"github.com/barangay-poblacion/console/internal/domain"
)

// CertificateRepository defines persistence for issued certificates.
// Insert must return domain.ErrDuplicateNumber when the generated
// certificate number collides with an existing row.
type CertificateRepository interface {
	Insert(ctx context.Context, cert domain.Certificate) (domain.Certificate, error)
	List(ctx context.Context) ([]domain.Certificate, error)
	Get(ctx context.Context, id string) (domain.Certificate, error)
	Delete(ctx context.Context, id string) error
}

// ResidentRepository is the read-only view of the residents table this
// core consumes.
type ResidentRepository interface {
	List(ctx context.Context) ([]domain.Resident, error)
	Get(ctx context.Context, id string) (domain.Resident, error)
}

// SettingsRepository resolves the barangay letterhead settings.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.BarangaySettings, error)
}

// Invalidator drops a cached collection so the next read refetches.
type Invalidator interface {
	Invalidate(key string)
}

// Signaler fans a collection-changed event out to connected consoles.
type Signaler interface {
	Publish(ctx context.Context, event domain.Event)
}
