package cache

import (
	"context"

	"github.com/barangay-poblacion/console/internal/domain"
	"github.com/barangay-poblacion/console/internal/usecase"
)

// Certificates decorates a certificate repository with a cached List.
// Mutations pass straight through; the usecase invalidates after each one.
type Certificates struct {
	store *Store
	repo  usecase.CertificateRepository
}

func NewCertificates(store *Store, repo usecase.CertificateRepository) *Certificates {
	return &Certificates{store: store, repo: repo}
}

func (c *Certificates) Insert(ctx context.Context, cert domain.Certificate) (domain.Certificate, error) {
	return c.repo.Insert(ctx, cert)
}

func (c *Certificates) List(ctx context.Context) ([]domain.Certificate, error) {
	return Fetch(ctx, c.store, domain.CollectionCertificates, c.repo.List)
}

func (c *Certificates) Get(ctx context.Context, id string) (domain.Certificate, error) {
	return c.repo.Get(ctx, id)
}

func (c *Certificates) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}

// Residents decorates the resident read path with a cached List.
type Residents struct {
	store *Store
	repo  usecase.ResidentRepository
}

func NewResidents(store *Store, repo usecase.ResidentRepository) *Residents {
	return &Residents{store: store, repo: repo}
}

func (r *Residents) List(ctx context.Context) ([]domain.Resident, error) {
	return Fetch(ctx, r.store, domain.CollectionResidents, r.repo.List)
}

func (r *Residents) Get(ctx context.Context, id string) (domain.Resident, error) {
	return r.repo.Get(ctx, id)
}
