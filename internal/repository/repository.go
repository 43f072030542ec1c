package repository

import (
	"context"
	"errors"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

// ErrQuotaExceeded is returned by a guarded insert when the owner already
// holds the allowed number of pitches.
var ErrQuotaExceeded = errors.New("quota exceeded")

//go:generate mockery --name PitchRepository --output ../mocks
type PitchRepository interface {
	Create(ctx context.Context, pitch *domain.Pitch) error
	// CreateWithinLimit inserts only when the owner has fewer than limit
	// pitches, serialized per owner. It returns the count read before the
	// insert.
	CreateWithinLimit(ctx context.Context, pitch *domain.Pitch, limit int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Pitch, error)
	List(ctx context.Context, filter domain.PitchFilter) ([]domain.Pitch, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	LatestByOwner(ctx context.Context, ownerID string) (*domain.Pitch, error)
	UpdateEntitlementByOwner(ctx context.Context, ownerID string, ent domain.Entitlement) (int64, error)
}

//go:generate mockery --name EntitlementRepository --output ../mocks
type EntitlementRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*domain.EntitlementRecord, error)
	Upsert(ctx context.Context, record *domain.EntitlementRecord) error
	MarkCanceled(ctx context.Context, ownerID string) error
}

//go:generate mockery --name BillingEventRepository --output ../mocks
type BillingEventRepository interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	// ApplyCheckout upserts the owner's entitlement, flips every ledger row
	// of the owner and records the event in one transaction.
	ApplyCheckout(ctx context.Context, event domain.BillingEvent) (int64, error)
	// ApplyCancellation records the event and stamps the cancellation time
	// without changing the tier.
	ApplyCancellation(ctx context.Context, event domain.BillingEvent) error
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	Index(ctx context.Context, pitch *domain.Pitch) error
	BulkIndex(ctx context.Context, pitches []domain.Pitch) error
	Search(ctx context.Context, filter *domain.PitchFilter) ([]domain.Pitch, error)
	CreateIndex(ctx context.Context) error
}

type PostgresRepository interface {
	Pitch() PitchRepository
	Entitlement() EntitlementRepository
	BillingEvent() BillingEventRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
