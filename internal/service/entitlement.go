package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
)

type EntitlementService struct {
	repo repository.Repository
}

func NewEntitlementService(repo repository.Repository) *EntitlementService {
	return &EntitlementService{repo: repo}
}

// Resolve returns the owner's current entitlement. The entitlement record
// written by billing wins; without one the latest ledger row decides, and an
// owner with neither is free. Storage faults are returned as
// ErrStorageUnavailable rather than defaulting to free.
func (s *EntitlementService) Resolve(ctx context.Context, ownerID string) (domain.Entitlement, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.FreeEntitlement(), ErrAuthenticationRequired
	}

	record, err := s.repo.Entitlement().GetByOwner(ctx, ownerID)
	if err != nil {
		return domain.FreeEntitlement(), fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if record != nil {
		return record.Entitlement(), nil
	}

	latest, err := s.repo.Pitch().LatestByOwner(ctx, ownerID)
	if err != nil {
		return domain.FreeEntitlement(), fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if latest == nil {
		return domain.FreeEntitlement(), nil
	}
	return latest.Entitlement(), nil
}
