package service

import (
	"context"
	"fmt"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
)

type AccountService struct {
	repo         repository.Repository
	entitlements *EntitlementService
	quota        QuotaPolicy
}

func NewAccountService(repo repository.Repository, freeLimit int64) *AccountService {
	return &AccountService{
		repo:         repo,
		entitlements: NewEntitlementService(repo),
		quota:        NewQuotaPolicy(freeLimit),
	}
}

func (s *AccountService) GetStatus(ctx context.Context, ownerID string) (*domain.AccountStatus, error) {
	if ownerID == "" {
		return nil, ErrAuthenticationRequired
	}
	ent, err := s.entitlements.Resolve(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	usage, err := s.repo.Pitch().CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	status := &domain.AccountStatus{
		OwnerID:          ownerID,
		Plan:             ent.Plan(),
		IsPro:            ent.IsPro,
		BillingReference: ent.BillingReference,
		UsageCount:       usage,
		Limit:            s.quota.Limit(),
	}
	if !ent.IsPro {
		remaining := s.quota.Check(false, usage).Remaining
		status.Remaining = &remaining
	}
	return status, nil
}
