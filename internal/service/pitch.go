package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type PitchService struct {
	repo   repository.Repository
	sqsSvc SQSService
	quota  QuotaPolicy
}

func NewPitchService(repo repository.Repository, sqsSvc SQSService, freeLimit int64) *PitchService {
	return &PitchService{
		repo:   repo,
		sqsSvc: sqsSvc,
		quota:  NewQuotaPolicy(freeLimit),
	}
}

// List returns the owner's pitches, newest first.
func (s *PitchService) List(ctx context.Context, filter *domain.PitchFilter) ([]domain.Pitch, error) {
	if filter.OwnerID == "" {
		return nil, ErrAuthenticationRequired
	}
	normalizePage(filter)

	pitches, err := s.repo.Pitch().List(ctx, *filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return pitches, nil
}

// All pages through the owner's whole history within the filter's time
// bounds, newest first.
func (s *PitchService) All(ctx context.Context, filter domain.PitchFilter) ([]domain.Pitch, error) {
	if filter.OwnerID == "" {
		return nil, ErrAuthenticationRequired
	}

	var all []domain.Pitch
	filter.PageSize = maxPageSize
	for page := 1; ; page++ {
		filter.Page = page
		normalizePage(&filter)

		pitches, err := s.repo.Pitch().List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		all = append(all, pitches...)
		if len(pitches) < filter.PageSize {
			return all, nil
		}
	}
}

// Latest returns nil when the owner has no pitches.
func (s *PitchService) Latest(ctx context.Context, ownerID string) (*domain.Pitch, error) {
	if ownerID == "" {
		return nil, ErrAuthenticationRequired
	}
	pitch, err := s.repo.Pitch().LatestByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return pitch, nil
}

// GetByID is scoped to the owner on ctx; another owner's id is not found.
func (s *PitchService) GetByID(ctx context.Context, ownerID string, id int64) (*domain.Pitch, error) {
	if ownerID == "" {
		return nil, ErrAuthenticationRequired
	}
	pitch, err := s.repo.Pitch().GetByID(utils.WithOwnerID(ctx, ownerID), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPitchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return pitch, nil
}

func (s *PitchService) Count(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, ErrAuthenticationRequired
	}
	count, err := s.repo.Pitch().CountByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return count, nil
}

// Search runs a full text query over the owner's indexed history. An empty
// query falls back to the database listing.
func (s *PitchService) Search(ctx context.Context, filter *domain.PitchFilter) ([]domain.Pitch, error) {
	if filter.OwnerID == "" {
		return nil, ErrAuthenticationRequired
	}
	if strings.TrimSpace(filter.Query) == "" {
		return s.List(ctx, filter)
	}
	normalizePage(filter)
	return s.repo.Search().Search(ctx, filter)
}

// ScheduleExport queues an S3 export of the owner's history and returns the
// job id.
func (s *PitchService) ScheduleExport(ctx context.Context, ownerID, format string) (string, error) {
	if ownerID == "" {
		return "", ErrAuthenticationRequired
	}
	format, err := ParseExportFormat(format)
	if err != nil {
		return "", err
	}
	return s.sqsSvc.SendExportMessage(ctx, ownerID, format)
}

func normalizePage(filter *domain.PitchFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize
}
