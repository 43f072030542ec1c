package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
)

type PitchRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPitchRepository(writerDB, readerDB *gorm.DB) *PitchRepository {
	return &PitchRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PitchRepository) Create(ctx context.Context, pitch *domain.Pitch) error {
	if !pitch.IsPro {
		pitch.BillingReference = nil
	}
	return r.writerDB.WithContext(ctx).Create(pitch).Error
}

func (r *PitchRepository) CreateWithinLimit(ctx context.Context, pitch *domain.Pitch, limit int64) (int64, error) {
	if !pitch.IsPro {
		pitch.BillingReference = nil
	}

	var count int64
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serializes concurrent generations of the same owner until commit.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", pitch.OwnerID).Error; err != nil {
			return fmt.Errorf("failed to lock owner: %w", err)
		}
		if err := tx.Model(&domain.Pitch{}).Where("owner = ?", pitch.OwnerID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count pitches: %w", err)
		}
		if count >= limit {
			return repository.ErrQuotaExceeded
		}
		return tx.Create(pitch).Error
	})
	if err != nil {
		return count, err
	}
	return count, nil
}

func (r *PitchRepository) GetByID(ctx context.Context, id int64) (*domain.Pitch, error) {
	var pitch domain.Pitch

	db, err := getOwnerScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.First(&pitch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pitch, nil
}

func (r *PitchRepository) List(ctx context.Context, filter domain.PitchFilter) ([]domain.Pitch, error) {
	var pitches []domain.Pitch

	db := r.readerDB.WithContext(ctx)
	if filter.OwnerID == "" {
		return nil, fmt.Errorf("owner is required")
	}
	db = db.Where("owner = ?", filter.OwnerID)

	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	db = db.Order("created_at DESC").Order("id DESC")

	if err := db.Find(&pitches).Error; err != nil {
		return nil, err
	}

	return pitches, nil
}

// CountByOwner and LatestByOwner feed quota and entitlement decisions, so
// they read from the writer.
func (r *PitchRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.writerDB.WithContext(ctx).
		Model(&domain.Pitch{}).
		Where("owner = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pitches: %w", err)
	}
	return count, nil
}

func (r *PitchRepository) LatestByOwner(ctx context.Context, ownerID string) (*domain.Pitch, error) {
	var pitch domain.Pitch
	err := r.writerDB.WithContext(ctx).
		Where("owner = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		First(&pitch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest pitch: %w", err)
	}
	return &pitch, nil
}

func (r *PitchRepository) UpdateEntitlementByOwner(ctx context.Context, ownerID string, ent domain.Entitlement) (int64, error) {
	return updateEntitlementByOwner(r.writerDB.WithContext(ctx), ownerID, ent)
}

func updateEntitlementByOwner(db *gorm.DB, ownerID string, ent domain.Entitlement) (int64, error) {
	ent = domain.NewEntitlement(ent.IsPro, ent.BillingReference)
	result := db.Model(&domain.Pitch{}).
		Where("owner = ?", ownerID).
		Updates(entitlementColumns(ent.IsPro, ent.BillingReference))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update pitch entitlement: %w", result.Error)
	}
	return result.RowsAffected, nil
}
