package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

type EntitlementRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewEntitlementRepository(writerDB, readerDB *gorm.DB) *EntitlementRepository {
	return &EntitlementRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *EntitlementRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.EntitlementRecord, error) {
	var record domain.EntitlementRecord
	err := r.writerDB.WithContext(ctx).First(&record, "owner = ?", ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}
	return &record, nil
}

func (r *EntitlementRepository) Upsert(ctx context.Context, record *domain.EntitlementRecord) error {
	return upsertEntitlement(r.writerDB.WithContext(ctx), record)
}

func (r *EntitlementRepository) MarkCanceled(ctx context.Context, ownerID string) error {
	return markEntitlementCanceled(r.writerDB.WithContext(ctx), ownerID, time.Now().UTC())
}

func upsertEntitlement(db *gorm.DB, record *domain.EntitlementRecord) error {
	if !record.IsPro {
		record.BillingReference = nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_pro", "billing_reference", "canceled_at", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert entitlement: %w", err)
	}
	return nil
}

func markEntitlementCanceled(db *gorm.DB, ownerID string, at time.Time) error {
	err := db.Model(&domain.EntitlementRecord{}).
		Where("owner = ?", ownerID).
		Updates(map[string]any{"canceled_at": at, "updated_at": at}).Error
	if err != nil {
		return fmt.Errorf("failed to mark entitlement canceled: %w", err)
	}
	return nil
}
