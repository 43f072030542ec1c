package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

type BillingEventRepository struct {
	writerDB *gorm.DB
}

func NewBillingEventRepository(writerDB *gorm.DB) *BillingEventRepository {
	return &BillingEventRepository{writerDB: writerDB}
}

func (r *BillingEventRepository) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, nil
	}
	var count int64
	err := r.writerDB.WithContext(ctx).
		Model(&domain.ProcessedBillingEvent{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check billing event: %w", err)
	}
	return count > 0, nil
}

func (r *BillingEventRepository) ApplyCheckout(ctx context.Context, event domain.BillingEvent) (int64, error) {
	ref := event.BillingReference
	ent := domain.NewEntitlement(true, &ref)

	var updated int64
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if err := upsertEntitlement(tx, &domain.EntitlementRecord{
			OwnerID:          event.OwnerID,
			IsPro:            ent.IsPro,
			BillingReference: ent.BillingReference,
			CreatedAt:        now,
			UpdatedAt:        now,
		}); err != nil {
			return err
		}

		rows, err := updateEntitlementByOwner(tx, event.OwnerID, ent)
		if err != nil {
			return err
		}
		updated = rows

		return recordEvent(tx, event)
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (r *BillingEventRepository) ApplyCancellation(ctx context.Context, event domain.BillingEvent) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := markEntitlementCanceled(tx, event.OwnerID, time.Now().UTC()); err != nil {
			return err
		}
		return recordEvent(tx, event)
	})
}

// recordEvent is a no-op for events without a provider id.
func recordEvent(db *gorm.DB, event domain.BillingEvent) error {
	if event.ID == "" {
		return nil
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&domain.ProcessedBillingEvent{
		EventID:     event.ID,
		Type:        event.Type,
		OwnerID:     event.OwnerID,
		ProcessedAt: time.Now().UTC(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to record billing event: %w", err)
	}
	return nil
}
