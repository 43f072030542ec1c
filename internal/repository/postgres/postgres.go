package postgres

import (
	"gorm.io/gorm"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
)

type postgresRepository struct {
	writerDB         *gorm.DB
	readerDB         *gorm.DB
	pitchRepo        repository.PitchRepository
	entitlementRepo  repository.EntitlementRepository
	billingEventRepo repository.BillingEventRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:         dbConnections.Writer,
		readerDB:         dbConnections.Reader,
		pitchRepo:        NewPitchRepository(dbConnections.Writer, dbConnections.Reader),
		entitlementRepo:  NewEntitlementRepository(dbConnections.Writer, dbConnections.Reader),
		billingEventRepo: NewBillingEventRepository(dbConnections.Writer),
	}
}

// AutoMigrate creates the ledger, entitlement and processed event tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Pitch{}, &domain.EntitlementRecord{}, &domain.ProcessedBillingEvent{})
}

func (r *postgresRepository) Pitch() repository.PitchRepository {
	return r.pitchRepo
}

func (r *postgresRepository) Entitlement() repository.EntitlementRepository {
	return r.entitlementRepo
}

func (r *postgresRepository) BillingEvent() repository.BillingEventRepository {
	return r.billingEventRepo
}
