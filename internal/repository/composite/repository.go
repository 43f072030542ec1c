package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
	"github.com/kingrain94/pitchcraft-api/internal/repository/opensearch"
	"github.com/kingrain94/pitchcraft-api/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		searchRepo:   opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Pitch() repository.PitchRepository {
	return r.postgresRepo.Pitch()
}

func (r *compositeRepository) Entitlement() repository.EntitlementRepository {
	return r.postgresRepo.Entitlement()
}

func (r *compositeRepository) BillingEvent() repository.BillingEventRepository {
	return r.postgresRepo.BillingEvent()
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
