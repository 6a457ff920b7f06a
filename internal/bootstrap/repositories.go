package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ReviewLottery_Go/internal/database/postgres"
	"github.com/osse101/ReviewLottery_Go/internal/repository"
)

// Repositories holds the store implementations used by the application
type Repositories struct {
	Campaign      repository.Campaign
	Catalog       repository.Catalog
	Claim         repository.Claim
	Participation repository.Participation
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Campaign:      postgres.NewCampaignRepository(dbPool),
		Catalog:       postgres.NewCatalogRepository(dbPool),
		Claim:         postgres.NewClaimRepository(dbPool),
		Participation: postgres.NewLedgerRepository(dbPool),
	}
}
