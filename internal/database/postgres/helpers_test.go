package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/ReviewLottery_Go/internal/claimcode"
	"github.com/osse101/ReviewLottery_Go/internal/database"
	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

var (
	testDBConnString  string
	testPool          *pgxpool.Pool
	migrationsApplied bool
	migrationsMux     sync.Mutex
)

// startContainer boots a disposable postgres and returns its connection string
func startContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in startContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// setupDB skips without docker and applies migrations once for the package
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	migrationsMux.Lock()
	defer migrationsMux.Unlock()
	if !migrationsApplied {
		require.NoError(t, database.Migrate(context.Background(), testPool))
		migrationsApplied = true
	}
	return testPool
}

// fixture is a seeded commerce with a fixed-odds pool and an open campaign
type fixture struct {
	Commerce *domain.Commerce
	Prizes   []*domain.Prize
	Pool     *domain.PrizePool
	Campaign *domain.Campaign
}

func ptr[T any](v T) *T {
	return &v
}

func randomCode() string {
	code, err := claimcode.NewGenerator().Generate()
	if err != nil {
		panic(err)
	}
	return code
}

// seedFixture creates a commerce, prizes with the given stocks, a pool and a campaign
func seedFixture(t *testing.T, pool *pgxpool.Pool, stocks ...*int) *fixture {
	t.Helper()
	ctx := context.Background()
	catalog := NewCatalogRepository(pool)

	commerce := &domain.Commerce{Name: "Café " + uuid.NewString()[:8], IsActive: true}
	require.NoError(t, catalog.CreateCommerce(ctx, commerce))

	f := &fixture{Commerce: commerce}
	prizePool := &domain.PrizePool{CommerceID: commerce.ID, Name: "Main", IsActive: true}
	for i, stock := range stocks {
		prize := &domain.Prize{
			CommerceID:   commerce.ID,
			Name:         fmt.Sprintf("Prize %d", i),
			Description:  ptr("desc"),
			Value:        ptr(float64(5 * (i + 1))),
			Stock:        stock,
			IsActive:     true,
			DisplayOrder: i,
		}
		require.NoError(t, catalog.CreatePrize(ctx, prize))
		f.Prizes = append(f.Prizes, prize)

		prizePool.Entries = append(prizePool.Entries, domain.PoolEntry{
			Prize: *prize,
			Probability: domain.Probability{
				Mode:         domain.ProbabilityModeFixed,
				FixedPercent: ptr(100.0 / float64(len(stocks))),
			},
		})
	}
	require.NoError(t, catalog.CreatePrizePool(ctx, prizePool))
	f.Pool = prizePool

	now := time.Now()
	campaign := &domain.Campaign{
		CommerceID:  commerce.ID,
		Name:        "Spring",
		StartDate:   now.Add(-time.Hour),
		EndDate:     now.Add(24 * time.Hour),
		IsActive:    true,
		PrizePoolID: prizePool.ID,
	}
	require.NoError(t, catalog.CreateCampaign(ctx, campaign))
	f.Campaign = campaign

	return f
}

// writeDraw stores a participation and claim for the first prize of a fixture
func writeDraw(t *testing.T, repo *LedgerRepository, f *fixture, email, code string, expiresAt time.Time) (*domain.Participation, *domain.Claim) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	prize := f.Prizes[0]

	p := &domain.Participation{
		ID:               uuid.New(),
		CampaignID:       f.Campaign.ID,
		CommerceID:       f.Commerce.ID,
		ParticipantEmail: email,
		ParticipantName:  "Ada",
		RatingGiven:      5,
		PrizeWonID:       prize.ID,
		SpinResult:       domain.SpinResult{Angle: 1900.5, Segment: 0, VisualSegment: 0},
		CreatedAt:        now,
	}
	c := &domain.Claim{
		ID:               uuid.New(),
		ParticipationID:  p.ID,
		CampaignID:       f.Campaign.ID,
		CommerceID:       f.Commerce.ID,
		PrizeID:          prize.ID,
		ParticipantEmail: email,
		ParticipantName:  "Ada",
		ClaimCode:        code,
		Status:           domain.ClaimStatusPending,
		ExpiresAt:        expiresAt,
		PrizeSnapshot:    prize.Snapshot(),
		CreatedAt:        now,
	}

	tx, err := repo.BeginLedgerTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertParticipation(ctx, p))
	require.NoError(t, tx.InsertClaim(ctx, c))
	require.NoError(t, tx.IncrementCampaignCounters(ctx, f.Campaign.ID))
	require.NoError(t, tx.Commit(ctx))
	return p, c
}
