package participation

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/claimcode"
	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/lottery"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// rolls returns a source replaying the given values, cycling when exhausted
func rolls(values ...float64) lottery.Source {
	i := 0
	return lottery.SourceFunc(func() float64 {
		v := values[i%len(values)]
		i++
		return v
	})
}

func openCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:          uuid.New(),
		CommerceID:  uuid.New(),
		Name:        "Spring reviews",
		StartDate:   fixedNow.AddDate(0, 0, -1),
		EndDate:     fixedNow.AddDate(0, 0, 30),
		IsActive:    true,
		PrizePoolID: uuid.New(),
	}
}

func fixedEntry(name string, percent float64, stock *int) domain.PoolEntry {
	return domain.PoolEntry{
		Prize: domain.Prize{
			ID:       uuid.New(),
			Name:     name,
			Stock:    stock,
			IsActive: true,
			Color:    "#3B82F6",
		},
		Probability: domain.Probability{
			Mode:         domain.ProbabilityModeFixed,
			FixedPercent: ptr(percent),
		},
	}
}

// scenarioPool: C is out of stock, so A, B and D share 80 points
func scenarioPool() []domain.PoolEntry {
	return []domain.PoolEntry{
		fixedEntry("A", 40, nil),
		fixedEntry("B", 35, ptr(1)),
		fixedEntry("C", 20, ptr(0)),
		fixedEntry("D", 5, nil),
	}
}

func newTestService(repo *MockRepository, src lottery.Source, bus event.Bus) *service {
	svc := NewService(repo, lottery.NewEngine(src), claimcode.NewGenerator(), bus).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc
}
