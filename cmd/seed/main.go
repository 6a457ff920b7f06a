package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/osse101/ReviewLottery_Go/internal/config"
	"github.com/osse101/ReviewLottery_Go/internal/database"
	"github.com/osse101/ReviewLottery_Go/internal/database/postgres"
	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/repository"
)

type demoPrize struct {
	name    string
	color   string
	stock   *int
	percent float64
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// Percentages add up to 100 so the pool summary reports complete
var demoPrizes = []demoPrize{
	{name: "Free Coffee", color: "#8B5E3C", percent: 50},
	{name: "Pastry of the Day", color: "#E0A458", stock: intPtr(100), percent: 30},
	{name: "10% Off Next Visit", color: "#4C9F70", percent: 15},
	{name: "Branded Mug", color: "#2E4057", stock: intPtr(10), percent: 5},
}

func main() {
	name := flag.String("commerce", "Cafe Aurora", "commerce name; the slug is derived from it")
	days := flag.Int("days", 30, "campaign length in days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	campaign, err := seed(ctx, postgres.NewCatalogRepository(pool), *name, *days)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("commerce_id:   %s\n", campaign.CommerceID)
	fmt.Printf("prize_pool_id: %s\n", campaign.PrizePoolID)
	fmt.Printf("campaign_id:   %s\n", campaign.ID)
	fmt.Printf("open:          /api/v1/public/campaigns/%s\n", campaign.ID)
}

func seed(ctx context.Context, catalog repository.Catalog, commerceName string, days int) (*domain.Campaign, error) {
	commerce := &domain.Commerce{
		Name:              commerceName,
		Description:       strPtr("Demo commerce created by the seed command"),
		GoogleBusinessURL: strPtr("https://g.page/r/demo/review"),
		IsActive:          true,
	}
	if err := catalog.CreateCommerce(ctx, commerce); err != nil {
		return nil, err
	}

	pool := &domain.PrizePool{
		CommerceID: commerce.ID,
		Name:       "Launch wheel",
		IsActive:   true,
	}
	for i, dp := range demoPrizes {
		prize := &domain.Prize{
			CommerceID:   commerce.ID,
			Name:         dp.name,
			Stock:        dp.stock,
			IsActive:     true,
			DisplayOrder: i,
			Color:        dp.color,
		}
		if err := catalog.CreatePrize(ctx, prize); err != nil {
			return nil, err
		}
		pool.Entries = append(pool.Entries, domain.PoolEntry{
			Prize: *prize,
			Probability: domain.Probability{
				Mode:         domain.ProbabilityModeFixed,
				FixedPercent: floatPtr(dp.percent),
			},
		})
	}
	if err := catalog.CreatePrizePool(ctx, pool); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	campaign := &domain.Campaign{
		CommerceID:  commerce.ID,
		Name:        fmt.Sprintf("%s review wheel", commerce.Name),
		StartDate:   now.Add(-time.Hour),
		EndDate:     now.AddDate(0, 0, days),
		IsActive:    true,
		PrizePoolID: pool.ID,
	}
	if err := catalog.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}
