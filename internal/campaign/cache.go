package campaign

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// cachedCampaign keeps the public view together with the fields IsOpen is derived from,
// so the open flag is recomputed on every read instead of going stale in the cache
type cachedCampaign struct {
	Version  string
	View     domain.PublicCampaign
	IsActive bool
}

// publicCache is an expiring LRU of public campaign views
type publicCache struct {
	lru *expirable.LRU[uuid.UUID, *cachedCampaign]
}

func newPublicCache(size int, ttl time.Duration) *publicCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &publicCache{
		lru: expirable.NewLRU[uuid.UUID, *cachedCampaign](size, nil, ttl),
	}
}

// Get returns a copy of the cached view with IsOpen evaluated at now
func (c *publicCache) Get(id uuid.UUID, now time.Time) (*domain.PublicCampaign, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}

	view := entry.View
	view.IsOpen = entry.IsActive && !now.Before(view.StartDate) && !now.After(view.EndDate)
	return &view, true
}

func (c *publicCache) Set(id uuid.UUID, view domain.PublicCampaign, isActive bool) {
	c.lru.Add(id, &cachedCampaign{Version: CacheSchemaVersion, View: view, IsActive: isActive})
}

func (c *publicCache) Invalidate(id uuid.UUID) {
	c.lru.Remove(id)
}
