package board

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"qa-board-sync/pkg/tracker"
)

// ListingCache keeps recent issue listings per project so board reads
// do not hammer the tracker. Entries expire on their own; webhook
// processing and mapping saves invalidate them explicitly.
type ListingCache struct {
	lru *expirable.LRU[int, []tracker.Issue]
}

// NewListingCache creates a cache with the given size and TTL.
func NewListingCache(size int, ttl time.Duration) *ListingCache {
	if size <= 0 {
		size = 128
	}
	return &ListingCache{
		lru: expirable.NewLRU[int, []tracker.Issue](size, nil, ttl),
	}
}

func (c *ListingCache) Get(projectID int) ([]tracker.Issue, bool) {
	return c.lru.Get(projectID)
}

func (c *ListingCache) Add(projectID int, issues []tracker.Issue) {
	c.lru.Add(projectID, issues)
}

// Invalidate drops the project's cached listing. Also satisfies
// mapping.CacheInvalidator.
func (c *ListingCache) Invalidate(projectID int) {
	c.lru.Remove(projectID)
}
