package insights

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"interviewdeck/internal/models"
)

// Cache memoizes Compute per result set. A set id must be minted whenever a
// result set is replaced, so an id never refers to two different sets.
// Returned values are shared and must not be mutated.
type Cache struct {
	entries *lru.Cache[string, Insights]
}

func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, Insights](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create insights cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Get returns the insights for setID, computing them from qs on a miss.
// An empty setID is never cached.
func (c *Cache) Get(setID string, qs []models.Question) Insights {
	if setID == "" {
		return Compute(qs)
	}
	if cached, ok := c.entries.Get(setID); ok {
		return cached
	}
	computed := Compute(qs)
	c.entries.Add(setID, computed)
	return computed
}

func (c *Cache) Len() int {
	return c.entries.Len()
}
