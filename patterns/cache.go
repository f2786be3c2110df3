package patterns

import (
	"fmt"
	"regexp"

	"github.com/amp-labs/morepreconditions/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is a reasonable size for a process-wide cache of patterns
// written as string literals.
const DefaultCacheSize = 256

// Cache is a Compiler that keeps the most recently used compiled patterns.
// It is safe for concurrent use. Patterns that fail to compile are not cached.
type Cache struct {
	entries *lru.Cache[string, *regexp.Regexp]
}

var _ Compiler = (*Cache)(nil)

// NewCache creates a cache that holds at most size compiled patterns.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		return nil, fmt.Errorf("%w: cache size %d: %w", errors.ErrInvalidArgument, size, err)
	}

	return &Cache{entries: entries}, nil
}

// Compile implements Compiler. The key is the pattern as given, before anchoring.
func (c *Cache) Compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := c.entries.Get(pattern); ok {
		return re, nil
	}

	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	c.entries.Add(pattern, re)

	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.entries.Purge()
}
