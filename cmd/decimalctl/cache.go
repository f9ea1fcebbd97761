package main

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ledgerbase/decimal"
)

// parseCacheSize bounds how many distinct (policy, literal) pairs are
// memoized.
const parseCacheSize = 256

// parseCacheKey identifies a memoized parse by both the literal text and
// every policy field that can change Parse's result: two invocations
// with the same literal but different precision, rounding mode, or
// bounds are distinct entries, not a cache hit.
type parseCacheKey struct {
	literal   string
	precision uint32
	mode      decimal.RoundingMode
	minExp    int32
	maxExp    int32
	hasBounds bool
}

func cacheKeyFor(literal string, policy decimal.Policy) parseCacheKey {
	min, max, ok := policy.Bounds()
	return parseCacheKey{
		literal:   literal,
		precision: policy.Precision(),
		mode:      policy.RoundingMode(),
		minExp:    min,
		maxExp:    max,
		hasBounds: ok,
	}
}

// parseCache memoizes Parse for repeatedly-seen (literal, policy) pairs;
// Parse itself is pure, so caching by the full key is always sound.
type parseCache struct {
	entries *lru.Cache[parseCacheKey, decimal.DecimalBig]
}

func newParseCache() (*parseCache, error) {
	c, err := lru.New[parseCacheKey, decimal.DecimalBig](parseCacheSize)
	if err != nil {
		return nil, err
	}
	return &parseCache{entries: c}, nil
}

// parse returns the cached decimal for (key, policy) if present,
// otherwise parses key under policy and stores the result.
func (c *parseCache) parse(key string, policy decimal.Policy) decimal.DecimalBig {
	ck := cacheKeyFor(key, policy)
	if d, ok := c.entries.Get(ck); ok {
		return d
	}
	d := decimal.Parse[decimal.Bint](key, policy)
	c.entries.Add(ck, d)
	return d
}
