package usecase

import "time"

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// levelCacheTTL bounds staleness of cached projections; appends
	// invalidate eagerly so the TTL is only a backstop.
	levelCacheTTL = 10 * time.Minute

	levelCachePrefix = "level:"
)
