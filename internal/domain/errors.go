package domain

import "errors"

var (
	// ErrProductNotFound is returned when no provider recognizes a barcode
	ErrProductNotFound = errors.New("product not found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache store is unreachable
	ErrCacheUnavailable = errors.New("cache unavailable")
)
