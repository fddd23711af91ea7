package usecase

import "time"

const (
	// ClubCacheTTL bounds how long a subdomain-to-club resolution is cached.
	ClubCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
