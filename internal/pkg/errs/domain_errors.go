package errs

import "errors"

// Domain-specific sentinel errors for the pet engine
var (
	// Pet errors
	ErrPetNotFound    = errors.New("pet not found")
	ErrNotPetOwner    = errors.New("actor is not the pet owner")
	ErrIllegalInState = errors.New("interaction not allowed in current status")
	ErrOnCooldown     = errors.New("interaction on cooldown")
	ErrDailyLimitHit  = errors.New("daily limit for interaction reached")

	// Concurrency errors
	ErrVersionConflict   = errors.New("snapshot version conflict")
	ErrTooMuchContention = errors.New("conflict retries exhausted")

	// Persistence errors
	ErrPersistenceDeferred = errors.New("durable write deferred")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
