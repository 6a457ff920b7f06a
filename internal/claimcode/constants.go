package claimcode

// Claim code format
const (
	// Prefix marks every claim code
	Prefix = "RVW-"
	// Alphabet excludes 0/O and 1/I/L to avoid misreads when codes are typed by hand
	Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	// Length is the number of random symbols after the prefix
	Length = 6
	// DefaultMaxAttempts bounds GenerateUnique
	DefaultMaxAttempts = 10
)

// Error contexts
const (
	ErrContextGenerateFailed    = "failed to generate claim code"
	ErrContextExistsCheckFailed = "failed to check claim code existence"
)

// Log messages
const (
	LogMsgClaimCodeCollision = "Claim code collision, retrying"
	LogMsgClaimCodeExhausted = "Claim code generation exhausted retries"
)
