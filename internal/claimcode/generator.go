package claimcode

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

var formatPattern = regexp.MustCompile(`^` + Prefix + `[` + Alphabet + `]{` + fmt.Sprint(Length) + `}$`)

// ExistsFunc reports whether a code is already stored
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generator produces human-friendly redemption codes
type Generator struct {
	maxAttempts int
	random      func(alphabet string, size int) (string, error)
}

// Option configures a Generator
type Option func(*Generator)

// WithMaxAttempts overrides the retry bound of GenerateUnique
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithRandom replaces the symbol source, used by tests to force collisions
func WithRandom(fn func(alphabet string, size int) (string, error)) Option {
	return func(g *Generator) {
		g.random = fn
	}
}

// NewGenerator creates a generator backed by go-nanoid's crypto random source
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		maxAttempts: DefaultMaxAttempts,
		random:      gonanoid.Generate,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a fresh code without checking uniqueness
func (g *Generator) Generate() (string, error) {
	suffix, err := g.random(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextGenerateFailed, err)
	}
	return Prefix + suffix, nil
}

// GenerateUnique retries Generate until exists reports the code as free.
// It returns domain.ErrClaimCodeExhausted after maxAttempts collisions.
func (g *Generator) GenerateUnique(ctx context.Context, exists ExistsFunc) (string, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		code, err := g.Generate()
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%s: %w", ErrContextExistsCheckFailed, err)
		}
		if !taken {
			return code, nil
		}
		log.Debug(LogMsgClaimCodeCollision, "attempt", attempt)
	}

	log.Error(LogMsgClaimCodeExhausted, "attempts", g.maxAttempts)
	return "", domain.ErrClaimCodeExhausted
}

// IsValidFormat checks a code against the canonical uppercase format
func IsValidFormat(code string) bool {
	return formatPattern.MatchString(code)
}

// Normalize trims and uppercases user input before lookup
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
