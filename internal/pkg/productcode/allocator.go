package productcode

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/light-bringer/catalog-service/internal/pkg/clock"
)

// MaxAttempts bounds the number of existence checks made by Allocate.
const MaxAttempts = 10

// ErrCodeGenerationExhausted is returned when every candidate collided.
var ErrCodeGenerationExhausted = errors.New("product code generation exhausted")

// ExistenceCheck reports whether code is already taken.
type ExistenceCheck func(ctx context.Context, code string) (bool, error)

// Allocator picks a product code that is free at the time of the check.
// The final insert must still rely on the unique index on product codes.
type Allocator struct {
	clock       clock.Clock
	maxAttempts int
}

// NewAllocator creates an Allocator that uses clk for collision suffixes.
func NewAllocator(clk clock.Clock) *Allocator {
	return &Allocator{
		clock:       clk,
		maxAttempts: MaxAttempts,
	}
}

// Allocate generates the code for name and probes exists until a free
// candidate is found. On a collision the candidate gets "-<unix millis>"
// appended. After MaxAttempts collisions it returns
// ErrCodeGenerationExhausted.
func (a *Allocator) Allocate(ctx context.Context, name string, exists ExistenceCheck) (string, error) {
	candidate := Generate(name)

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check product code %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}

		candidate = candidate + "-" + strconv.FormatInt(clock.Millis(a.clock), 10)
	}

	return "", fmt.Errorf("%w: %d attempts for %q", ErrCodeGenerationExhausted, a.maxAttempts, name)
}
