// Package ordernum generates unique human-readable order numbers.
//
// The production setup composes two generators: the database function
// generate_order_number() as the primary source, and a process-local
// timestamp generator as the fallback. Checkout never blocks indefinitely
// on numbering: if the store-side function is unreachable or missing, the
// fallback answers immediately.
package ordernum

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
)

// ProcedureGenerator obtains order numbers from the database function
// generate_order_number(). Store-side generation keeps numbers unique
// across all application instances.
type ProcedureGenerator struct {
	db *gorm.DB
}

// NewProcedureGenerator creates a generator backed by the database function.
func NewProcedureGenerator(db *gorm.DB) *ProcedureGenerator {
	return &ProcedureGenerator{db: db}
}

// Next calls generate_order_number() and returns its result.
func (g *ProcedureGenerator) Next(ctx context.Context) (string, error) {
	var number string
	err := g.db.WithContext(ctx).Raw("SELECT generate_order_number()").Scan(&number).Error
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	if number == "" {
		return "", fmt.Errorf("generate_order_number returned an empty number")
	}

	return number, nil
}

// FallbackGenerator produces order numbers locally from the current
// timestamp, a per-instance random node tag, and a monotonic sequence.
// The node tag keeps concurrent instances apart; the sequence keeps a
// single instance collision-free no matter how fast it is called.
type FallbackGenerator struct {
	node string
	seq  atomic.Uint64
}

// NewFallbackGenerator creates a local order number generator.
func NewFallbackGenerator() (*FallbackGenerator, error) {
	tag := make([]byte, 2)
	if _, err := rand.Read(tag); err != nil {
		return nil, fmt.Errorf("failed to seed order number generator: %w", err)
	}

	return &FallbackGenerator{
		node: hex.EncodeToString(tag),
	}, nil
}

// Next returns the next locally generated order number, e.g.
// "ORD-1756000000000-a4f2-1B".
func (g *FallbackGenerator) Next(_ context.Context) (string, error) {
	n := g.seq.Add(1)
	return fmt.Sprintf("ORD-%d-%s-%X", time.Now().UnixMilli(), g.node, n), nil
}

// Generator composes the store-side generator with the local fallback.
// A primary failure is logged and answered from the fallback, so checkout
// proceeds even when the database function is unavailable.
type Generator struct {
	primary  *ProcedureGenerator
	fallback *FallbackGenerator
	logger   *slog.Logger
}

// NewGenerator creates the composed production generator.
func NewGenerator(
	primary *ProcedureGenerator,
	fallback *FallbackGenerator,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With("component", "order_number_generator"),
	}
}

// Next returns the next order number, preferring the store-side function.
func (g *Generator) Next(ctx context.Context) (string, error) {
	number, err := g.primary.Next(ctx)
	if err == nil {
		return number, nil
	}

	g.logger.WarnContext(ctx, "primary order number generator failed, using fallback", "error", err)
	return g.fallback.Next(ctx)
}
