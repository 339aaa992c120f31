// Package committer collects Spanner mutations produced by repositories and
// applies them atomically.
//
// Repositories never write. They return mutations; use cases gather them,
// together with outbox events, into a CommitPlan and hand the plan to an
// Applier:
//
//	plan := committer.NewPlan()
//	plan.Add(repo.InsertMut(product))
//	plan.AddMultiple(outboxMuts)
//	return applier.Apply(ctx, plan)
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

var (
	// ErrAlreadyExists is returned when a commit violates a primary key or
	// unique index.
	ErrAlreadyExists = errors.New("row already exists")

	// ErrNotFound is returned when a version-checked row is missing.
	ErrNotFound = errors.New("row not found")

	// ErrVersionConflict is returned when the stored version differs from
	// the expected one.
	ErrVersionConflict = errors.New("optimistic lock conflict")
)

// CommitPlan is a typed wrapper around Spanner mutations.
// It collects mutations from multiple sources and applies them atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// VersionCheck identifies a row whose version column must still hold Expected
// when the plan is applied.
type VersionCheck struct {
	Table         string
	Key           spanner.Key
	VersionColumn string
	Expected      int64
}

// Applier applies commit plans. Use cases depend on this interface.
type Applier interface {
	Apply(ctx context.Context, plan *CommitPlan) error
	ApplyWithVersionCheck(ctx context.Context, check VersionCheck, plan *CommitPlan) error
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

var _ Applier = (*Committer)(nil)

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically within a Spanner transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil // Nothing to commit
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return classify(err)
	}

	return nil
}

// ApplyWithVersionCheck executes the CommitPlan with optimistic locking.
// It verifies the version hasn't changed before buffering the mutations.
func (c *Committer) ApplyWithVersionCheck(ctx context.Context, check VersionCheck, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil // Nothing to commit
	}

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, check.Table, check.Key, []string{check.VersionColumn})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return ErrNotFound
			}
			return fmt.Errorf("failed to read version: %w", err)
		}

		var current int64
		if err := row.Column(0, &current); err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}

		if current != check.Expected {
			return fmt.Errorf("%w: expected version %d, got %d", ErrVersionConflict, check.Expected, current)
		}

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrVersionConflict) {
			return err
		}
		return classify(err)
	}

	return nil
}

// classify maps Spanner status codes onto the package sentinels.
func classify(err error) error {
	if spanner.ErrCode(err) == codes.AlreadyExists {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	return fmt.Errorf("failed to apply commit plan: %w", err)
}
