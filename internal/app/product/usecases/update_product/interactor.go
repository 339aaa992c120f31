package update_product

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
)

// Request contains the data to update a product. Only these fields are mutable.
type Request struct {
	ProductID   string
	Status      *domain.StockStatus // nil = no change
	Description *string             // nil = no change
	Discount    *domain.Discount    // nil = no change
}

// Interactor handles the update product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	outbox    *outbox.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxWriter *outbox.Writer,
	applier committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		outbox:    outboxWriter,
		committer: applier,
		clock:     clock,
	}
}

// Execute updates a product following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Load aggregate
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	// Clear events on function exit to prevent duplicates on retry
	defer product.ClearEvents()

	// 2. Call domain methods
	if req.Status != nil {
		if err := product.SetStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if err := product.SetDescription(*req.Description); err != nil {
			return err
		}
	}
	if req.Discount != nil {
		if err := product.SetDiscount(req.Discount); err != nil {
			return err
		}
	}

	// Emit a single ProductUpdatedEvent for all changes
	product.MarkUpdated(i.clock.Now())

	// 3. Create commit plan
	mut := i.repo.UpdateMut(product)
	if mut == nil {
		return nil // No changes
	}

	plan := committer.NewPlan()
	plan.Add(mut)

	events, err := outbox.Mutations(i.outbox, product.DomainEvents())
	if err != nil {
		return err
	}
	plan.AddMultiple(events)

	// 4. Apply plan guarded by the version we loaded
	if err := i.committer.ApplyWithVersionCheck(ctx, i.repo.VersionCheck(product), plan); err != nil {
		switch {
		case errors.Is(err, committer.ErrVersionConflict):
			return fmt.Errorf("%w: %v", domain.ErrConcurrentUpdate, err)
		case errors.Is(err, committer.ErrNotFound):
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
