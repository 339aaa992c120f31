package delete_product

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

// Interactor handles the delete product use case. Deletion is permanent and
// releases the product code.
type Interactor struct {
	repo      contracts.ProductRepository
	outbox    *outbox.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new delete product interactor.
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

// Execute deletes the product with the given ID.
func (i *Interactor) Execute(ctx context.Context, productID string) error {
	product, err := i.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	defer product.ClearEvents()

	product.MarkDeleted(i.clock.Now())

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(product.ID()))

	events, err := outbox.Mutations(i.outbox, product.DomainEvents())
	if err != nil {
		return err
	}
	plan.AddMultiple(events)

	if err := i.committer.ApplyWithVersionCheck(ctx, i.repo.VersionCheck(product), plan); err != nil {
		switch {
		case errors.Is(err, committer.ErrNotFound):
			return domain.ErrProductNotFound
		case errors.Is(err, committer.ErrVersionConflict):
			return fmt.Errorf("%w: %v", domain.ErrConcurrentUpdate, err)
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
