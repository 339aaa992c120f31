package create_category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/app/category/contracts"
	"github.com/light-bringer/catalog-service/internal/app/category/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
)

// Request contains the data needed to create a category.
type Request struct {
	Name        string
	Description string
}

// Interactor handles the create category use case.
type Interactor struct {
	repo      contracts.CategoryRepository
	outbox    *outbox.Writer
	committer committer.Applier
	clock     clock.Clock
	log       logrus.FieldLogger
}

// NewInteractor creates a new create category interactor.
func NewInteractor(
	repo contracts.CategoryRepository,
	outboxWriter *outbox.Writer,
	applier committer.Applier,
	clock clock.Clock,
	log logrus.FieldLogger,
) *Interactor {
	return &Interactor{
		repo:      repo,
		outbox:    outboxWriter,
		committer: applier,
		clock:     clock,
		log:       log,
	}
}

// Execute creates a category and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	category, err := domain.NewCategory(uuid.New().String(), req.Name, req.Description, i.clock.Now())
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(category))

	events, err := outbox.Mutations(i.outbox, category.DomainEvents())
	if err != nil {
		return "", err
	}
	plan.AddMultiple(events)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	i.log.WithField("category_id", category.ID()).Info("category created")
	return category.ID(), nil
}
