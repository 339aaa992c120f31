package create_product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
	"github.com/light-bringer/catalog-service/internal/pkg/productcode"
)

// Request contains the data needed to create a product.
type Request struct {
	Name        string
	Description string
	Price       *domain.Money
	Discount    *domain.Discount // nil = no discount
	Image       string
	Status      domain.StockStatus // empty = In Stock
	CategoryID  string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	categories contracts.CategoryChecker
	allocator  *productcode.Allocator
	outbox     *outbox.Writer
	committer  committer.Applier
	clock      clock.Clock
	log        logrus.FieldLogger
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	categories contracts.CategoryChecker,
	allocator *productcode.Allocator,
	outboxWriter *outbox.Writer,
	applier committer.Applier,
	clock clock.Clock,
	log logrus.FieldLogger,
) *Interactor {
	return &Interactor{
		repo:       repo,
		categories: categories,
		allocator:  allocator,
		outbox:     outboxWriter,
		committer:  applier,
		clock:      clock,
		log:        log,
	}
}

// Execute creates a new product following the Golden Mutation Pattern and
// returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	// 1. Category must exist
	ok, err := i.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return "", fmt.Errorf("failed to check category: %w", err)
	}
	if !ok {
		return "", domain.ErrCategoryNotFound
	}

	// 2. Allocate a product code nobody else holds
	code, err := i.allocator.Allocate(ctx, req.Name, i.codeTaken(req.Name))
	if err != nil {
		if errors.Is(err, productcode.ErrCodeGenerationExhausted) {
			codeExhausted.Inc()
			i.log.WithField("name", req.Name).WithError(err).Error("product code generation exhausted")
		}
		return "", err
	}

	// 3. Create domain aggregate
	product, err := domain.NewProduct(domain.NewProductParams{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Image:       req.Image,
		Status:      req.Status,
		CategoryID:  req.CategoryID,
	}, i.clock.Now())
	if err != nil {
		return "", err
	}

	// 4. Build the commit plan: product row + outbox events
	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))

	events, err := outbox.Mutations(i.outbox, product.DomainEvents())
	if err != nil {
		return "", err
	}
	plan.AddMultiple(events)

	// 5. Apply plan (usecase applies, not handler)
	if err := i.committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, committer.ErrAlreadyExists) {
			return "", fmt.Errorf("%w: %s", domain.ErrDuplicateKey, code)
		}
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	i.log.WithFields(logrus.Fields{
		"product_id":   product.ID(),
		"product_code": product.Code(),
	}).Info("product created")

	return product.ID(), nil
}

// codeTaken adapts the repository to the allocator and records collisions.
func (i *Interactor) codeTaken(name string) productcode.ExistenceCheck {
	return func(ctx context.Context, code string) (bool, error) {
		taken, err := i.repo.CodeExists(ctx, code)
		if err != nil {
			return false, err
		}
		if taken {
			codeCollisions.Inc()
			i.log.WithFields(logrus.Fields{
				"name":         name,
				"product_code": code,
			}).Warn("product code collision")
		}
		return taken, nil
	}
}
