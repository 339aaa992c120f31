package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for updating a product (only dirty fields).
	// Returns nil when nothing changed.
	UpdateMut(product *domain.Product) *spanner.Mutation

	// DeleteMut creates a mutation removing the product row
	DeleteMut(productID string) *spanner.Mutation

	// VersionCheck describes the optimistic lock guarding writes to product
	VersionCheck(product *domain.Product) committer.VersionCheck

	// GetByID retrieves a product by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindByCode retrieves the product holding code, or domain.ErrProductNotFound
	FindByCode(ctx context.Context, code string) (*domain.Product, error)

	// CodeExists reports whether any product holds code
	CodeExists(ctx context.Context, code string) (bool, error)
}

// CategoryChecker verifies that a product's category exists.
type CategoryChecker interface {
	Exists(ctx context.Context, categoryID string) (bool, error)
}
