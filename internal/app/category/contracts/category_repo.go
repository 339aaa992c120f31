package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-service/internal/app/category/domain"
)

// CategoryRepository defines category persistence.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type CategoryRepository interface {
	// InsertMut creates a mutation for inserting a new category
	InsertMut(category *domain.Category) *spanner.Mutation

	// GetByID retrieves a category, returning domain.ErrCategoryNotFound when absent
	GetByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// Exists checks if a category exists
	Exists(ctx context.Context, categoryID string) (bool, error)
}
