package get_category

import (
	"context"

	"github.com/light-bringer/catalog-service/internal/app/category/contracts"
)

// Query handles the get category query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get category query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves a category by ID.
func (q *Query) Execute(ctx context.Context, categoryID string) (*contracts.CategoryDTO, error) {
	return q.readModel.GetCategoryByID(ctx, categoryID)
}
