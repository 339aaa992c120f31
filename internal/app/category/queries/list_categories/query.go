package list_categories

import (
	"context"

	"github.com/light-bringer/catalog-service/internal/app/category/contracts"
)

// Query handles the list categories query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list categories query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns every active category.
func (q *Query) Execute(ctx context.Context) ([]*contracts.CategoryDTO, error) {
	return q.readModel.ListActiveCategories(ctx)
}
