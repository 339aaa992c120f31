package get_product

import (
	"context"
	"strings"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
)

// Request identifies the product to read.
type Request struct {
	ProductID string
}

// Query returns a single product with its category populated.
type Query struct {
	readModel contracts.ReadModel
}

func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute reads the product. A blank ID is reported as not found without a
// database round trip.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	id := strings.TrimSpace(req.ProductID)
	if id == "" {
		return nil, domain.ErrProductNotFound
	}
	return q.readModel.GetProductByID(ctx, id)
}
