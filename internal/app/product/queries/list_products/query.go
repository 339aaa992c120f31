package list_products

import (
	"context"
	"strings"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
)

// Request contains filtering and pagination parameters.
type Request struct {
	CategoryID string
	Search     string
	Page       int // 1-based, zero means first page
	Limit      int // zero means the default page size
}

// Query handles the list products query use case.
type Query struct {
	readModel    contracts.ReadModel
	defaultLimit int
	maxLimit     int
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel, defaultLimit, maxLimit int) *Query {
	return &Query{
		readModel:    readModel,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Execute retrieves a page of products with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	filter := &contracts.ListFilter{
		CategoryID: strings.TrimSpace(req.CategoryID),
		Search:     strings.TrimSpace(req.Search),
		Page:       req.Page,
		Limit:      req.Limit,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = q.defaultLimit
	}
	if filter.Limit > q.maxLimit {
		filter.Limit = q.maxLimit
	}

	return q.readModel.ListProducts(ctx, filter)
}
