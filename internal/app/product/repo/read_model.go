package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_category"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
)

var categorySummaryColumns = []string{m_category.CategoryID, m_category.Name, m_category.Description}

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) *ReadModelImpl {
	return &ReadModelImpl{
		client: client,
	}
}

var _ contracts.ReadModel = (*ReadModelImpl)(nil)

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	dto, err := DataToDTO(&data)
	if err != nil {
		return nil, err
	}

	categories, err := rm.readCategories(ctx, txn, []string{data.CategoryID})
	if err != nil {
		return nil, err
	}
	dto.Category = categories[data.CategoryID]

	return dto, nil
}

// ListProducts retrieves a page of products matching the filter, newest first.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	builder := query.From(m_product.TableName).
		Select(m_product.Columns...).
		When(filter.CategoryID != "", query.Eq(m_product.CategoryID, filter.CategoryID)).
		When(filter.Search != "", query.ContainsFold(m_product.Name, filter.Search))

	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := rm.count(ctx, txn, builder.Count().Build())
	if err != nil {
		return nil, err
	}

	stmt := builder.
		OrderBy(m_product.CreatedAt, query.Desc).
		OrderBy(m_product.ProductID, query.Asc).
		Page(int64(page), int64(limit)).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, limit)
	categoryIDs := make([]string, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		dto, err := DataToDTO(&data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert to DTO: %w", err)
		}
		products = append(products, dto)
		categoryIDs = append(categoryIDs, data.CategoryID)
	}

	categories, err := rm.readCategories(ctx, txn, categoryIDs)
	if err != nil {
		return nil, err
	}
	for _, dto := range products {
		dto.Category = categories[dto.CategoryID]
	}

	return &contracts.ListResult{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}

func (rm *ReadModelImpl) count(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) (int64, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var total int64
	if err := row.Column(0, &total); err != nil {
		return 0, fmt.Errorf("failed to parse product count: %w", err)
	}
	return total, nil
}

// readCategories batch-reads the distinct categories referenced by ids.
func (rm *ReadModelImpl) readCategories(ctx context.Context, txn *spanner.ReadOnlyTransaction, ids []string) (map[string]*contracts.CategorySummary, error) {
	result := make(map[string]*contracts.CategorySummary)

	seen := make(map[string]bool, len(ids))
	keys := make([]spanner.Key, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, spanner.Key{id})
	}
	if len(keys) == 0 {
		return result, nil
	}

	iter := txn.Read(ctx, m_category.TableName, spanner.KeySetFromKeys(keys...), categorySummaryColumns)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read categories: %w", err)
		}

		var (
			id, name    string
			description spanner.NullString
		)
		if err := row.Columns(&id, &name, &description); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}
		result[id] = &contracts.CategorySummary{
			CategoryID:  id,
			Name:        name,
			Description: description.StringVal,
		}
	}

	return result, nil
}

// DataToDTO converts database Data to a ProductDTO without its category.
func DataToDTO(data *m_product.Data) (*contracts.ProductDTO, error) {
	price := domain.NewMoneyFromRat(&data.Price)
	discount, err := domain.NewDiscount(&data.Discount)
	if err != nil {
		return nil, fmt.Errorf("product %s has invalid stored discount: %w", data.ProductID, err)
	}

	return &contracts.ProductDTO{
		ProductID:   data.ProductID,
		ProductCode: data.ProductCode,
		Name:        data.Name,
		Description: data.Description,
		Price:       price.Float64(),
		Discount:    discount.Float64(),
		FinalPrice:  discount.Apply(price).Float64(),
		Image:       data.Image,
		Status:      data.Status,
		CategoryID:  data.CategoryID,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
