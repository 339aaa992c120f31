package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client) *ProductRepo {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
	}
}

var _ contracts.ProductRepository = (*ProductRepo)(nil)

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(DomainToData(product))
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	updates := DirtyColumns(product)
	if len(updates) == 0 {
		return nil
	}
	return r.model.UpdateMut(product.ID(), updates)
}

// DeleteMut creates a mutation for deleting a product.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// VersionCheck expects the stored version to match the loaded aggregate.
func (r *ProductRepo) VersionCheck(product *domain.Product) committer.VersionCheck {
	return committer.VersionCheck{
		Table:         m_product.TableName,
		Key:           spanner.Key{product.ID()},
		VersionColumn: m_product.Version,
		Expected:      product.Version(),
	}
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
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

	return DataToDomain(&data)
}

// FindByCode retrieves the product holding the given product code.
func (r *ProductRepo) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.ProductCode, code)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product by code: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return DataToDomain(&data)
}

// CodeExists checks the product code index without touching the base table.
func (r *ProductRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	_, err := r.client.Single().ReadRowUsingIndex(ctx, m_product.TableName, m_product.CodeIndex,
		spanner.Key{code}, []string{m_product.ProductCode})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product code: %w", err)
	}
	return true, nil
}

// DomainToData converts a Product aggregate to its row.
func DomainToData(product *domain.Product) *m_product.Data {
	return &m_product.Data{
		ProductID:   product.ID(),
		ProductCode: product.Code(),
		Name:        product.Name(),
		Description: product.Description(),
		Price:       *product.Price().Rat(),
		Discount:    *product.Discount().Rat(),
		Image:       product.Image(),
		Status:      string(product.Status()),
		CategoryID:  product.CategoryID(),
		Version:     product.Version(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	}
}

// DirtyColumns maps the product's dirty fields to column values. The version
// column is bumped whenever anything changed.
func DirtyColumns(product *domain.Product) map[string]interface{} {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}
	if changes.Dirty(domain.FieldDiscount) {
		updates[m_product.Discount] = product.Discount().Rat()
	}
	if changes.Dirty(domain.FieldStatus) {
		updates[m_product.Status] = string(product.Status())
	}
	if len(updates) == 0 {
		return nil
	}

	// Increment version for optimistic locking
	updates[m_product.Version] = product.Version() + 1
	return updates
}

// DataToDomain converts a products row to a Product aggregate.
func DataToDomain(data *m_product.Data) (*domain.Product, error) {
	discount, err := domain.NewDiscount(&data.Discount)
	if err != nil {
		return nil, fmt.Errorf("product %s has invalid stored discount: %w", data.ProductID, err)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.ProductCode,
		data.Name,
		data.Description,
		domain.NewMoneyFromRat(&data.Price),
		discount,
		data.Image,
		domain.StockStatus(data.Status),
		data.CategoryID,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
