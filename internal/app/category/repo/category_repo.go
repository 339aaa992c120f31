package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-service/internal/app/category/contracts"
	"github.com/light-bringer/catalog-service/internal/app/category/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_category"
)

// CategoryRepo implements CategoryRepository for Spanner.
type CategoryRepo struct {
	client *spanner.Client
	model  *m_category.Model
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(client *spanner.Client) *CategoryRepo {
	return &CategoryRepo{
		client: client,
		model:  m_category.NewModel(),
	}
}

var _ contracts.CategoryRepository = (*CategoryRepo)(nil)

// InsertMut creates a mutation for inserting a new category.
func (r *CategoryRepo) InsertMut(category *domain.Category) *spanner.Mutation {
	return r.model.InsertMut(DomainToData(category))
}

// GetByID retrieves a category by ID.
func (r *CategoryRepo) GetByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, m_category.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to read category: %w", err)
	}

	var data m_category.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}

	return DataToDomain(&data), nil
}

// Exists checks if a category exists.
func (r *CategoryRepo) Exists(ctx context.Context, categoryID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, []string{m_category.CategoryID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return true, nil
}

// DomainToData converts a Category aggregate to its row.
func DomainToData(category *domain.Category) *m_category.Data {
	data := &m_category.Data{
		CategoryID: category.ID(),
		Name:       category.Name(),
		IsActive:   category.IsActive(),
		CreatedAt:  category.CreatedAt(),
		UpdatedAt:  category.UpdatedAt(),
	}
	if category.Description() != "" {
		data.Description = spanner.NullString{StringVal: category.Description(), Valid: true}
	}
	return data
}

// DataToDomain converts a categories row to a Category aggregate.
func DataToDomain(data *m_category.Data) *domain.Category {
	return domain.ReconstructCategory(
		data.CategoryID,
		data.Name,
		data.Description.StringVal,
		data.IsActive,
		data.CreatedAt,
		data.UpdatedAt,
	)
}
