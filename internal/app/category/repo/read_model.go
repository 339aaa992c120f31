package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-service/internal/app/category/contracts"
	"github.com/light-bringer/catalog-service/internal/app/category/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_category"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new category ReadModel.
func NewReadModel(client *spanner.Client) *ReadModelImpl {
	return &ReadModelImpl{client: client}
}

var _ contracts.ReadModel = (*ReadModelImpl)(nil)

// GetCategoryByID retrieves a category DTO by ID.
func (rm *ReadModelImpl) GetCategoryByID(ctx context.Context, categoryID string) (*contracts.CategoryDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, m_category.Columns)
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

	return DataToDTO(&data), nil
}

// ListActiveCategories retrieves all active categories.
func (rm *ReadModelImpl) ListActiveCategories(ctx context.Context) ([]*contracts.CategoryDTO, error) {
	stmt := query.From(m_category.TableName).
		Select(m_category.Columns...).
		Where(query.Eq(m_category.IsActive, true)).
		OrderBy(m_category.Name, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	categories := make([]*contracts.CategoryDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var data m_category.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}
		categories = append(categories, DataToDTO(&data))
	}

	return categories, nil
}

// DataToDTO converts a categories row to a CategoryDTO.
func DataToDTO(data *m_category.Data) *contracts.CategoryDTO {
	return &contracts.CategoryDTO{
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description.StringVal,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
