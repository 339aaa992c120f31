package m_product

import (
	"sort"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product. It is a plain
// insert so that an existing key or product code fails the commit.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.ProductID,
			data.ProductCode,
			data.Name,
			data.Description,
			data.Price,
			data.Discount,
			data.Image,
			data.Status,
			data.CategoryID,
			data.Version,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific product fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always update the UpdatedAt timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	fields := make([]string, 0, len(updates))
	for col := range updates {
		fields = append(fields, col)
	}
	sort.Strings(fields)

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for _, col := range fields {
		columns = append(columns, col)
		values = append(values, updates[col])
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a product (hard delete).
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
