package m_category

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.CategoryID,
			data.Name,
			data.Description,
			data.IsActive,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}
