package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID  = "category_id"
	Name        = "name"
	Description = "description"
	IsActive    = "is_active"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists every categories column in table order.
var Columns = []string{
	CategoryID,
	Name,
	Description,
	IsActive,
	CreatedAt,
	UpdatedAt,
}
