package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	// CodeIndex is the unique secondary index on product_code.
	CodeIndex = "products_by_product_code"

	ProductID   = "product_id"
	ProductCode = "product_code"
	Name        = "name"
	Description = "description"
	Price       = "price"
	Discount    = "discount"
	Image       = "image"
	Status      = "status"
	CategoryID  = "category_id"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists every products column in table order.
var Columns = []string{
	ProductID,
	ProductCode,
	Name,
	Description,
	Price,
	Discount,
	Image,
	Status,
	CategoryID,
	Version,
	CreatedAt,
	UpdatedAt,
}
