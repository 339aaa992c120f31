package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the categories table.
type Data struct {
	CategoryID  string             `spanner:"category_id"`
	Name        string             `spanner:"name"`
	Description spanner.NullString `spanner:"description"`
	IsActive    bool               `spanner:"is_active"`
	CreatedAt   time.Time          `spanner:"created_at"`
	UpdatedAt   time.Time          `spanner:"updated_at"`
}
