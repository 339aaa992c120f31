package m_product

import (
	"math/big"
	"time"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID   string    `spanner:"product_id"`
	ProductCode string    `spanner:"product_code"`
	Name        string    `spanner:"name"`
	Description string    `spanner:"description"`
	Price       big.Rat   `spanner:"price"`
	Discount    big.Rat   `spanner:"discount"`
	Image       string    `spanner:"image"`
	Status      string    `spanner:"status"`
	CategoryID  string    `spanner:"category_id"`
	Version     int64     `spanner:"version"`
	CreatedAt   time.Time `spanner:"created_at"`
	UpdatedAt   time.Time `spanner:"updated_at"`
}
