package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrEmptyDescription = errors.New("product description cannot be empty")
	ErrInvalidPrice     = errors.New("product price cannot be negative")
	ErrInvalidCategory  = errors.New("product category cannot be empty")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyImage       = errors.New("product image cannot be empty")
	ErrEmptyProductCode = errors.New("product code cannot be empty")
	ErrInvalidDiscount  = errors.New("discount must be between 0 and 100")
	ErrInvalidStatus    = errors.New(`status must be either "In Stock" or "Stock Out"`)

	// Persistence errors
	ErrDuplicateKey     = errors.New("duplicate product code")
	ErrConcurrentUpdate = errors.New("product was modified concurrently")
)
