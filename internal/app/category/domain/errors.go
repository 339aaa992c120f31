package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidName      = errors.New("category name must be between 2 and 50 characters")
)
