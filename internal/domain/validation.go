package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidItemID   = errors.New("invalid item ID")
	ErrInvalidItemName = errors.New("invalid item name")
	ErrInvalidMinStock = errors.New("minimum stock must not be negative")
	ErrInvalidMaxStock = errors.New("maximum stock must not be below minimum stock")
)

// Validation constants
const (
	MaxItemIDLength   = 64
	MaxItemNameLength = 255
	MaxFreeTextLength = 512
)

var itemIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateItemID validates an item identifier.
func ValidateItemID(id string) error {
	id = strings.TrimSpace(id)

	if id == "" {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidItemID)
	}

	if len(id) > MaxItemIDLength {
		return fmt.Errorf("%w: ID exceeds %d characters", ErrInvalidItemID, MaxItemIDLength)
	}

	if !itemIDRegex.MatchString(id) {
		return fmt.Errorf("%w: ID contains forbidden characters", ErrInvalidItemID)
	}

	return nil
}

// ValidateItemName validates an item display name.
func ValidateItemName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidItemName)
	}

	if len(name) > MaxItemNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidItemName, MaxItemNameLength)
	}

	return nil
}

// ValidateQuantity validates a movement quantity.
func ValidateQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	return nil
}

// ValidateStockBounds validates a min/max stock configuration.
func ValidateStockBounds(minStock, maxStock int64) error {
	if minStock < 0 {
		return ErrInvalidMinStock
	}

	if maxStock < minStock {
		return ErrInvalidMaxStock
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
