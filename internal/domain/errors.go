package domain

import "errors"

var (
	// Ledger errors
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidMovementType = errors.New("movement type must be one of IN, OUT, RETURN")
	ErrInsufficientStock   = errors.New("movement would drive stock balance negative")
	ErrMovementNotFound    = errors.New("movement not found")

	// Item errors
	ErrItemNotFound      = errors.New("item not found")
	ErrItemNotConfigured = errors.New("item has no stock configuration")
	ErrItemExists        = errors.New("item already exists")

	// Ledger chain errors
	ErrBrokenChain = errors.New("ledger chain is inconsistent: running balances do not line up")
)
