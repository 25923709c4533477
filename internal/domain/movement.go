package domain

import (
	"strings"
	"time"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIn     MovementType = "IN"
	MovementOut    MovementType = "OUT"
	MovementReturn MovementType = "RETURN"
)

// ParseMovementType parses a movement type, case-insensitively.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IN":
		return MovementIn, nil
	case "OUT":
		return MovementOut, nil
	case "RETURN":
		return MovementReturn, nil
	default:
		return "", ErrInvalidMovementType
	}
}

// Inbound reports whether the movement adds stock.
func (t MovementType) Inbound() bool {
	return t == MovementIn || t == MovementReturn
}

// Movement is a single immutable record in the stock ledger.
// Records are append-only: once written they are never mutated or deleted.
type Movement struct {
	CreatedAt     time.Time
	ID            string
	ItemID        string
	Type          MovementType
	Unit          string
	Reference     string
	Location      string
	Operator      string
	Reason        string
	Sequence      int64
	Quantity      int64
	BalanceBefore int64
	BalanceAfter  int64
}

// NextBalance applies a movement of the given type and quantity to a balance.
// OUT movements that exceed the balance are rejected, never clamped.
func NextBalance(balance int64, t MovementType, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	if t.Inbound() {
		return balance + quantity, nil
	}

	if t != MovementOut {
		return 0, ErrInvalidMovementType
	}

	if quantity > balance {
		return 0, ErrInsufficientStock
	}

	return balance - quantity, nil
}

// VerifyChain checks balance continuity over one item's movement history,
// oldest first. The first record must start from zero.
func VerifyChain(movements []*Movement) error {
	var balance int64

	for _, m := range movements {
		if m.BalanceBefore != balance {
			return ErrBrokenChain
		}

		next, err := NextBalance(m.BalanceBefore, m.Type, m.Quantity)
		if err != nil {
			return err
		}

		if m.BalanceAfter != next {
			return ErrBrokenChain
		}

		balance = m.BalanceAfter
	}

	return nil
}
