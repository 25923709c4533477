package domain

import (
	"errors"
	"testing"
)

func TestParseMovementType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        MovementType
		expectError bool
	}{
		{name: "upper IN", input: "IN", want: MovementIn},
		{name: "lower out", input: "out", want: MovementOut},
		{name: "mixed Return", input: "Return", want: MovementReturn},
		{name: "padded", input: "  in ", want: MovementIn},
		{name: "unknown", input: "transfer", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMovementType(tt.input)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidMovementType) {
					t.Errorf("expected ErrInvalidMovementType, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNextBalance(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		movType     MovementType
		quantity    int64
		want        int64
		expectError error
	}{
		{name: "in adds", balance: 0, movType: MovementIn, quantity: 100, want: 100},
		{name: "return adds", balance: 40, movType: MovementReturn, quantity: 5, want: 45},
		{name: "out subtracts", balance: 100, movType: MovementOut, quantity: 85, want: 15},
		{name: "out exact balance", balance: 30, movType: MovementOut, quantity: 30, want: 0},
		{name: "out over balance rejected", balance: 10, movType: MovementOut, quantity: 11, expectError: ErrInsufficientStock},
		{name: "out from zero rejected", balance: 0, movType: MovementOut, quantity: 1, expectError: ErrInsufficientStock},
		{name: "zero quantity rejected", balance: 10, movType: MovementIn, quantity: 0, expectError: ErrInvalidQuantity},
		{name: "negative quantity rejected", balance: 10, movType: MovementOut, quantity: -5, expectError: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextBalance(tt.balance, tt.movType, tt.quantity)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected balance %d, got %d", tt.want, got)
			}
		})
	}
}

func TestVerifyChain(t *testing.T) {
	valid := []*Movement{
		{Type: MovementIn, Quantity: 100, BalanceBefore: 0, BalanceAfter: 100},
		{Type: MovementOut, Quantity: 85, BalanceBefore: 100, BalanceAfter: 15},
		{Type: MovementReturn, Quantity: 5, BalanceBefore: 15, BalanceAfter: 20},
	}

	if err := VerifyChain(valid); err != nil {
		t.Fatalf("expected valid chain, got %v", err)
	}

	t.Run("empty chain is valid", func(t *testing.T) {
		if err := VerifyChain(nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("gap in running balance", func(t *testing.T) {
		broken := []*Movement{
			{Type: MovementIn, Quantity: 100, BalanceBefore: 0, BalanceAfter: 100},
			{Type: MovementOut, Quantity: 10, BalanceBefore: 90, BalanceAfter: 80},
		}
		if !errors.Is(VerifyChain(broken), ErrBrokenChain) {
			t.Error("expected ErrBrokenChain")
		}
	})

	t.Run("wrong arithmetic", func(t *testing.T) {
		broken := []*Movement{
			{Type: MovementIn, Quantity: 100, BalanceBefore: 0, BalanceAfter: 99},
		}
		if !errors.Is(VerifyChain(broken), ErrBrokenChain) {
			t.Error("expected ErrBrokenChain")
		}
	})

	t.Run("chain must start from zero", func(t *testing.T) {
		broken := []*Movement{
			{Type: MovementIn, Quantity: 10, BalanceBefore: 5, BalanceAfter: 15},
		}
		if !errors.Is(VerifyChain(broken), ErrBrokenChain) {
			t.Error("expected ErrBrokenChain")
		}
	})
}
