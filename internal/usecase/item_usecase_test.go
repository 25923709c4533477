package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/usecase"
	"github.com/mfgops/stockledger/internal/usecase/mocks"
)

func TestItemUseCase_CreateItem(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateItemInput
		expectError error
	}{
		{
			name: "valid item",
			input: usecase.CreateItemInput{
				ID:       "STL-001",
				Name:     "Steel Sheet 2mm",
				Category: "Raw Material",
				Unit:     "sheet",
				UnitCost: decimal.NewFromFloat(12.50),
				MinStock: 20,
				MaxStock: 200,
			},
		},
		{
			name: "generated id when absent",
			input: usecase.CreateItemInput{
				Name:     "Hex Bolt M8",
				MinStock: 100,
				MaxStock: 5000,
			},
		},
		{
			name: "empty name rejected",
			input: usecase.CreateItemInput{
				ID:       "STL-002",
				MinStock: 0,
				MaxStock: 10,
			},
			expectError: domain.ErrInvalidItemName,
		},
		{
			name: "negative minimum rejected",
			input: usecase.CreateItemInput{
				ID:       "STL-003",
				Name:     "Steel Rod",
				MinStock: -1,
				MaxStock: 10,
			},
			expectError: domain.ErrInvalidMinStock,
		},
		{
			name: "max below min rejected",
			input: usecase.CreateItemInput{
				ID:       "STL-004",
				Name:     "Steel Rod",
				MinStock: 50,
				MaxStock: 10,
			},
			expectError: domain.ErrInvalidMaxStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itemRepo := mocks.NewMockItemRepository()
			uc := usecase.NewItemUseCase(itemRepo, mocks.NewMockIDGenerator(), nil)

			item, err := uc.CreateItem(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.ID == "" {
				t.Error("expected non-empty ID")
			}
			if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
				t.Error("expected timestamps")
			}
		})
	}
}

func TestItemUseCase_DuplicateItem(t *testing.T) {
	itemRepo := mocks.NewMockItemRepository()
	uc := usecase.NewItemUseCase(itemRepo, mocks.NewMockIDGenerator(), nil)
	ctx := context.Background()

	input := usecase.CreateItemInput{ID: "STL-001", Name: "Steel Sheet", MaxStock: 10}

	if _, err := uc.CreateItem(ctx, input); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.CreateItem(ctx, input); !errors.Is(err, domain.ErrItemExists) {
		t.Errorf("expected ErrItemExists, got %v", err)
	}
}

func TestItemUseCase_GetItem(t *testing.T) {
	itemRepo := mocks.NewMockItemRepository()
	uc := usecase.NewItemUseCase(itemRepo, mocks.NewMockIDGenerator(), nil)
	ctx := context.Background()

	if _, err := uc.CreateItem(ctx, usecase.CreateItemInput{ID: "STL-001", Name: "Steel Sheet", MaxStock: 10}); err != nil {
		t.Fatal(err)
	}

	item, err := uc.GetItem(ctx, "STL-001")
	if err != nil {
		t.Fatal(err)
	}
	if item.Name != "Steel Sheet" {
		t.Errorf("unexpected item: %+v", item)
	}

	if _, err := uc.GetItem(ctx, "GHOST"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemUseCase_ListItems(t *testing.T) {
	itemRepo := mocks.NewMockItemRepository()
	uc := usecase.NewItemUseCase(itemRepo, mocks.NewMockIDGenerator(), nil)
	ctx := context.Background()

	for _, id := range []string{"A-1", "A-2", "A-3"} {
		if _, err := uc.CreateItem(ctx, usecase.CreateItemInput{ID: id, Name: "Item " + id, MaxStock: 10}); err != nil {
			t.Fatal(err)
		}
	}

	items, err := uc.ListItems(ctx, usecase.ListItemsInput{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}

	rest, err := uc.ListItems(ctx, usecase.ListItemsInput{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 1 || rest[0].ID != "A-3" {
		t.Errorf("expected A-3, got %+v", rest)
	}
}
