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

func seedItem(t *testing.T, itemRepo *mocks.MockItemRepository, id string, minStock int64) {
	t.Helper()
	err := itemRepo.Create(context.Background(), &domain.Item{
		ID:       id,
		Name:     "Item " + id,
		Category: "Raw Material",
		Unit:     "pcs",
		UnitCost: decimal.NewFromFloat(2.50),
		MinStock: minStock,
		MaxStock: 10 * minStock,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestLevelUseCase_CurrentBalance(t *testing.T) {
	movementRepo := mocks.NewMockMovementRepository()
	itemRepo := mocks.NewMockItemRepository()
	uc := usecase.NewLevelUseCase(movementRepo, itemRepo, nil, nil)
	ctx := context.Background()

	t.Run("unseen item defaults to zero", func(t *testing.T) {
		balance, err := uc.CurrentBalance(ctx, "UNKNOWN")
		if err != nil {
			t.Fatal(err)
		}
		if balance != 0 {
			t.Errorf("expected 0, got %d", balance)
		}
	})

	t.Run("latest balance wins", func(t *testing.T) {
		movementRepo.Create(ctx, nil, &domain.Movement{ItemID: "STL-001", Type: domain.MovementIn, Quantity: 100, BalanceAfter: 100})
		movementRepo.Create(ctx, nil, &domain.Movement{ItemID: "STL-001", Type: domain.MovementOut, Quantity: 85, BalanceBefore: 100, BalanceAfter: 15})

		balance, err := uc.CurrentBalance(ctx, "STL-001")
		if err != nil {
			t.Fatal(err)
		}
		if balance != 15 {
			t.Errorf("expected 15, got %d", balance)
		}
	})
}

func TestLevelUseCase_Rebuild(t *testing.T) {
	ledgerFixture := func(t *testing.T) (*usecase.LedgerUseCase, *usecase.LevelUseCase, *mocks.MockItemRepository, *mocks.MockCache) {
		movementRepo := mocks.NewMockMovementRepository()
		itemRepo := mocks.NewMockItemRepository()
		cache := mocks.NewMockCache()
		ledger := usecase.NewLedgerUseCase(mocks.NewMockTransactionManager(), movementRepo, itemRepo, mocks.NewMockOutboxRepository(), cache, mocks.NewMockIDGenerator(), nil)
		levels := usecase.NewLevelUseCase(movementRepo, itemRepo, cache, nil)
		return ledger, levels, itemRepo, cache
	}

	t.Run("folds full history", func(t *testing.T) {
		ledger, levels, itemRepo, _ := ledgerFixture(t)
		ctx := context.Background()
		seedItem(t, itemRepo, "STL-001", 20)

		for _, in := range []usecase.RecordMovementInput{
			{ItemID: "STL-001", Type: "IN", Quantity: 100},
			{ItemID: "STL-001", Type: "OUT", Quantity: 85},
		} {
			if _, err := ledger.RecordMovement(ctx, in); err != nil {
				t.Fatal(err)
			}
		}

		level, err := levels.Rebuild(ctx, "STL-001")
		if err != nil {
			t.Fatal(err)
		}

		if level.CurrentStock != 15 {
			t.Errorf("expected stock 15, got %d", level.CurrentStock)
		}
		// 15 > 20*0.5 but 15 <= 20: Low, not Critical.
		if level.Status != domain.StatusLow {
			t.Errorf("expected status Low, got %s", level.Status)
		}
		if !level.TotalValue.Equal(decimal.NewFromFloat(37.50)) {
			t.Errorf("expected total value 37.50, got %s", level.TotalValue)
		}
		if level.LastMovement == nil {
			t.Error("expected last movement timestamp")
		}
	})

	t.Run("rebuild equals current balance after replay", func(t *testing.T) {
		ledger, levels, itemRepo, _ := ledgerFixture(t)
		ctx := context.Background()
		seedItem(t, itemRepo, "STL-001", 20)

		quantities := []struct {
			typ string
			qty int64
		}{
			{"IN", 100}, {"OUT", 20}, {"RETURN", 5}, {"OUT", 40}, {"IN", 13},
		}
		var want int64
		for _, q := range quantities {
			m, err := ledger.RecordMovement(ctx, usecase.RecordMovementInput{ItemID: "STL-001", Type: q.typ, Quantity: q.qty})
			if err != nil {
				t.Fatal(err)
			}
			want = m.BalanceAfter
		}

		// A fresh projector over the same ledger must reach the same state.
		level, err := levels.Rebuild(ctx, "STL-001")
		if err != nil {
			t.Fatal(err)
		}
		if level.CurrentStock != want {
			t.Errorf("replayed stock %d, want %d", level.CurrentStock, want)
		}

		balance, err := levels.CurrentBalance(ctx, "STL-001")
		if err != nil {
			t.Fatal(err)
		}
		if balance != want {
			t.Errorf("current balance %d, want %d", balance, want)
		}
	})

	t.Run("unconfigured item", func(t *testing.T) {
		_, levels, _, _ := ledgerFixture(t)

		_, err := levels.Rebuild(context.Background(), "GHOST")
		if !errors.Is(err, domain.ErrItemNotConfigured) {
			t.Errorf("expected ErrItemNotConfigured, got %v", err)
		}
	})

	t.Run("configured item with no movements", func(t *testing.T) {
		_, levels, itemRepo, _ := ledgerFixture(t)
		seedItem(t, itemRepo, "NEW-001", 10)

		level, err := levels.Rebuild(context.Background(), "NEW-001")
		if err != nil {
			t.Fatal(err)
		}
		if level.CurrentStock != 0 || level.LastMovement != nil {
			t.Errorf("expected empty projection, got %+v", level)
		}
		if level.Status != domain.StatusCritical {
			t.Errorf("zero stock with min 10 should be Critical, got %s", level.Status)
		}
	})
}

func TestLevelUseCase_GetLevel_CacheConsistency(t *testing.T) {
	movementRepo := mocks.NewMockMovementRepository()
	itemRepo := mocks.NewMockItemRepository()
	cache := mocks.NewMockCache()
	ledger := usecase.NewLedgerUseCase(mocks.NewMockTransactionManager(), movementRepo, itemRepo, mocks.NewMockOutboxRepository(), cache, mocks.NewMockIDGenerator(), nil)
	levels := usecase.NewLevelUseCase(movementRepo, itemRepo, cache, nil)
	ctx := context.Background()

	seedItem(t, itemRepo, "STL-001", 20)

	if _, err := ledger.RecordMovement(ctx, usecase.RecordMovementInput{ItemID: "STL-001", Type: "IN", Quantity: 100}); err != nil {
		t.Fatal(err)
	}

	level, err := levels.GetLevel(ctx, "STL-001")
	if err != nil {
		t.Fatal(err)
	}
	if level.CurrentStock != 100 {
		t.Fatalf("expected 100, got %d", level.CurrentStock)
	}

	// Append invalidates, so the next read must see the new balance even
	// though the previous projection was cached.
	if _, err := ledger.RecordMovement(ctx, usecase.RecordMovementInput{ItemID: "STL-001", Type: "OUT", Quantity: 60}); err != nil {
		t.Fatal(err)
	}

	level, err = levels.GetLevel(ctx, "STL-001")
	if err != nil {
		t.Fatal(err)
	}
	if level.CurrentStock != 40 {
		t.Errorf("stale projection after append: got %d, want 40", level.CurrentStock)
	}
}

func TestLevelUseCase_ListLevels(t *testing.T) {
	movementRepo := mocks.NewMockMovementRepository()
	itemRepo := mocks.NewMockItemRepository()
	levels := usecase.NewLevelUseCase(movementRepo, itemRepo, nil, nil)
	ctx := context.Background()

	seedItem(t, itemRepo, "STL-001", 20)
	seedItem(t, itemRepo, "ALU-002", 10)

	movementRepo.Create(ctx, nil, &domain.Movement{ItemID: "STL-001", Type: domain.MovementIn, Quantity: 100, BalanceAfter: 100})

	all, err := levels.ListLevels(ctx, usecase.ListLevelsInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(all))
	}

	critical, err := levels.ListLevels(ctx, usecase.ListLevelsInput{
		Query: domain.LevelQuery{Status: string(domain.StatusCritical)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(critical) != 1 || critical[0].ItemID != "ALU-002" {
		t.Errorf("expected ALU-002 critical, got %+v", critical)
	}
}
