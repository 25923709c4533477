package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/infrastructure/metrics"
)

// LevelUseCase projects current stock levels from the movement ledger.
// It holds no state of its own: every level can be rebuilt from the ledger
// at any time, and the cache is only a read-path shortcut.
type LevelUseCase struct {
	movementRepo MovementRepository
	itemRepo     ItemRepository
	cache        Cache
	metrics      *metrics.Metrics
}

// NewLevelUseCase creates a new LevelUseCase. Metrics may be nil.
func NewLevelUseCase(movementRepo MovementRepository, itemRepo ItemRepository, cache Cache, m *metrics.Metrics) *LevelUseCase {
	return &LevelUseCase{
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		cache:        cache,
		metrics:      m,
	}
}

// CurrentBalance returns the item's balance after its latest movement.
// An item with no movements has balance 0; absence is not an error.
func (uc *LevelUseCase) CurrentBalance(ctx context.Context, itemID string) (int64, error) {
	balance, _, err := uc.movementRepo.LatestBalance(ctx, itemID)

	return balance, err
}

// Rebuild folds the item's full movement history from the ledger and
// projects it onto the item configuration. Classification requires a
// configured item; an unconfigured one yields ErrItemNotConfigured.
func (uc *LevelUseCase) Rebuild(ctx context.Context, itemID string) (*domain.StockLevel, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, domain.ErrItemNotConfigured
		}

		return nil, err
	}

	history, err := uc.movementRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var balance int64
	var lastMovement *time.Time

	for _, m := range history {
		balance, err = domain.NextBalance(balance, m.Type, m.Quantity)
		if err != nil {
			return nil, err
		}

		at := m.CreatedAt
		lastMovement = &at
	}

	level := domain.BuildStockLevel(item, balance, lastMovement)

	if uc.metrics != nil {
		uc.metrics.LevelRebuilds.Inc()
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(level); err == nil {
			_ = uc.cache.Set(ctx, levelCachePrefix+itemID, payload, levelCacheTTL)
		}
	}

	return level, nil
}

// GetLevel returns the item's stock level, from cache when fresh.
func (uc *LevelUseCase) GetLevel(ctx context.Context, itemID string) (*domain.StockLevel, error) {
	if uc.cache != nil {
		if payload, err := uc.cache.Get(ctx, levelCachePrefix+itemID); err == nil && len(payload) > 0 {
			var level domain.StockLevel
			if err := json.Unmarshal(payload, &level); err == nil {
				if uc.metrics != nil {
					uc.metrics.LevelCacheHits.Inc()
				}

				return &level, nil
			}
		}

		if uc.metrics != nil {
			uc.metrics.LevelCacheMisses.Inc()
		}
	}

	return uc.Rebuild(ctx, itemID)
}

// ListLevelsInput represents input for listing stock levels.
type ListLevelsInput struct {
	Query  domain.LevelQuery
	Limit  int
	Offset int
}

// ListLevels projects levels for all configured items and applies the
// filter predicates, preserving catalog order.
func (uc *LevelUseCase) ListLevels(ctx context.Context, input ListLevelsInput) ([]*domain.StockLevel, error) {
	if input.Limit <= 0 {
		input.Limit = defaultPageSize
	}

	if input.Limit > maxPageSize {
		input.Limit = maxPageSize
	}

	items, err := uc.itemRepo.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	levels := make([]*domain.StockLevel, 0, len(items))
	for _, item := range items {
		level, err := uc.GetLevel(ctx, item.ID)
		if err != nil {
			return nil, err
		}

		levels = append(levels, level)
	}

	return domain.FilterLevels(levels, input.Query), nil
}
