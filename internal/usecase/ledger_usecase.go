package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/infrastructure/metrics"
)

// LedgerUseCase handles the append-only movement ledger.
type LedgerUseCase struct {
	txManager    TransactionManager
	movementRepo MovementRepository
	itemRepo     ItemRepository
	outboxRepo   OutboxRepository
	cache        Cache
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. Metrics may be nil.
func NewLedgerUseCase(
	txManager TransactionManager,
	movementRepo MovementRepository,
	itemRepo ItemRepository,
	outboxRepo OutboxRepository,
	cache Cache,
	idGen IDGenerator,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:    txManager,
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		outboxRepo:   outboxRepo,
		cache:        cache,
		idGen:        idGen,
		metrics:      m,
	}
}

// RecordMovementInput represents input for recording a stock movement.
type RecordMovementInput struct {
	ItemID    string
	Type      string
	Reference string
	Location  string
	Operator  string
	Reason    string
	Quantity  int64
}

// RecordMovement appends one movement to the ledger. The running balance is
// computed inside a per-item exclusive section; an OUT movement exceeding the
// current balance is rejected and the ledger is left unmodified.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*domain.Movement, error) {
	start := time.Now()

	if err := domain.ValidateItemID(input.ItemID); err != nil {
		uc.rejectMovement("validation")
		return nil, err
	}

	movementType, err := domain.ParseMovementType(input.Type)
	if err != nil {
		uc.rejectMovement("validation")
		return nil, err
	}

	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		uc.rejectMovement("validation")
		return nil, err
	}

	// The item may have no catalog entry yet; the ledger does not require
	// one. Configuration only gates classification.
	unit := ""
	if item, err := uc.itemRepo.GetByID(ctx, input.ItemID); err == nil {
		unit = item.Unit
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.movementRepo.LockItem(ctx, tx, input.ItemID); err != nil {
		return nil, err
	}

	balanceBefore, err := uc.movementRepo.LatestBalanceTx(ctx, tx, input.ItemID)
	if err != nil {
		return nil, err
	}

	balanceAfter, err := domain.NextBalance(balanceBefore, movementType, input.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.rejectMovement("insufficient_stock")
		}
		return nil, err
	}

	now := time.Now().UTC()

	movement := &domain.Movement{
		ID:            uc.idGen.Generate(),
		ItemID:        input.ItemID,
		Type:          movementType,
		Quantity:      input.Quantity,
		Unit:          unit,
		Reference:     input.Reference,
		Location:      input.Location,
		Operator:      input.Operator,
		Reason:        input.Reason,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		CreatedAt:     now,
	}

	if err := uc.movementRepo.Create(ctx, tx, movement); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   movement.ID,
		AggregateType: domain.AggregateTypeMovement,
		EventType:     domain.EventTypeMovementRecorded,
		Payload: map[string]any{
			"movement_id":    movement.ID,
			"item_id":        movement.ItemID,
			"type":           string(movement.Type),
			"quantity":       movement.Quantity,
			"balance_before": movement.BalanceBefore,
			"balance_after":  movement.BalanceAfter,
			"recorded_at":    now.Format(time.RFC3339),
		},
		CreatedAt: now,
	}

	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// The cached projection is stale now. Rebuilds are lazy on next read;
	// a failed invalidation only shortens to the TTL backstop.
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, levelCachePrefix+input.ItemID)
	}

	if uc.metrics != nil {
		uc.metrics.MovementsRecorded.WithLabelValues(string(movementType)).Inc()
		uc.metrics.MovementQuantity.WithLabelValues(string(movementType)).Observe(float64(input.Quantity))
		uc.metrics.MovementDuration.Observe(time.Since(start).Seconds())
	}

	return movement, nil
}

func (uc *LedgerUseCase) rejectMovement(reason string) {
	if uc.metrics != nil {
		uc.metrics.MovementRejected.WithLabelValues(reason).Inc()
	}
}

// ListMovementsInput represents input for listing movements.
type ListMovementsInput struct {
	Query  domain.MovementQuery
	Limit  int
	Offset int
}

// ListMovements lists ledger movements, oldest first, with conjunctive
// filter predicates applied after retrieval.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, input ListMovementsInput) ([]*domain.Movement, error) {
	if input.Limit <= 0 {
		input.Limit = defaultPageSize
	}

	if input.Limit > maxPageSize {
		input.Limit = maxPageSize
	}

	var (
		movements []*domain.Movement
		err       error
	)

	if input.Query.ItemID != "" {
		movements, err = uc.movementRepo.ListByItem(ctx, input.Query.ItemID)
	} else {
		movements, err = uc.movementRepo.List(ctx, input.Limit, input.Offset)
	}
	if err != nil {
		return nil, err
	}

	return domain.FilterMovements(movements, input.Query), nil
}

// ChainReport is the result of a full ledger verification.
type ChainReport struct {
	BrokenItems   []string
	ItemsChecked  int
	MovementCount int
}

// Consistent reports whether every item's chain verified.
func (r *ChainReport) Consistent() bool {
	return len(r.BrokenItems) == 0
}

// VerifyChains replays every item's movement history and checks that the
// running balances form an unbroken chain. The ledger is authoritative, so
// this must hold at any time.
func (uc *LedgerUseCase) VerifyChains(ctx context.Context) (*ChainReport, error) {
	itemIDs, err := uc.movementRepo.ListItemIDs(ctx)
	if err != nil {
		return nil, err
	}

	report := &ChainReport{ItemsChecked: len(itemIDs)}

	for _, itemID := range itemIDs {
		history, err := uc.movementRepo.ListByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}

		report.MovementCount += len(history)

		if err := domain.VerifyChain(history); err != nil {
			report.BrokenItems = append(report.BrokenItems, itemID)
		}
	}

	if uc.metrics != nil {
		uc.metrics.ChainVerifications.Inc()
		uc.metrics.ChainBreaks.Add(float64(len(report.BrokenItems)))
	}

	return report, nil
}
