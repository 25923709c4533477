package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/usecase"
)

// MovementRepository implements usecase.MovementRepository.
// The movements table is append-only: no UPDATE or DELETE statements exist
// in this repository.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

const movementColumns = `id, seq, item_id, movement_type, quantity, unit, reference,
	location, operator, reason, balance_before, balance_after, created_at`

// Create appends a movement within a transaction. The sequence position is
// assigned by the database and written back to the record.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	return pgxTx.QueryRow(ctx, `
		INSERT INTO movements (
			id, item_id, movement_type, quantity, unit, reference,
			location, operator, reason, balance_before, balance_after, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING seq`,
		movement.ID,
		movement.ItemID,
		string(movement.Type),
		movement.Quantity,
		movement.Unit,
		movement.Reference,
		movement.Location,
		movement.Operator,
		movement.Reason,
		movement.BalanceBefore,
		movement.BalanceAfter,
		movement.CreatedAt,
	).Scan(&movement.Sequence)
}

// LockItem takes a transaction-scoped advisory lock keyed by item ID.
// Appends for the same item serialize on it; other items are unaffected.
func (r *MovementRepository) LockItem(ctx context.Context, tx usecase.Transaction, itemID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, itemID)

	return err
}

// LatestBalance returns the balanceAfter and timestamp of the item's latest
// movement. An unseen item yields (0, nil, nil); absence is not an error.
func (r *MovementRepository) LatestBalance(ctx context.Context, itemID string) (int64, *time.Time, error) {
	var (
		balance   int64
		createdAt time.Time
	)

	err := r.pool.QueryRow(ctx, `
		SELECT balance_after, created_at
		FROM movements
		WHERE item_id = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT 1`,
		itemID,
	).Scan(&balance, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil, nil
		}

		return 0, nil, err
	}

	return balance, &createdAt, nil
}

// LatestBalanceTx is LatestBalance inside the append transaction.
func (r *MovementRepository) LatestBalanceTx(ctx context.Context, tx usecase.Transaction, itemID string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var balance int64

	err := pgxTx.QueryRow(ctx, `
		SELECT balance_after
		FROM movements
		WHERE item_id = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT 1`,
		itemID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, err
	}

	return balance, nil
}

// ListByItem returns one item's full history, oldest first, sequence
// position breaking timestamp ties.
func (r *MovementRepository) ListByItem(ctx context.Context, itemID string) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE item_id = $1
		ORDER BY created_at ASC, seq ASC`,
		itemID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// List returns movements across all items, oldest first.
func (r *MovementRepository) List(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		ORDER BY created_at ASC, seq ASC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// ListItemIDs returns the distinct item IDs present in the ledger.
func (r *MovementRepository) ListItemIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT item_id FROM movements ORDER BY item_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanMovements(rows pgx.Rows) ([]*domain.Movement, error) {
	var movements []*domain.Movement

	for rows.Next() {
		var (
			m       domain.Movement
			movType string
		)

		err := rows.Scan(
			&m.ID, &m.Sequence, &m.ItemID, &movType, &m.Quantity, &m.Unit,
			&m.Reference, &m.Location, &m.Operator, &m.Reason,
			&m.BalanceBefore, &m.BalanceAfter, &m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		m.Type = domain.MovementType(movType)
		movements = append(movements, &m)
	}

	return movements, rows.Err()
}
