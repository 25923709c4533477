package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mfgops/stockledger/internal/domain"
)

// PostgreSQL unique violation error code.
const pgErrUniqueViolation = "23505"

// ItemRepository implements usecase.ItemRepository.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

const itemColumns = `id, name, category, unit, location, supplier,
	unit_cost, min_stock, max_stock, created_at, updated_at`

// Create creates a new item configuration.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO items (
			id, name, category, unit, location, supplier,
			unit_cost, min_stock, max_stock, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		item.ID,
		item.Name,
		item.Category,
		item.Unit,
		item.Location,
		item.Supplier,
		item.UnitCost.String(),
		item.MinStock,
		item.MaxStock,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrItemExists
		}

		return err
	}

	return nil
}

// GetByID retrieves an item by ID.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1`,
		id,
	)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}

		return nil, err
	}

	return item, nil
}

// List retrieves items ordered by creation time.
func (r *ItemRepository) List(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item     domain.Item
		unitCost string
	)

	err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Unit, &item.Location,
		&item.Supplier, &unitCost, &item.MinStock, &item.MaxStock,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cost, err := decimal.NewFromString(unitCost)
	if err != nil {
		return nil, err
	}
	item.UnitCost = cost

	return &item, nil
}
