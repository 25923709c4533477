package usecase

import (
	"context"
	"time"

	"github.com/mfgops/stockledger/internal/domain"
)

// MovementRepository defines data access for the movement ledger.
// The ledger is append-only: there is no update or delete.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) error
	// LockItem serializes appends for one item. Appends for different items
	// proceed concurrently.
	LockItem(ctx context.Context, tx Transaction, itemID string) error
	// LatestBalance returns the balanceAfter of the item's chronologically
	// latest movement and its timestamp. An unseen item yields (0, nil, nil).
	LatestBalance(ctx context.Context, itemID string) (int64, *time.Time, error)
	LatestBalanceTx(ctx context.Context, tx Transaction, itemID string) (int64, error)
	// ListByItem returns the item's full history, oldest first, stable for
	// equal timestamps by sequence position.
	ListByItem(ctx context.Context, itemID string) ([]*domain.Movement, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Movement, error)
	ListItemIDs(ctx context.Context) ([]string, error)
}

// ItemRepository defines data access for item configurations.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Item, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations for derived projections.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
