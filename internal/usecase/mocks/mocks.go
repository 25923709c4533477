package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/usecase"
)

// MockMovementRepository is a mock implementation of MovementRepository.
// Without overrides it behaves as an in-memory append-only ledger.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements []*domain.Movement
	nextSeq   int64

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error
	LockItemFunc        func(ctx context.Context, tx usecase.Transaction, itemID string) error
	LatestBalanceFunc   func(ctx context.Context, itemID string) (int64, *time.Time, error)
	LatestBalanceTxFunc func(ctx context.Context, tx usecase.Transaction, itemID string) (int64, error)
	ListByItemFunc      func(ctx context.Context, itemID string) ([]*domain.Movement, error)
	ListFunc            func(ctx context.Context, limit, offset int) ([]*domain.Movement, error)
	ListItemIDsFunc     func(ctx context.Context) ([]string, error)
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{nextSeq: 1}
}

func (m *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	movement.Sequence = m.nextSeq
	m.nextSeq++
	m.movements = append(m.movements, movement)
	return nil
}

func (m *MockMovementRepository) LockItem(ctx context.Context, tx usecase.Transaction, itemID string) error {
	if m.LockItemFunc != nil {
		return m.LockItemFunc(ctx, tx, itemID)
	}
	return nil
}

func (m *MockMovementRepository) LatestBalance(ctx context.Context, itemID string) (int64, *time.Time, error) {
	if m.LatestBalanceFunc != nil {
		return m.LatestBalanceFunc(ctx, itemID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.movements) - 1; i >= 0; i-- {
		if m.movements[i].ItemID == itemID {
			at := m.movements[i].CreatedAt
			return m.movements[i].BalanceAfter, &at, nil
		}
	}
	return 0, nil, nil
}

func (m *MockMovementRepository) LatestBalanceTx(ctx context.Context, tx usecase.Transaction, itemID string) (int64, error) {
	if m.LatestBalanceTxFunc != nil {
		return m.LatestBalanceTxFunc(ctx, tx, itemID)
	}
	balance, _, err := m.LatestBalance(ctx, itemID)
	return balance, err
}

func (m *MockMovementRepository) ListByItem(ctx context.Context, itemID string) ([]*domain.Movement, error) {
	if m.ListByItemFunc != nil {
		return m.ListByItemFunc(ctx, itemID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Movement
	for _, mv := range m.movements {
		if mv.ItemID == itemID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *MockMovementRepository) List(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.movements) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.movements) {
		end = len(m.movements)
	}
	return append([]*domain.Movement(nil), m.movements[offset:end]...), nil
}

func (m *MockMovementRepository) ListItemIDs(ctx context.Context) ([]string, error) {
	if m.ListItemIDsFunc != nil {
		return m.ListItemIDsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var ids []string
	for _, mv := range m.movements {
		if !seen[mv.ItemID] {
			seen[mv.ItemID] = true
			ids = append(ids, mv.ItemID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// MockItemRepository is a mock implementation of ItemRepository.
type MockItemRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Item
	order []string

	CreateFunc  func(ctx context.Context, item *domain.Item) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Item, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Item, error)
}

func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{items: make(map[string]*domain.Item)}
}

func (m *MockItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; ok {
		return domain.ErrItemExists
	}
	m.items[item.ID] = item
	m.order = append(m.order, item.ID)
	return nil
}

func (m *MockItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockItemRepository) List(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Item
	for i, id := range m.order {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, m.items[id])
	}
	return out, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			out = append(out, e)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.events[:0]
	for _, e := range m.events {
		if !e.Published || e.PublishedAt == nil || !e.PublishedAt.Before(before) {
			kept = append(kept, e)
		}
	}
	m.events = kept
	return nil
}

// Events returns all stored events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%06d", m.counter)
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu      sync.RWMutex
	values  map[string][]byte
	Deletes []string

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.Deletes = append(m.Deletes, key)
	return nil
}
