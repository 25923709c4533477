package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/infrastructure/metrics"
)

// ItemUseCase handles the item catalog.
type ItemUseCase struct {
	itemRepo ItemRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewItemUseCase creates a new ItemUseCase. Metrics may be nil.
func NewItemUseCase(itemRepo ItemRepository, idGen IDGenerator, m *metrics.Metrics) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		idGen:    idGen,
		metrics:  m,
	}
}

// CreateItemInput represents input for creating an item configuration.
type CreateItemInput struct {
	ID       string
	Name     string
	Category string
	Unit     string
	Location string
	Supplier string
	UnitCost decimal.Decimal
	MinStock int64
	MaxStock int64
}

// CreateItem creates a new item configuration. The caller may supply the ID
// (SKUs usually come from upstream systems); one is generated otherwise.
func (uc *ItemUseCase) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	if input.ID == "" {
		input.ID = uc.idGen.Generate()
	}

	if err := domain.ValidateItemID(input.ID); err != nil {
		return nil, err
	}

	if err := domain.ValidateItemName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateStockBounds(input.MinStock, input.MaxStock); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	item := &domain.Item{
		ID:        input.ID,
		Name:      input.Name,
		Category:  input.Category,
		Unit:      input.Unit,
		Location:  input.Location,
		Supplier:  input.Supplier,
		UnitCost:  input.UnitCost,
		MinStock:  input.MinStock,
		MaxStock:  input.MaxStock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ItemsCreated.Inc()
	}

	return item, nil
}

// GetItem retrieves an item configuration by ID.
func (uc *ItemUseCase) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// ListItemsInput represents input for listing items.
type ListItemsInput struct {
	Limit  int
	Offset int
}

// ListItems lists item configurations with pagination.
func (uc *ItemUseCase) ListItems(ctx context.Context, input ListItemsInput) ([]*domain.Item, error) {
	if input.Limit <= 0 {
		input.Limit = defaultPageSize
	}

	if input.Limit > maxPageSize {
		input.Limit = maxPageSize
	}

	return uc.itemRepo.List(ctx, input.Limit, input.Offset)
}
