package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus is the health classification of a stock level.
type StockStatus string

const (
	StatusHealthy  StockStatus = "Healthy"
	StatusLow      StockStatus = "Low"
	StatusCritical StockStatus = "Critical"
)

// ClassifyStock maps a current stock level and configured minimum to a
// health status. Order matters: Critical is checked before Low.
// The half-minimum threshold is computed as 2*current <= min, which is exact
// for integers. A zero minimum means only zero (or lower) stock is ever
// non-Healthy; that is deliberate.
func ClassifyStock(currentStock, minStock int64) StockStatus {
	switch {
	case 2*currentStock <= minStock:
		return StatusCritical
	case currentStock <= minStock:
		return StatusLow
	default:
		return StatusHealthy
	}
}

// StockLevel is the derived per-item view over the ledger. It is a cache:
// it can always be rebuilt by folding the item's movement history and must
// never be edited independently.
type StockLevel struct {
	LastMovement *time.Time
	ItemID       string
	Name         string
	Category     string
	Unit         string
	Location     string
	Supplier     string
	Status       StockStatus
	UnitCost     decimal.Decimal
	TotalValue   decimal.Decimal
	CurrentStock int64
	MinStock     int64
	MaxStock     int64
}

// BuildStockLevel projects an item's current balance onto its configuration.
func BuildStockLevel(item *Item, currentStock int64, lastMovement *time.Time) *StockLevel {
	return &StockLevel{
		ItemID:       item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Unit:         item.Unit,
		Location:     item.Location,
		Supplier:     item.Supplier,
		UnitCost:     item.UnitCost,
		TotalValue:   item.UnitCost.Mul(decimal.NewFromInt(currentStock)),
		CurrentStock: currentStock,
		MinStock:     item.MinStock,
		MaxStock:     item.MaxStock,
		Status:       ClassifyStock(currentStock, item.MinStock),
		LastMovement: lastMovement,
	}
}
