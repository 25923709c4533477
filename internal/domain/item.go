package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is the catalog configuration for a stocked item. The configuration is
// what the classification rules need; balances live in the ledger.
type Item struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Name      string
	Category  string
	Unit      string
	Location  string
	Supplier  string
	UnitCost  decimal.Decimal
	MinStock  int64
	MaxStock  int64
}
