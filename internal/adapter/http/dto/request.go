package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/usecase"
)

// RecordMovementRequest represents a request to record a stock movement.
// Field names follow the dashboard consumers' payload shape.
type RecordMovementRequest struct {
	Item      string `json:"item"`
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	Location  string `json:"location,omitempty"`
	Reference string `json:"reference,omitempty"`
	Operator  string `json:"operator,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordMovementRequest) ToUseCaseInput() usecase.RecordMovementInput {
	return usecase.RecordMovementInput{
		ItemID:    r.Item,
		Type:      r.Type,
		Quantity:  r.Quantity,
		Location:  r.Location,
		Reference: r.Reference,
		Operator:  r.Operator,
		Reason:    r.Reason,
	}
}

// CreateItemRequest represents a request to create an item configuration.
type CreateItemRequest struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Unit     string          `json:"unit"`
	Location string          `json:"location,omitempty"`
	Supplier string          `json:"supplier,omitempty"`
	UnitCost decimal.Decimal `json:"unitCost"`
	MinStock int64           `json:"minStock"`
	MaxStock int64           `json:"maxStock"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateItemRequest) ToUseCaseInput() usecase.CreateItemInput {
	return usecase.CreateItemInput{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		Unit:     r.Unit,
		Location: r.Location,
		Supplier: r.Supplier,
		UnitCost: r.UnitCost,
		MinStock: r.MinStock,
		MaxStock: r.MaxStock,
	}
}

// PeriodFactsRequest is one reporting period's externally collected facts.
type PeriodFactsRequest struct {
	OrdersCompleted      float64 `json:"ordersCompleted"`
	TotalRevenue         float64 `json:"totalRevenue"`
	AvgLeadTime          float64 `json:"avgLeadTime"`
	QualityScore         float64 `json:"qualityScore"`
	OnTimeDelivery       float64 `json:"onTimeDelivery"`
	CustomerSatisfaction float64 `json:"customerSatisfaction"`
}

// ToDomain converts to domain period facts.
func (r *PeriodFactsRequest) ToDomain() domain.PeriodFacts {
	return domain.PeriodFacts{
		OrdersCompleted:      r.OrdersCompleted,
		TotalRevenue:         r.TotalRevenue,
		AvgLeadTime:          r.AvgLeadTime,
		QualityScore:         r.QualityScore,
		OnTimeDelivery:       r.OnTimeDelivery,
		CustomerSatisfaction: r.CustomerSatisfaction,
	}
}

// WorkCenterRequest is one work center's period telemetry.
type WorkCenterRequest struct {
	Name        string  `json:"name"`
	Output      int64   `json:"output"`
	Utilization float64 `json:"utilization"`
}

// FinancialLineRequest is one budget category with actual spend.
type FinancialLineRequest struct {
	Category string          `json:"category"`
	Budget   decimal.Decimal `json:"budget"`
	Actual   decimal.Decimal `json:"actual"`
}

// DashboardRequest carries the facts for one reporting period plus, when
// history exists, the immediately preceding period.
type DashboardRequest struct {
	Current    PeriodFactsRequest     `json:"current"`
	Previous   *PeriodFactsRequest    `json:"previous,omitempty"`
	Production []WorkCenterRequest    `json:"production,omitempty"`
	Financial  []FinancialLineRequest `json:"financial,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *DashboardRequest) ToUseCaseInput() usecase.BuildDashboardInput {
	input := usecase.BuildDashboardInput{
		Current: r.Current.ToDomain(),
	}

	if r.Previous != nil {
		prev := r.Previous.ToDomain()
		input.Previous = &prev
	}

	for _, wc := range r.Production {
		input.WorkCenters = append(input.WorkCenters, domain.WorkCenter{
			Name:        wc.Name,
			Output:      wc.Output,
			Utilization: wc.Utilization,
		})
	}

	for _, line := range r.Financial {
		input.Financial = append(input.Financial, domain.FinancialLine{
			Category: line.Category,
			Budget:   line.Budget,
			Actual:   line.Actual,
		})
	}

	return input
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
