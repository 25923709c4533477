package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/usecase"
)

// Timestamp layouts used by the dashboard consumers, which render date and
// time as separate columns.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// MovementResponse represents a ledger movement in API responses.
type MovementResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Item          string `json:"item"`
	Type          string `json:"type"`
	Quantity      int64  `json:"quantity"`
	Unit          string `json:"unit"`
	Reference     string `json:"reference"`
	Location      string `json:"location"`
	Operator      string `json:"operator"`
	BalanceBefore int64  `json:"balanceBefore"`
	BalanceAfter  int64  `json:"balanceAfter"`
	Reason        string `json:"reason"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:            m.ID,
		Date:          m.CreatedAt.Format(dateLayout),
		Time:          m.CreatedAt.Format(timeLayout),
		Item:          m.ItemID,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		Reference:     m.Reference,
		Location:      m.Location,
		Operator:      m.Operator,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		Reason:        m.Reason,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// StockLevelResponse represents a derived stock level in API responses.
type StockLevelResponse struct {
	ID           string          `json:"id"`
	Item         string          `json:"item"`
	Category     string          `json:"category"`
	CurrentStock int64           `json:"currentStock"`
	MinStock     int64           `json:"minStock"`
	MaxStock     int64           `json:"maxStock"`
	Unit         string          `json:"unit"`
	Location     string          `json:"location"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	LastMovement string          `json:"lastMovement"`
	Supplier     string          `json:"supplier"`
	Status       string          `json:"status"`
}

// StockLevelFromDomain converts a domain stock level to a response.
func StockLevelFromDomain(l *domain.StockLevel) *StockLevelResponse {
	lastMovement := ""
	if l.LastMovement != nil {
		lastMovement = l.LastMovement.Format(time.RFC3339)
	}

	return &StockLevelResponse{
		ID:           l.ItemID,
		Item:         l.Name,
		Category:     l.Category,
		CurrentStock: l.CurrentStock,
		MinStock:     l.MinStock,
		MaxStock:     l.MaxStock,
		Unit:         l.Unit,
		Location:     l.Location,
		UnitCost:     l.UnitCost,
		TotalValue:   l.TotalValue,
		LastMovement: lastMovement,
		Supplier:     l.Supplier,
		Status:       string(l.Status),
	}
}

// StockLevelsFromDomain converts domain stock levels to responses.
func StockLevelsFromDomain(levels []*domain.StockLevel) []*StockLevelResponse {
	result := make([]*StockLevelResponse, len(levels))
	for i, l := range levels {
		result[i] = StockLevelFromDomain(l)
	}
	return result
}

// ItemResponse represents an item configuration in API responses.
type ItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	Location  string          `json:"location"`
	Supplier  string          `json:"supplier"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	MinStock  int64           `json:"minStock"`
	MaxStock  int64           `json:"maxStock"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ItemFromDomain converts a domain item to a response.
func ItemFromDomain(i *domain.Item) *ItemResponse {
	return &ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Unit:      i.Unit,
		Location:  i.Location,
		Supplier:  i.Supplier,
		UnitCost:  i.UnitCost,
		MinStock:  i.MinStock,
		MaxStock:  i.MaxStock,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ItemsFromDomain converts domain items to responses.
func ItemsFromDomain(items []*domain.Item) []*ItemResponse {
	result := make([]*ItemResponse, len(items))
	for i, item := range items {
		result[i] = ItemFromDomain(item)
	}
	return result
}

// KpiResponse is the flattened current/previous KPI block. Previous-period
// fields are null when no prior period exists, never zero.
type KpiResponse struct {
	OrdersCompleted          float64  `json:"ordersCompleted"`
	PrevOrdersCompleted      *float64 `json:"prevOrdersCompleted"`
	TotalRevenue             float64  `json:"totalRevenue"`
	PrevTotalRevenue         *float64 `json:"prevTotalRevenue"`
	AvgLeadTime              float64  `json:"avgLeadTime"`
	PrevAvgLeadTime          *float64 `json:"prevAvgLeadTime"`
	QualityScore             float64  `json:"qualityScore"`
	PrevQualityScore         *float64 `json:"prevQualityScore"`
	OnTimeDelivery           float64  `json:"onTimeDelivery"`
	PrevOnTimeDelivery       *float64 `json:"prevOnTimeDelivery"`
	CustomerSatisfaction     float64  `json:"customerSatisfaction"`
	PrevCustomerSatisfaction *float64 `json:"prevCustomerSatisfaction"`
}

// CategoryCountResponse is one slice of the stock-by-category chart.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Items    int    `json:"items"`
	Units    int64  `json:"units"`
}

// ChartsResponse holds the dashboard chart series.
type ChartsResponse struct {
	StockByCategory []CategoryCountResponse `json:"stockByCategory"`
	StatusBreakdown map[string]int          `json:"statusBreakdown"`
}

// WorkCenterResponse is one rated work center.
type WorkCenterResponse struct {
	Name        string  `json:"name"`
	Output      int64   `json:"output"`
	Utilization float64 `json:"utilization"`
	Rating      string  `json:"rating"`
}

// FinancialLineResponse is one classified financial line.
type FinancialLineResponse struct {
	Category        string          `json:"category"`
	Budget          decimal.Decimal `json:"budget"`
	Actual          decimal.Decimal `json:"actual"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent decimal.Decimal `json:"variancePercent"`
	Status          string          `json:"status"`
}

// DashboardResponse is the aggregated reporting payload.
type DashboardResponse struct {
	Kpi        KpiResponse             `json:"kpi"`
	Charts     ChartsResponse          `json:"charts"`
	Production []WorkCenterResponse    `json:"production"`
	Financial  []FinancialLineResponse `json:"financial"`
}

// DashboardFromReport converts an aggregated report to a response.
func DashboardFromReport(r *usecase.DashboardReport) *DashboardResponse {
	resp := &DashboardResponse{
		Kpi: KpiResponse{
			OrdersCompleted:          r.Kpi.OrdersCompleted.Current,
			PrevOrdersCompleted:      r.Kpi.OrdersCompleted.Previous,
			TotalRevenue:             r.Kpi.TotalRevenue.Current,
			PrevTotalRevenue:         r.Kpi.TotalRevenue.Previous,
			AvgLeadTime:              r.Kpi.AvgLeadTime.Current,
			PrevAvgLeadTime:          r.Kpi.AvgLeadTime.Previous,
			QualityScore:             r.Kpi.QualityScore.Current,
			PrevQualityScore:         r.Kpi.QualityScore.Previous,
			OnTimeDelivery:           r.Kpi.OnTimeDelivery.Current,
			PrevOnTimeDelivery:       r.Kpi.OnTimeDelivery.Previous,
			CustomerSatisfaction:     r.Kpi.CustomerSatisfaction.Current,
			PrevCustomerSatisfaction: r.Kpi.CustomerSatisfaction.Previous,
		},
		Charts: ChartsResponse{
			StockByCategory: make([]CategoryCountResponse, 0, len(r.Charts.StockByCategory)),
			StatusBreakdown: make(map[string]int, len(r.Charts.StatusBreakdown)),
		},
		Production: make([]WorkCenterResponse, 0, len(r.Production)),
		Financial:  make([]FinancialLineResponse, 0, len(r.Financial)),
	}

	for _, slice := range r.Charts.StockByCategory {
		resp.Charts.StockByCategory = append(resp.Charts.StockByCategory, CategoryCountResponse{
			Category: slice.Category,
			Items:    slice.Items,
			Units:    slice.Units,
		})
	}

	for status, count := range r.Charts.StatusBreakdown {
		resp.Charts.StatusBreakdown[string(status)] = count
	}

	for _, wc := range r.Production {
		resp.Production = append(resp.Production, WorkCenterResponse{
			Name:        wc.Name,
			Output:      wc.Output,
			Utilization: wc.Utilization,
			Rating:      string(wc.Rating),
		})
	}

	for _, line := range r.Financial {
		resp.Financial = append(resp.Financial, FinancialLineResponse{
			Category:        line.Category,
			Budget:          line.Budget,
			Actual:          line.Actual,
			Variance:        line.Variance,
			VariancePercent: line.VariancePercent,
			Status:          string(line.Status),
		})
	}

	return resp
}

// ChainReportResponse is the result of a full ledger verification.
type ChainReportResponse struct {
	Consistent    bool     `json:"consistent"`
	ItemsChecked  int      `json:"itemsChecked"`
	MovementCount int      `json:"movementCount"`
	BrokenItems   []string `json:"brokenItems"`
}

// ChainReportFromUseCase converts a verification report to a response.
func ChainReportFromUseCase(r *usecase.ChainReport) *ChainReportResponse {
	broken := r.BrokenItems
	if broken == nil {
		broken = []string{}
	}

	return &ChainReportResponse{
		Consistent:    r.Consistent(),
		ItemsChecked:  r.ItemsChecked,
		MovementCount: r.MovementCount,
		BrokenItems:   broken,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
