package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mfgops/stockledger/internal/domain"
)

// LevelLister supplies stock levels for the report charts.
type LevelLister interface {
	ListLevels(ctx context.Context, input ListLevelsInput) ([]*domain.StockLevel, error)
}

// ReportUseCase aggregates ledger, production and financial facts into
// period KPIs. Aggregation is a pure transform: no state is retained
// between calls, and all facts arrive already fetched.
type ReportUseCase struct {
	levels LevelLister
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(levels LevelLister) *ReportUseCase {
	return &ReportUseCase{levels: levels}
}

// BuildDashboardInput is one reporting period's fact set plus, when history
// exists, the immediately preceding period of equal length.
type BuildDashboardInput struct {
	Previous    *domain.PeriodFacts
	Current     domain.PeriodFacts
	WorkCenters []domain.WorkCenter
	Financial   []domain.FinancialLine
}

// WorkCenterReport is one work center with its utilization rating.
type WorkCenterReport struct {
	Name        string
	Rating      domain.UtilizationRating
	Output      int64
	Utilization float64
}

// FinancialReport is one financial line with its variance and status.
type FinancialReport struct {
	Category        string
	Status          domain.BudgetStatus
	Budget          decimal.Decimal
	Actual          decimal.Decimal
	Variance        decimal.Decimal
	VariancePercent decimal.Decimal
}

// CategoryCount is one slice of the stock-by-category chart.
type CategoryCount struct {
	Category string
	Items    int
	Units    int64
}

// ChartData holds the dashboard chart series, derived from current levels.
type ChartData struct {
	StockByCategory []CategoryCount
	StatusBreakdown map[domain.StockStatus]int
}

// DashboardReport is the aggregated KPI snapshot for one period.
type DashboardReport struct {
	Charts     ChartData
	Kpi        domain.KpiSnapshot
	Production []WorkCenterReport
	Financial  []FinancialReport
}

// BuildDashboard produces the KPI snapshot, chart series and classified
// production/financial breakdowns for the given period facts.
func (uc *ReportUseCase) BuildDashboard(ctx context.Context, input BuildDashboardInput) (*DashboardReport, error) {
	report := &DashboardReport{
		Kpi:        BuildKpiSnapshot(input.Current, input.Previous),
		Production: make([]WorkCenterReport, 0, len(input.WorkCenters)),
		Financial:  make([]FinancialReport, 0, len(input.Financial)),
	}

	for _, wc := range input.WorkCenters {
		report.Production = append(report.Production, WorkCenterReport{
			Name:        wc.Name,
			Output:      wc.Output,
			Utilization: wc.Utilization,
			Rating:      domain.ClassifyUtilization(wc.Utilization),
		})
	}

	for _, line := range input.Financial {
		report.Financial = append(report.Financial, FinancialReport{
			Category:        line.Category,
			Budget:          line.Budget,
			Actual:          line.Actual,
			Variance:        line.Variance(),
			VariancePercent: line.VariancePercent(),
			Status:          line.ClassifyVariance(),
		})
	}

	levels, err := uc.levels.ListLevels(ctx, ListLevelsInput{Limit: maxPageSize})
	if err != nil {
		return nil, err
	}

	report.Charts = buildCharts(levels)

	return report, nil
}

// BuildKpiSnapshot pairs each current-period metric with its predecessor.
// A missing prior period yields nil previous values, never zero, so "no
// prior data" stays distinguishable from "prior value was zero".
func BuildKpiSnapshot(current domain.PeriodFacts, previous *domain.PeriodFacts) domain.KpiSnapshot {
	point := func(cur float64, prev func(domain.PeriodFacts) float64) domain.MetricPoint {
		p := domain.MetricPoint{Current: cur}
		if previous != nil {
			v := prev(*previous)
			p.Previous = &v
		}

		return p
	}

	return domain.KpiSnapshot{
		OrdersCompleted:      point(current.OrdersCompleted, func(f domain.PeriodFacts) float64 { return f.OrdersCompleted }),
		TotalRevenue:         point(current.TotalRevenue, func(f domain.PeriodFacts) float64 { return f.TotalRevenue }),
		AvgLeadTime:          point(current.AvgLeadTime, func(f domain.PeriodFacts) float64 { return f.AvgLeadTime }),
		QualityScore:         point(current.QualityScore, func(f domain.PeriodFacts) float64 { return f.QualityScore }),
		OnTimeDelivery:       point(current.OnTimeDelivery, func(f domain.PeriodFacts) float64 { return f.OnTimeDelivery }),
		CustomerSatisfaction: point(current.CustomerSatisfaction, func(f domain.PeriodFacts) float64 { return f.CustomerSatisfaction }),
	}
}

func buildCharts(levels []*domain.StockLevel) ChartData {
	charts := ChartData{
		StatusBreakdown: map[domain.StockStatus]int{
			domain.StatusHealthy:  0,
			domain.StatusLow:      0,
			domain.StatusCritical: 0,
		},
	}

	byCategory := make(map[string]*CategoryCount)
	order := make([]string, 0)

	for _, level := range levels {
		charts.StatusBreakdown[level.Status]++

		slice, ok := byCategory[level.Category]
		if !ok {
			slice = &CategoryCount{Category: level.Category}
			byCategory[level.Category] = slice
			order = append(order, level.Category)
		}

		slice.Items++
		slice.Units += level.CurrentStock
	}

	for _, category := range order {
		charts.StockByCategory = append(charts.StockByCategory, *byCategory[category])
	}

	return charts
}
