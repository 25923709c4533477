package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// MetricPoint pairs a KPI's current-period value with the immediately
// preceding period's value. Previous is nil when no prior period exists,
// which is distinct from a prior value of zero.
type MetricPoint struct {
	Previous *float64
	Current  float64
}

// KpiSnapshot is one reporting period's KPI set.
type KpiSnapshot struct {
	OrdersCompleted      MetricPoint
	TotalRevenue         MetricPoint
	AvgLeadTime          MetricPoint
	QualityScore         MetricPoint
	OnTimeDelivery       MetricPoint
	CustomerSatisfaction MetricPoint
}

// PeriodFacts is the fact set for one reporting period, supplied by external
// collaborators (production telemetry and financial ledgers).
type PeriodFacts struct {
	OrdersCompleted      float64
	TotalRevenue         float64
	AvgLeadTime          float64
	QualityScore         float64
	OnTimeDelivery       float64
	CustomerSatisfaction float64
}

// PercentageChange returns the relative change from previous to current as a
// percentage, rounded half away from zero to one decimal place. A nil or
// zero previous yields 0, guarding division by zero.
func PercentageChange(current float64, previous *float64) float64 {
	if previous == nil || *previous == 0 {
		return 0
	}

	change := (current - *previous) / *previous * 100

	return math.Round(change*10) / 10
}

// BudgetStatus classifies a financial line item's variance.
type BudgetStatus string

const (
	BudgetUnder BudgetStatus = "Under Budget"
	BudgetNear  BudgetStatus = "Near Budget"
	BudgetOver  BudgetStatus = "Over Budget"
)

// FinancialLine is one budget category with its actual spend.
// Variance is actual minus budget: positive means over budget.
type FinancialLine struct {
	Category string
	Budget   decimal.Decimal
	Actual   decimal.Decimal
}

// Variance returns actual minus budget.
func (f FinancialLine) Variance() decimal.Decimal {
	return f.Actual.Sub(f.Budget)
}

// VariancePercent returns the variance as a percentage of budget. A zero
// budget uses 1 as the denominator to avoid division by zero.
func (f FinancialLine) VariancePercent() decimal.Decimal {
	denom := f.Budget
	if denom.IsZero() {
		denom = decimal.NewFromInt(1)
	}

	return f.Variance().Div(denom).Mul(decimal.NewFromInt(100))
}

// ClassifyVariance maps a financial line to a budget status. At or under
// budget is Under; within 5% over is Near; beyond that is Over.
func (f FinancialLine) ClassifyVariance() BudgetStatus {
	if f.Variance().LessThanOrEqual(decimal.Zero) {
		return BudgetUnder
	}

	if f.VariancePercent().Abs().LessThanOrEqual(decimal.NewFromInt(5)) {
		return BudgetNear
	}

	return BudgetOver
}

// UtilizationRating classifies work-center utilization.
type UtilizationRating string

const (
	UtilizationOptimal UtilizationRating = "Optimal"
	UtilizationGood    UtilizationRating = "Good"
	UtilizationPoor    UtilizationRating = "Poor"
)

// ClassifyUtilization rates a utilization percentage. Boundaries are
// lower-inclusive: exactly 80 is Good, exactly 50 is Poor.
func ClassifyUtilization(utilization float64) UtilizationRating {
	switch {
	case utilization > 80:
		return UtilizationOptimal
	case utilization > 50:
		return UtilizationGood
	default:
		return UtilizationPoor
	}
}

// WorkCenter is one production work center's period telemetry.
type WorkCenter struct {
	Name        string
	Output      int64
	Utilization float64
}
