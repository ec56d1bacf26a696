package calculator

import (
	"math"
	"sort"
	"time"

	"trackfolio/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const (
	daysPerYear        = 365.25
	xirrTolerance      = 1e-6
	xirrMaxIter        = 100
	tradingDaysPerYear = 252
)

// CashFlow is one money-weighted return input, signed from the investor's
// perspective: money handed to the portfolio is negative, money received
// back (including the terminal portfolio value) is positive.
type CashFlow struct {
	Date   time.Time
	Amount float64
}

// CalculateXIRR solves sum(CF_i * (1+r)^-t_i) = 0 for r with Newton-Raphson,
// where t_i is the event's distance from the first event in years
// (Actual/365.25). Degenerate inputs - fewer than two flows, or all flows
// with the same sign - yield 0.0, never an error, since no root is
// guaranteed to exist.
func CalculateXIRR(flows []CashFlow, guess float64) float64 {
	if len(flows) < 2 {
		return 0.0
	}

	sorted := make([]CashFlow, len(flows))
	copy(sorted, flows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	startDate := sorted[0].Date
	years := make([]float64, len(sorted))
	hasPos, hasNeg := false, false
	for i, f := range sorted {
		years[i] = f.Date.Sub(startDate).Hours() / 24 / daysPerYear
		if f.Amount > 0 {
			hasPos = true
		}
		if f.Amount < 0 {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		return 0.0
	}

	rate := guess
	for iter := 0; iter < xirrMaxIter; iter++ {
		// a step below -100% would make (1+r) non-positive; clamp and retry
		if rate <= -1.0 {
			rate = -0.99
		}

		fVal := 0.0
		dfVal := 0.0
		base := 1.0 + rate

		for i, f := range sorted {
			factor := math.Pow(base, -years[i])
			fVal += f.Amount * factor
			dfVal += f.Amount * -years[i] * factor / base
		}

		if math.Abs(fVal) < xirrTolerance {
			return rate
		}
		if math.Abs(dfVal) < 1e-9 {
			break
		}

		newRate := rate - fVal/dfVal
		if math.Abs(newRate-rate) < xirrTolerance {
			return newRate
		}
		rate = newRate
	}

	return rate
}

// DatedFlow is a net external cash movement on a date, signed from the
// portfolio's perspective (positive = inflow to the portfolio).
type DatedFlow struct {
	Date   time.Time
	Amount decimal.Decimal
}

// CalculateTWR chain-links sub-period returns between break dates: the
// first valued date, the valuation date, and every date carrying a nonzero
// net external flow, restricted to dates that actually have a value. Flows
// are assumed to land at period end, so each sub-period return is
// (endValue - flowAtEnd) / startValue - 1. The linked return is annualized
// over the elapsed calendar days at Actual/365.25.
func CalculateTWR(dailyDates []time.Time, dailyValues []decimal.Decimal, flows []DatedFlow, currentDate time.Time) float64 {
	if len(dailyDates) == 0 || len(dailyValues) == 0 || len(dailyDates) != len(dailyValues) {
		return 0.0
	}

	valueByDate := map[string]decimal.Decimal{}
	for i, d := range dailyDates {
		valueByDate[d.Format(time.DateOnly)] = dailyValues[i]
	}

	sortedDates := make([]time.Time, len(dailyDates))
	copy(sortedDates, dailyDates)
	sort.SliceStable(sortedDates, func(i, j int) bool {
		return sortedDates[i].Before(sortedDates[j])
	})
	if len(sortedDates) < 2 {
		return 0.0
	}
	startDate := sortedDates[0]

	flowByDate := map[string]decimal.Decimal{}
	for _, f := range flows {
		key := f.Date.Format(time.DateOnly)
		flowByDate[key] = flowByDate[key].Add(f.Amount)
	}

	breakDateSet := map[string]bool{
		startDate.Format(time.DateOnly):   true,
		currentDate.Format(time.DateOnly): true,
	}
	for key := range flowByDate {
		breakDateSet[key] = true
	}

	breakDates := []string{}
	for key := range breakDateSet {
		if _, ok := valueByDate[key]; ok {
			breakDates = append(breakDates, key)
		}
	}
	sort.Strings(breakDates)

	if len(breakDates) < 2 {
		return 0.0
	}

	twr := 1.0
	for i := 0; i < len(breakDates)-1; i++ {
		startVal := valueByDate[breakDates[i]]
		endVal := valueByDate[breakDates[i+1]]

		if startVal.IsZero() {
			continue
		}

		endValBeforeFlow := endVal.Sub(flowByDate[breakDates[i+1]])
		growth, _ := endValBeforeFlow.Div(startVal).Float64()
		twr *= growth
	}

	twr -= 1.0
	days := currentDate.Sub(startDate).Hours() / 24
	if days <= 0 || (1.0+twr) <= 0 {
		return 0.0
	}

	return math.Pow(1.0+twr, daysPerYear/days) - 1.0
}

// AnnualizedVolatility is the sample standard deviation of day-over-day
// returns of the value series, scaled by sqrt(252). Days with a zero
// starting value are skipped.
func AnnualizedVolatility(dailyValues []decimal.Decimal) float64 {
	returns := []float64{}
	for i := 1; i < len(dailyValues); i++ {
		if dailyValues[i-1].IsZero() {
			continue
		}
		r, _ := dailyValues[i].Div(dailyValues[i-1]).Float64()
		returns = append(returns, r-1.0)
	}
	if len(returns) < 2 {
		return 0.0
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0.0
	}

	return stdev * math.Sqrt(tradingDaysPerYear)
}

// CalculatePortfolioStats derives the full performance summary from the
// external cash-flow ledger and the computed daily value series. XIRR flows
// are negated to the investor's perspective, with a synthetic terminal
// inflow of the current portfolio value on the valuation date.
func CalculatePortfolioStats(
	events []domain.CashFlowEvent,
	currentValue decimal.Decimal,
	currentDate time.Time,
	dailyDates []time.Time,
	dailyValues []decimal.Decimal,
) domain.PerformanceSummary {
	totalInvested := decimal.Zero
	totalWithdrawn := decimal.Zero
	xirrFlows := make([]CashFlow, 0, len(events)+1)
	twrFlows := make([]DatedFlow, 0, len(events))

	for _, e := range events {
		if e.NetFlow.GreaterThan(decimal.Zero) {
			totalInvested = totalInvested.Add(e.NetFlow)
		} else {
			totalWithdrawn = totalWithdrawn.Add(e.NetFlow.Abs())
		}

		amount, _ := e.NetFlow.Neg().Float64()
		xirrFlows = append(xirrFlows, CashFlow{Date: e.Date, Amount: amount})
		twrFlows = append(twrFlows, DatedFlow{Date: e.Date, Amount: e.NetFlow})
	}

	terminal, _ := currentValue.Float64()
	xirrFlows = append(xirrFlows, CashFlow{Date: currentDate, Amount: terminal})

	irr := CalculateXIRR(xirrFlows, 0.1)
	twr := CalculateTWR(dailyDates, dailyValues, twrFlows, currentDate)
	volatility := AnnualizedVolatility(dailyValues)

	profitLoss := currentValue.Add(totalWithdrawn).Sub(totalInvested)
	returnPercentage := decimal.Zero
	if !totalInvested.IsZero() {
		returnPercentage = profitLoss.Div(totalInvested)
	}

	return domain.PerformanceSummary{
		IRR:                  irr,
		TWR:                  twr,
		AnnualizedVolatility: volatility,
		TotalInvested:        totalInvested,
		TotalWithdrawn:       totalWithdrawn,
		CurrentValue:         currentValue,
		ProfitLoss:           profitLoss,
		ReturnPercentage:     returnPercentage,
		CalculatedAt:         currentDate,
	}
}
