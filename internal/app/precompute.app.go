package app

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"trackfolio/internal/calculator"
	"trackfolio/internal/db/models/postgres/public/model"
	"trackfolio/internal/db/models/postgres/public/table"
	"trackfolio/internal/domain"
	"trackfolio/internal/logger"
	"trackfolio/internal/repository"
	l1_service "trackfolio/internal/service/l1"
	l2_service "trackfolio/internal/service/l2"
	"trackfolio/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

// PrecomputeHandler rebuilds every derived series from the trade and cash
// ledgers: converted prices, daily/monthly value series, and the
// performance summary. Each invocation is one background unit of work;
// concurrent runs each get their own run row and race last-writer-wins on
// the derived output, with the clear-and-rewrite phase inside a single
// transaction so readers never observe a half-cleared store.
type PrecomputeHandler struct {
	Db                            *sql.DB
	TradeRepository               repository.TradeRepository
	CashFlowRepository            repository.CashFlowRepository
	PriceService                  l1_service.PriceService
	CurrencyService               l1_service.CurrencyService
	TickerPriceRepository         repository.TickerPriceRepository
	PortfolioValueRepository      repository.PortfolioValueRepository
	TickerDailyValueRepository    repository.TickerDailyValueRepository
	MonthlyContributionRepository repository.MonthlyContributionRepository
	PerformanceSummaryRepository  repository.PerformanceSummaryRepository
	PrecomputeRunRepository       repository.PrecomputeRunRepository
}

// Trigger kicks off a run in the background and returns immediately. There
// is no cancellation lever for an in-flight run, so the run gets a fresh
// detached context.
func (h PrecomputeHandler) Trigger(ctx context.Context) {
	log := logger.FromContext(ctx)
	runCtx := logger.NewContext(context.Background(), log)
	go func() {
		if err := h.Run(runCtx); err != nil {
			log.Errorf("precompute run failed: %v", err)
		}
	}()
}

// Run executes the full precompute sequence and records the outcome on the
// run log. An empty trade ledger completes immediately with empty results.
func (h PrecomputeHandler) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	run, err := h.PrecomputeRunRepository.Add(nil, model.PrecomputeRun{
		Status:    domain.RunStatusInProgress,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to start precompute run: %w", err)
	}
	log.Infof("starting precompute run %s", run.PrecomputeRunID)

	if err := h.run(ctx); err != nil {
		if markErr := h.markRun(run, domain.RunStatusFailed, err); markErr != nil {
			log.Errorf("failed to mark run %s failed: %v", run.PrecomputeRunID, markErr)
		}
		return err
	}

	if err := h.markRun(run, domain.RunStatusCompleted, nil); err != nil {
		return err
	}
	log.Infof("precompute run %s completed", run.PrecomputeRunID)

	return nil
}

func (h PrecomputeHandler) run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	trades, err := h.TradeRepository.List()
	if err != nil {
		return fmt.Errorf("failed to load trade ledger: %w", err)
	}
	externalFlows, err := h.CashFlowRepository.ListExternalFlows()
	if err != nil {
		return fmt.Errorf("failed to load external cash flows: %w", err)
	}

	if len(trades) == 0 {
		log.Info("trade ledger is empty - completing run with no derived data")
		return nil
	}

	tickers, minDate := discoverLedgerSpan(trades, externalFlows)
	maxDate := util.TruncateToDay(time.Now().UTC())
	dates := util.DateGrid(minDate, maxDate)

	series, err := h.PriceService.BuildPriceSeries(ctx, tickers, minDate, maxDate)
	if err != nil {
		return fmt.Errorf("failed to build price series: %w", err)
	}

	tickerPrices, convertedPrices := h.buildConvertedPrices(ctx, series, tickers, dates)

	valuation := l2_service.ComputeDailyValues(l2_service.DailyValuationInput{
		Tickers:         tickers,
		Dates:           dates,
		Trades:          trades,
		ExternalFlows:   externalFlows,
		ConvertedPrices: convertedPrices,
	})
	contributions := l2_service.ComputeMonthlyContributions(trades, externalFlows)

	totalValues := make([]decimal.Decimal, len(valuation.DailyValues))
	for i, v := range valuation.DailyValues {
		totalValues[i] = v.TotalValue
	}
	currentValue := decimal.Zero
	if len(totalValues) > 0 {
		currentValue = totalValues[len(totalValues)-1]
	}

	stats := calculator.CalculatePortfolioStats(externalFlows, currentValue, maxDate, dates, totalValues)

	return h.persist(ctx, tickerPrices, valuation, contributions, stats)
}

// buildConvertedPrices resolves one base-currency price per (ticker, date)
// cell, degrading to the raw price when conversion fails. Only cells with a
// nonzero raw price become stored rows; the full converted table is still
// returned for valuation.
func (h PrecomputeHandler) buildConvertedPrices(
	ctx context.Context,
	series *l1_service.PriceSeries,
	tickers []string,
	dates []time.Time,
) ([]model.TickerPrice, map[string]map[string]decimal.Decimal) {
	log := logger.FromContext(ctx)

	rows := []model.TickerPrice{}
	converted := map[string]map[string]decimal.Decimal{}

	for _, ticker := range tickers {
		currency := series.Currency(ticker)
		fxTicker, hasFX := h.CurrencyService.FXTicker(currency)

		tickerConverted := map[string]decimal.Decimal{}
		for _, date := range dates {
			price := series.Resolve(ticker, date)

			var fxRate *decimal.Decimal
			if hasFX {
				fxRate = series.FXRate(fxTicker, date)
			}

			conv, err := h.CurrencyService.Convert(price, currency, date, fxRate)
			if err != nil {
				if !price.IsZero() {
					log.Errorf("conversion failed for %s on %s: %v - using raw price", ticker, date.Format(time.DateOnly), err)
				}
				conv = price
			}

			tickerConverted[date.Format(time.DateOnly)] = conv

			if !price.IsZero() {
				rows = append(rows, model.TickerPrice{
					Ticker:         ticker,
					Date:           date,
					Currency:       currency,
					OriginalPrice:  price,
					ConvertedPrice: conv,
				})
			}
		}
		converted[ticker] = tickerConverted
	}

	return rows, converted
}

// persist clears and rewrites all derived series inside one transaction.
func (h PrecomputeHandler) persist(
	ctx context.Context,
	tickerPrices []model.TickerPrice,
	valuation l2_service.DailyValuationResult,
	contributions []domain.MonthlyContribution,
	stats domain.PerformanceSummary,
) error {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	clears := []func(*sql.Tx) error{
		h.TickerPriceRepository.Clear,
		h.PortfolioValueRepository.Clear,
		h.TickerDailyValueRepository.Clear,
		h.MonthlyContributionRepository.Clear,
		h.PerformanceSummaryRepository.Clear,
	}
	for _, clear := range clears {
		if err := clear(tx); err != nil {
			return err
		}
	}

	if err := h.TickerPriceRepository.Add(tx, tickerPrices); err != nil {
		return err
	}

	portfolioValues := make([]model.PortfolioValue, 0, len(valuation.DailyValues))
	for _, v := range valuation.DailyValues {
		portfolioValues = append(portfolioValues, model.PortfolioValue{
			Date:          v.Date,
			TotalValue:    v.TotalValue,
			InvestedValue: v.InvestedValue,
		})
	}
	if err := h.PortfolioValueRepository.Add(tx, portfolioValues); err != nil {
		return err
	}

	tickerValues := make([]model.TickerDailyValue, 0, len(valuation.TickerValues))
	for _, v := range valuation.TickerValues {
		tickerValues = append(tickerValues, model.TickerDailyValue{
			Date:   v.Date,
			Ticker: v.Ticker,
			Value:  v.Value,
		})
	}
	if err := h.TickerDailyValueRepository.Add(tx, tickerValues); err != nil {
		return err
	}

	monthlyModels := make([]model.MonthlyContribution, 0, len(contributions))
	for _, c := range contributions {
		monthlyModels = append(monthlyModels, model.MonthlyContribution{
			Month:    c.Month,
			NetValue: c.NetValue,
		})
	}
	if err := h.MonthlyContributionRepository.Add(tx, monthlyModels); err != nil {
		return err
	}

	summary := model.PerformanceSummary{
		Irr:                  stats.IRR,
		Twr:                  stats.TWR,
		AnnualizedVolatility: stats.AnnualizedVolatility,
		TotalInvested:        stats.TotalInvested,
		TotalWithdrawn:       stats.TotalWithdrawn,
		CurrentValue:         stats.CurrentValue,
		ProfitLoss:           stats.ProfitLoss,
		ReturnPercentage:     stats.ReturnPercentage,
		CalculatedAt:         stats.CalculatedAt,
	}
	if err := h.PerformanceSummaryRepository.Overwrite(tx, summary); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit derived series: %w", err)
	}

	return nil
}

func (h PrecomputeHandler) markRun(run *model.PrecomputeRun, status string, runErr error) error {
	now := time.Now().UTC()
	run.Status = status
	run.CompletedAt = &now
	if runErr != nil {
		msg := runErr.Error()
		run.LastError = &msg
	}

	_, err := h.PrecomputeRunRepository.Update(nil, run, postgres.ColumnList{
		table.PrecomputeRun.Status,
		table.PrecomputeRun.CompletedAt,
		table.PrecomputeRun.LastError,
		table.PrecomputeRun.ModifiedAt,
	})
	return err
}

// discoverLedgerSpan finds the distinct tickers traded and the earliest
// date across both ledgers. Trades without a resolved ticker still widen
// the date range but hold no position.
func discoverLedgerSpan(trades []domain.TradeRecord, flows []domain.CashFlowEvent) ([]string, time.Time) {
	tickerSet := map[string]bool{}
	minDate := util.TruncateToDay(trades[0].TradeDate)

	for _, t := range trades {
		if t.Ticker != "" {
			tickerSet[t.Ticker] = true
		}
		if d := util.TruncateToDay(t.TradeDate); d.Before(minDate) {
			minDate = d
		}
	}
	for _, f := range flows {
		if d := util.TruncateToDay(f.Date); d.Before(minDate) {
			minDate = d
		}
	}

	tickers := make([]string, 0, len(tickerSet))
	for ticker := range tickerSet {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	return tickers, minDate
}
