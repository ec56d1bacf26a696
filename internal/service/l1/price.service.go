package l1_service

import (
	"context"
	"time"

	"trackfolio/internal/logger"
	"trackfolio/internal/repository"

	"github.com/shopspring/decimal"
)

// PriceLookupConfig bounds the fallback search when a (ticker, date) price
// is missing. The window is asymmetric: a long backward scan implements
// "last known price", a short forward scan covers start-of-history gaps.
// LookbackBufferDays pads the provider fetch so the first grid dates have
// something to fall back onto.
type PriceLookupConfig struct {
	BackwardDays       int
	ForwardDays        int
	LookbackBufferDays int
}

func DefaultPriceLookupConfig() PriceLookupConfig {
	return PriceLookupConfig{
		BackwardDays:       90,
		ForwardDays:        30,
		LookbackBufferDays: 7,
	}
}

type PriceService interface {
	// BuildPriceSeries fetches daily prices for every ticker over the
	// range, plus any FX tickers needed by non-base currencies it
	// encounters. Provider failures are per-ticker and non-fatal: the
	// ticker simply ends up with no observations.
	BuildPriceSeries(ctx context.Context, tickers []string, start, end time.Time) (*PriceSeries, error)
}

type priceServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	CurrencyService      CurrencyService
	Config               PriceLookupConfig
}

func NewPriceService(marketData repository.MarketDataRepository, currencyService CurrencyService, config PriceLookupConfig) PriceService {
	return priceServiceHandler{
		MarketDataRepository: marketData,
		CurrencyService:      currencyService,
		Config:               config,
	}
}

// PriceSeries is the sparse per-ticker price table for one precompute run.
// FX tickers live in the same table as regular tickers.
type PriceSeries struct {
	prices     map[string]map[string]decimal.Decimal
	currencies map[string]string
	config     PriceLookupConfig
}

func (h priceServiceHandler) BuildPriceSeries(ctx context.Context, tickers []string, start, end time.Time) (*PriceSeries, error) {
	log := logger.FromContext(ctx)
	fetchStart := start.AddDate(0, 0, -h.Config.LookbackBufferDays)

	series := &PriceSeries{
		prices:     map[string]map[string]decimal.Decimal{},
		currencies: map[string]string{},
		config:     h.Config,
	}

	fxTickersNeeded := map[string]bool{}
	for _, ticker := range tickers {
		observations, err := h.MarketDataRepository.GetHistoricalPrices(ctx, ticker, fetchStart, end)
		if err != nil {
			log.Errorf("failed to fetch prices for %s: %v", ticker, err)
			continue
		}
		log.Infof("fetched %d prices for %s", len(observations), ticker)

		priceMap := map[string]decimal.Decimal{}
		currency := BaseCurrency
		for _, o := range observations {
			priceMap[o.Date.Format(time.DateOnly)] = o.Price
			// last non-empty currency wins when a ticker reports
			// mixed currencies - known provider quirk
			if o.Currency != "" {
				currency = o.Currency
			}
		}
		series.prices[ticker] = priceMap
		series.currencies[ticker] = currency

		if currency != BaseCurrency && currency != baseCurrencyMinorAlias {
			if fx, ok := h.CurrencyService.FXTicker(currency); ok {
				fxTickersNeeded[fx] = true
			}
		}
	}

	for fx := range fxTickersNeeded {
		if _, ok := series.prices[fx]; ok {
			continue
		}
		log.Infof("fetching FX rates for %s", fx)
		observations, err := h.MarketDataRepository.GetHistoricalPrices(ctx, fx, fetchStart, end)
		if err != nil {
			log.Errorf("failed to fetch FX rates for %s: %v", fx, err)
			continue
		}
		rateMap := map[string]decimal.Decimal{}
		for _, o := range observations {
			rateMap[o.Date.Format(time.DateOnly)] = o.Price
		}
		series.prices[fx] = rateMap
	}

	return series, nil
}

// Resolve returns the price for the ticker on the date, falling back to the
// nearest nonzero observation: backward first, then forward. It returns zero
// when nothing is found inside the window - never an error, so a priceless
// ticker contributes zero value downstream.
func (ps *PriceSeries) Resolve(ticker string, date time.Time) decimal.Decimal {
	priceMap, ok := ps.prices[ticker]
	if !ok {
		return decimal.Zero
	}

	checkDate := date
	for i := 0; i < ps.config.BackwardDays; i++ {
		if p, ok := priceMap[checkDate.Format(time.DateOnly)]; ok && !p.IsZero() {
			return p
		}
		checkDate = checkDate.AddDate(0, 0, -1)
	}

	checkDate = date
	for i := 0; i < ps.config.ForwardDays; i++ {
		if p, ok := priceMap[checkDate.Format(time.DateOnly)]; ok && !p.IsZero() {
			return p
		}
		checkDate = checkDate.AddDate(0, 0, 1)
	}

	return decimal.Zero
}

// Currency returns the currency the ticker's prices are quoted in,
// defaulting to the base currency.
func (ps *PriceSeries) Currency(ticker string) string {
	if c, ok := ps.currencies[ticker]; ok {
		return c
	}
	return BaseCurrency
}

// FXRate resolves an FX rate with the same fallback rules as prices.
// It returns nil when no nonzero rate exists inside the window.
func (ps *PriceSeries) FXRate(fxTicker string, date time.Time) *decimal.Decimal {
	rate := ps.Resolve(fxTicker, date)
	if rate.IsZero() {
		return nil
	}
	return &rate
}

// NewPriceSeriesFromObservations builds a series directly from observations,
// bypassing the provider. Used by tests and by callers that already hold
// fetched data.
func NewPriceSeriesFromObservations(prices map[string]map[string]decimal.Decimal, currencies map[string]string, config PriceLookupConfig) *PriceSeries {
	if currencies == nil {
		currencies = map[string]string{}
	}
	return &PriceSeries{
		prices:     prices,
		currencies: currencies,
		config:     config,
	}
}
