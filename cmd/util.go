package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"trackfolio/internal/app"
	"trackfolio/internal/repository"
	l1_service "trackfolio/internal/service/l1"
	"trackfolio/internal/util"

	_ "github.com/lib/pq"
)

// Handler bundles the wired dependencies for the CLI entrypoints.
type Handler struct {
	Db *sql.DB

	PrecomputeHandler app.PrecomputeHandler

	TradeRepository               repository.TradeRepository
	CashFlowRepository            repository.CashFlowRepository
	TickerPriceRepository         repository.TickerPriceRepository
	PortfolioValueRepository      repository.PortfolioValueRepository
	TickerDailyValueRepository    repository.TickerDailyValueRepository
	MonthlyContributionRepository repository.MonthlyContributionRepository
	PerformanceSummaryRepository  repository.PerformanceSummaryRepository
	PrecomputeRunRepository       repository.PrecomputeRunRepository
}

func CloseDependencies(handler *Handler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Handler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	tradeRepository := repository.NewTradeRepository(dbConn)
	cashFlowRepository := repository.NewCashFlowRepository(dbConn)
	tickerPriceRepository := repository.NewTickerPriceRepository(dbConn)
	portfolioValueRepository := repository.NewPortfolioValueRepository(dbConn)
	tickerDailyValueRepository := repository.NewTickerDailyValueRepository(dbConn)
	monthlyContributionRepository := repository.NewMonthlyContributionRepository(dbConn)
	performanceSummaryRepository := repository.NewPerformanceSummaryRepository(dbConn)
	precomputeRunRepository := repository.NewPrecomputeRunRepository(dbConn)
	marketDataRepository := repository.NewMarketDataRepository()

	currencyService := l1_service.NewCurrencyService(l1_service.DefaultFXTable())
	priceService := l1_service.NewPriceService(
		marketDataRepository,
		currencyService,
		l1_service.DefaultPriceLookupConfig(),
	)

	precomputeHandler := app.PrecomputeHandler{
		Db:                            dbConn,
		TradeRepository:               tradeRepository,
		CashFlowRepository:            cashFlowRepository,
		PriceService:                  priceService,
		CurrencyService:               currencyService,
		TickerPriceRepository:         tickerPriceRepository,
		PortfolioValueRepository:      portfolioValueRepository,
		TickerDailyValueRepository:    tickerDailyValueRepository,
		MonthlyContributionRepository: monthlyContributionRepository,
		PerformanceSummaryRepository:  performanceSummaryRepository,
		PrecomputeRunRepository:       precomputeRunRepository,
	}

	return &Handler{
		Db:                            dbConn,
		PrecomputeHandler:             precomputeHandler,
		TradeRepository:               tradeRepository,
		CashFlowRepository:            cashFlowRepository,
		TickerPriceRepository:         tickerPriceRepository,
		PortfolioValueRepository:      portfolioValueRepository,
		TickerDailyValueRepository:    tickerDailyValueRepository,
		MonthlyContributionRepository: monthlyContributionRepository,
		PerformanceSummaryRepository:  performanceSummaryRepository,
		PrecomputeRunRepository:       precomputeRunRepository,
	}, nil
}
