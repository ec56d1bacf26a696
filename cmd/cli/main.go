package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"trackfolio/cmd"
	"trackfolio/internal/ingest"
	"trackfolio/internal/logger"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var hundred = decimal.NewFromInt(100)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trackfolio",
		Short: "precomputes portfolio valuation and performance series",
	}
	rootCmd.AddCommand(precomputeCmd(), statusCmd(), summaryCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func precomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "precompute",
		Short: "rebuild all derived series from the ledgers",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			ctx := logger.NewContext(context.Background(), logger.New())
			return handler.PrecomputeHandler.Run(ctx)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show the latest precompute run",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			run, err := handler.PrecomputeRunRepository.GetLatest()
			if err != nil {
				return err
			}

			fmt.Printf("run %s: %s (started %s)\n", run.PrecomputeRunID, run.Status, run.StartedAt.Format(time.RFC3339))
			if run.CompletedAt != nil {
				fmt.Printf("completed %s\n", run.CompletedAt.Format(time.RFC3339))
			}
			if run.LastError != nil {
				fmt.Printf("error: %s\n", *run.LastError)
			}
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "show the precomputed performance summary",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			summary, err := handler.PerformanceSummaryRepository.Get()
			if err != nil {
				return err
			}

			fmt.Printf("current value:    %s\n", summary.CurrentValue.StringFixed(2))
			fmt.Printf("total invested:   %s\n", summary.TotalInvested.StringFixed(2))
			fmt.Printf("total withdrawn:  %s\n", summary.TotalWithdrawn.StringFixed(2))
			fmt.Printf("profit/loss:      %s\n", summary.ProfitLoss.StringFixed(2))
			fmt.Printf("return:           %s%%\n", summary.ReturnPercentage.Mul(hundred).StringFixed(2))
			fmt.Printf("irr:              %.4f\n", summary.IRR)
			fmt.Printf("twr (annualized): %.4f\n", summary.TWR)
			fmt.Printf("volatility:       %.4f\n", summary.AnnualizedVolatility)
			fmt.Printf("calculated at:    %s\n", summary.CalculatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var tradesPath, cashPath string

	c := &cobra.Command{
		Use:   "seed",
		Short: "import trading and cash statement CSVs into the ledgers",
		RunE: func(c *cobra.Command, args []string) error {
			if tradesPath == "" && cashPath == "" {
				return fmt.Errorf("at least one of --trades or --cash is required")
			}

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			if tradesPath != "" {
				f, err := os.Open(tradesPath)
				if err != nil {
					return err
				}
				defer f.Close()

				trades, err := ingest.LoadTrades(f)
				if err != nil {
					return err
				}
				if err := handler.TradeRepository.Add(nil, trades); err != nil {
					return err
				}
				log.Printf("imported %d trades", len(trades))
			}

			if cashPath != "" {
				f, err := os.Open(cashPath)
				if err != nil {
					return err
				}
				defer f.Close()

				events, err := ingest.LoadCashFlows(f)
				if err != nil {
					return err
				}
				if err := handler.CashFlowRepository.Add(nil, events); err != nil {
					return err
				}
				log.Printf("imported %d cash flow events", len(events))
			}

			return nil
		},
	}
	c.Flags().StringVar(&tradesPath, "trades", "", "path to the trading statement csv")
	c.Flags().StringVar(&cashPath, "cash", "", "path to the cash statement csv")

	return c
}
