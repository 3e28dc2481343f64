package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/utils/export"
	"github.com/SscSPs/books_ledger/internal/utils/period"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var (
	exportPeriod string
	exportYear   int
	exportOut    string
	exportSide   string
)

type exporter func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error)

var exporters = map[string]exporter{
	"trial-balance": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		r, err := svc.Reporting.TrialBalance(ctx, tenantID, exportPeriod, operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.TrialBalance(r)
	},
	"day-book": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		from, to, ok := strings.Cut(exportPeriod, period.RangeSeparator)
		if !ok {
			return nil, fmt.Errorf("day-book needs --period start%send", period.RangeSeparator)
		}
		r, err := svc.Reporting.DayBook(ctx, tenantID, from, to, operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.DayBook(r)
	},
	"trading-account": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		r, err := svc.Reporting.TradingAccount(ctx, tenantID, exportPeriod, operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.TradingAccount(r)
	},
	"profit-and-loss": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		r, err := svc.Reporting.ProfitAndLoss(ctx, tenantID, exportPeriod, operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.ProfitAndLoss(r)
	},
	"balance-sheet": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		r, err := svc.Reporting.BalanceSheet(ctx, tenantID, exportPeriod, operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.BalanceSheet(r)
	},
	"receivable-aging": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		r, err := svc.Reporting.ReceivableAging(ctx, tenantID, exportYear, operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.ReceivableAging(r)
	},
	"payable-aging": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		r, err := svc.Reporting.PayableAging(ctx, tenantID, exportYear, operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.PayableAging(r)
	},
	"stock-valuation": func(ctx context.Context, svc *portssvc.ServiceContainer) (*excelize.File, error) {
		v, err := svc.Stock.Valuation(ctx, tenantID, exportPeriod, domain.ValuationSide(exportSide), operatorUserID)
		if err != nil {
			return nil, err
		}
		return export.StockValuation(v)
	},
}

func reportNames() []string {
	names := make([]string, 0, len(exporters))
	for n := range exporters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var exportCmd = &cobra.Command{
	Use:   "export <report>",
	Short: "Write a report workbook",
	Long: `Renders one report as an xlsx workbook.

Aging reports take --year, every other report takes --period.
The day book needs an explicit range, e.g. --period 01-03-2024..31-03-2024.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: reportNames(),
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportPeriod, "period", "", "period token (YYYY-MM, YYYY or date..date)")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "calendar year of aging reports")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file")
	exportCmd.Flags().StringVar(&exportSide, "side", string(domain.SideClosing), "stock valuation side (opening or closing)")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := requireTenant(); err != nil {
		return err
	}
	report := args[0]
	if strings.HasSuffix(report, "-aging") {
		if exportYear == 0 {
			return fmt.Errorf("%s needs --year", report)
		}
	} else if exportPeriod == "" {
		return fmt.Errorf("%s needs --period", report)
	}

	return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
		f, err := exporters[report](cmd.Context(), svc)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				slog.Warn("Failed to close workbook", "error", cerr)
			}
		}()
		if err := f.SaveAs(exportOut); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", report, exportOut)
		return nil
	})
}
