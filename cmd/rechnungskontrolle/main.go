package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/config"
	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
	"github.com/rolandertl/uberall-rechnungskontrolle/internal/gateway"
	"github.com/rolandertl/uberall-rechnungskontrolle/internal/report"
	"github.com/rolandertl/uberall-rechnungskontrolle/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		billingPath string
		crmPath     string
		outPath     string
		configPath  string
		jsonOutput  bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "rechnungskontrolle",
		Short: "Prüft uberall-Abrechnungen gegen den CRM-Workflow-Status",
		Long: `rechnungskontrolle gleicht das uberall Billing-Export (XLSX) mit dem
CRM-Projektexport (CSV) ab und meldet Einträge, deren Billing-Status nicht
zum Workflow-Status passt.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			defer logger.Sync() //nolint:errcheck

			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}

			repo := gateway.NewFileExportRepository(cfg.Salespartners, logger)
			uc := usecase.NewReconciliationUseCase(repo, logger)

			result, err := uc.Run(cmd.Context(), billingPath, crmPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			} else {
				report.WriteSummary(cmd.OutOrStdout(), result)
				report.WriteIssues(cmd.OutOrStdout(), result, cfg.DashboardBaseURL)
			}

			if outPath != "" {
				if err := writeReportFile(outPath, result); err != nil {
					return err
				}
				logger.Info("report written", zap.String("file", outPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&billingPath, "billing", "", "path to the uberall billing XLSX export (required)")
	cmd.Flags().StringVar(&crmPath, "crm", "", "path to the CRM CSV export (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the CSV control report to this file")
	cmd.Flags().StringVar(&configPath, "config", "", "optional yaml config file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the analysis result as JSON instead of tables")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("billing")
	_ = cmd.MarkFlagRequired("crm")

	return cmd
}

func writeReportFile(path string, result *domain.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer f.Close()

	if err := report.WriteCSV(f, result, report.NewRunInfo()); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.Must(cfg.Build())
}
