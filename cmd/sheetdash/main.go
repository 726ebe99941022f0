// Package main provides the CLI entry point for sheetdash-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/config"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/fetch"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/output"
)

var (
	configPath string
	outputPath string
	pretty     bool
	sheetsDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetdash",
		Short: "Ingest published construction-tracker spreadsheets",
		Long: `sheetdash-go fetches published Google Sheets exports for every configured package,
extracts tasks, compliance flags and IPC statuses, and outputs a JSON snapshot.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./sheetdash.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one aggregation and print the snapshot",
		Args:  cobra.NoArgs,
		RunE:  runFetch,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the snapshot cache refreshed and rewrite the output on every refresh",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [export-url]",
		Short: "Fetch one published export and print its decoded worksheets",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	rootCmd.AddCommand(fetchCmd, watchCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (config.Config, *slog.Logger, func() error, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, cleanup := config.SetupLogger(cfg.Log)
	slog.SetDefault(logger)
	return cfg, logger, cleanup, nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, logger, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	dash, err := sheetdash.New(cfg, logger, nil)
	if err != nil {
		return err
	}

	snap := dash.Aggregator.Aggregate(cmd.Context())
	return writeSnapshot(snap)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dash, err := sheetdash.New(cfg, logger, func(snap *models.Snapshot) {
		if err := writeSnapshot(snap); err != nil {
			logger.Error("failed to write snapshot", "error", err)
		}
	})
	if err != nil {
		return err
	}
	if cfg.RefreshInterval <= 0 {
		logger.Warn("refresh_interval is 0, only the initial snapshot will be written")
	}

	if err := dash.Cache.Start(ctx); err != nil {
		return fmt.Errorf("initial refresh failed: %w", err)
	}
	<-ctx.Done()
	return dash.Cache.Close()
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, logger, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	fetcher := fetch.New(fetch.Options{
		Timeout:      cfg.HTTPTimeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	})
	wb, err := fetcher.Fetch(cmd.Context(), models.Source{PackageID: "inspect", ExportURL: args[0]})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
		return nil
	}

	jsonData, err := output.WorkbookToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonData)
}

func writeSnapshot(snap *models.Snapshot) error {
	jsonData, err := output.ToJSON(snap, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonData)
}

func writeOutput(jsonData []byte) error {
	if outputPath == "" {
		fmt.Println(string(jsonData))
		return nil
	}
	// Write to a temp file first so readers never see a partial snapshot
	tmp := outputPath + ".tmp"
	if err := os.WriteFile(tmp, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp, outputPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
