package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"transferreport/internal/cli"
	"transferreport/internal/common"
	"transferreport/internal/config"
	"transferreport/internal/engine"
	"transferreport/internal/ingest"
	"transferreport/internal/model"
	"transferreport/internal/service"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the daily analysis and produce a report",
		Long: `Analyze classifies every known transfer record against one analysis
day's 08:00-to-08:00 window, partitions the result by region, and computes
the wait-time statistics the daily report is built from. The report is
stored and can additionally be written out as JSON.`,
		RunE: runAnalyze,
	}

	cmd.Flags().String("date", "", "analysis date (YYYY-MM-DD, default: today)")
	cmd.Flags().String("input", "", "analyze a registry XLSX directly instead of the database")
	cmd.Flags().String("output", "", "write the full report document to this JSON file")
	cmd.Flags().Bool("no-save", false, "skip storing the report")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	day, err := resolveAnalysisDate(cmd)
	if err != nil {
		return err
	}

	cfg := config.Load(viper.GetViper())

	var records []model.TransferRecord
	inputPath, _ := cmd.Flags().GetString("input")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if inputPath != "" {
		var source service.RecordSource = ingest.NewReader(cfg)
		records, err = source.ReadRecords(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", inputPath, err)
		}
	}

	var store service.Storage
	if inputPath == "" || !noSave {
		s, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		store = s
	}

	if inputPath == "" {
		records, err = store.GetRecords(ctx, service.RecordFilter{})
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}
		if len(records) == 0 {
			return common.NewUserError("no transfer records stored; run import first", common.ErrNoRecords)
		}
	}

	report, err := engine.New(cfg).Analyze(records, day)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if !report.Classified {
		fmt.Println(cli.FormatWarning("analysis produced an unclassified result; check the input"))
	}

	if !noSave {
		if err := store.SaveReport(ctx, report); err != nil {
			return fmt.Errorf("failed to store report: %w", err)
		}
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		if err := writeReportJSON(report, outputPath); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess("report written to " + outputPath))
	}

	fmt.Println(cli.RenderReportSummary(report))
	return nil
}

func resolveAnalysisDate(cmd *cobra.Command) (time.Time, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid analysis date %q (want YYYY-MM-DD): %w", dateStr, err)
	}
	return day, nil
}

func writeReportJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
