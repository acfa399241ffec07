package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"transferreport/internal/cli"
	"transferreport/internal/config"
	"transferreport/internal/ingest"
	"transferreport/internal/model"
)

// Rows saved per storage round-trip.
const importBatchSize = 200

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <registry.xlsx>",
		Short: "Import a transfer-request registry export",
		Long: `Import reads a registry XLSX export, normalizes its values per the
configuration, and stores the records. Rows already imported (by content
hash) are skipped, so re-importing an updated export is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	cfg := config.Load(viper.GetViper())
	reader := ingest.NewReader(cfg)

	records, err := reader.ReadRecords(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		fmt.Println(cli.FormatWarning("no records found in " + path))
		return nil
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(records),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing records..."),
	)

	imported := 0
	for start := 0; start < len(records); start += importBatchSize {
		end := start + importBatchSize
		if end > len(records) {
			end = len(records)
		}

		batch := usableRecords(records[start:end])
		if len(batch) > 0 {
			n, err := store.SaveRecords(ctx, batch)
			if err != nil {
				return fmt.Errorf("failed to save records: %w", err)
			}
			imported += n
		}
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	skipped := len(records) - imported
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d records (%d skipped) from %s",
		imported, skipped, path)))
	return nil
}

// usableRecords drops rows the storage layer would reject, so one ragged
// export row cannot abort an import.
func usableRecords(records []model.TransferRecord) []model.TransferRecord {
	out := make([]model.TransferRecord, 0, len(records))
	for _, rec := range records {
		if rec.CreatedAt.IsZero() || rec.Status == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}
