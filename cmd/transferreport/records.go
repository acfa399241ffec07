package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"transferreport/internal/cli"
	"transferreport/internal/service"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Show the stored transfer-record inventory",
		RunE:  runRecords,
	}

	cmd.Flags().Int("recent", 10, "number of most recent records to list")

	return cmd
}

func runRecords(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	total, err := store.CountRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%d transfer records stored", total)))
	if total == 0 {
		return nil
	}

	limit, _ := cmd.Flags().GetInt("recent")
	records, err := store.GetRecords(ctx, service.RecordFilter{})
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	start := len(records) - limit
	if start < 0 {
		start = 0
	}
	for _, rec := range records[start:] {
		placement := "-"
		if rec.PlacementFoundAt != nil {
			placement = rec.PlacementFoundAt.Format(time.DateTime)
		}
		fmt.Printf("  %s  %-24s  %-30s placed: %s\n",
			rec.CreatedAt.Format(time.DateTime),
			rec.Status,
			rec.RequestedClinic,
			placement)
	}

	return nil
}
