package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nocogo/internal/importer"
)

// importCmd bulk-loads a spreadsheet into a collection
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import an .xlsx or .csv file into a collection",
	Long: `Reads a spreadsheet and creates one record per data row.

The first row is the header and names the target fields. Empty cells
are skipped; the rest are coerced the same way as --set values. A JSON
report is printed when the run finishes, and the exit code is 2 when
any row failed.

Examples:
  noco import --collection orders --path data/orders.xlsx --dry-run
  noco import --collection orders --path data/orders.csv --workers 8`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("collection", "", "target collection name")
	importCmd.MarkFlagRequired("collection")
	importCmd.Flags().String("path", "", "spreadsheet path (.xlsx or .csv)")
	importCmd.MarkFlagRequired("path")
	importCmd.Flags().String("sheet", "", "sheet name or zero-based index (default: first sheet)")
	importCmd.Flags().Int("limit", 0, "import only the first N data rows (0 = all)")
	importCmd.Flags().Int("workers", importer.DefaultWorkers, "concurrent create requests")
	importCmd.Flags().Bool("dry-run", false, "map rows and report without writing anything")
}

func runImport(cmd *cobra.Command, args []string) error {
	collection, _ := cmd.Flags().GetString("collection")
	path, _ := cmd.Flags().GetString("path")
	sheet, _ := cmd.Flags().GetString("sheet")
	limit, _ := cmd.Flags().GetInt("limit")
	workers, _ := cmd.Flags().GetInt("workers")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	client, err := newClient()
	if err != nil {
		return err
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	report, err := importer.Run(ctx, client, importer.Options{
		Collection: collection,
		Path:       path,
		Sheet:      sheet,
		Limit:      limit,
		Workers:    workers,
		DryRun:     dryRun,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if err := printJSON(report); err != nil {
		return err
	}
	if report.Failed > 0 {
		if logger != nil {
			_ = logger.Sync()
		}
		os.Exit(2)
	}
	return nil
}
