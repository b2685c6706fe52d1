package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nocogo/internal/nocobase"
)

// DefaultWorkers bounds concurrent create calls unless overridden.
const DefaultWorkers = 4

// previewRows caps the number of rows echoed back on a dry run.
const previewRows = 5

// RecordCreator is the one client capability an import run needs.
type RecordCreator interface {
	Create(ctx context.Context, collection string, values nocobase.Values) (nocobase.Response, error)
}

// Options configure an import run.
type Options struct {
	// Collection receives the imported records.
	Collection string

	// Path points at the .xlsx or .csv source file. The first row is
	// the header and supplies the field names.
	Path string

	// Sheet selects a worksheet by name or zero-based index; empty
	// means the first sheet. Ignored for CSV files.
	Sheet string

	// Limit caps the number of data rows considered; 0 means all.
	Limit int

	// Workers bounds concurrent create calls; 0 means DefaultWorkers.
	Workers int

	// DryRun parses and previews without creating anything.
	DryRun bool

	// Logger receives per-row progress at debug level. Nil disables.
	Logger *zap.Logger
}

// RowError records one data row that failed to import.
type RowError struct {
	// Row is the 1-based data row number, header excluded.
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Report summarizes an import run. It marshals cleanly to JSON for
// script consumption.
type Report struct {
	Collection string            `json:"collection"`
	Total      int               `json:"total"`
	Imported   int               `json:"imported"`
	Skipped    int               `json:"skipped"`
	Failed     int               `json:"failed"`
	DryRun     bool              `json:"dryRun"`
	Fields     []string          `json:"fields,omitempty"`
	Preview    []nocobase.Values `json:"preview,omitempty"`
	Errors     []RowError        `json:"errors,omitempty"`
}

// Run imports the file at opts.Path into opts.Collection, one create
// call per data row. Row failures are collected in the report rather
// than aborting the run; only context cancellation stops it early.
func Run(ctx context.Context, creator RecordCreator, opts Options) (*Report, error) {
	if strings.TrimSpace(opts.Collection) == "" {
		return nil, fmt.Errorf("importer: collection must not be empty")
	}
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("importer: path must not be empty")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fields, rows, err := readRows(opts.Path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}

	report := &Report{
		Collection: opts.Collection,
		Total:      len(rows),
		DryRun:     opts.DryRun,
		Fields:     usedFields(fields),
	}

	type pendingRow struct {
		row    int
		values nocobase.Values
	}
	var pending []pendingRow
	for i, cells := range rows {
		values, err := rowValues(fields, cells)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		if len(values) == 0 {
			report.Skipped++
			continue
		}
		pending = append(pending, pendingRow{row: i + 1, values: values})
	}

	if opts.DryRun {
		for _, p := range pending {
			if len(report.Preview) == previewRows {
				break
			}
			report.Preview = append(report.Preview, p.values)
		}
		return report, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range pending {
		p := p
		g.Go(func() error {
			_, err := creator.Create(gctx, opts.Collection, p.values)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				logger.Warn("row import failed", zap.Int("row", p.row), zap.Error(err))
				mu.Lock()
				report.Failed++
				report.Errors = append(report.Errors, RowError{Row: p.row, Error: err.Error()})
				mu.Unlock()
				return nil
			}
			logger.Debug("row imported", zap.Int("row", p.row))
			mu.Lock()
			report.Imported++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	sort.Slice(report.Errors, func(i, j int) bool { return report.Errors[i].Row < report.Errors[j].Row })
	return report, nil
}

// readRows loads the header row and data rows from an .xlsx or .csv
// file.
func readRows(path, sheet string) ([]string, [][]string, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readExcel(path, sheet)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, nil, fmt.Errorf("importer: unsupported file type %q (want .xlsx or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("importer: %s has no header row", path)
	}

	fields := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		fields[i] = strings.TrimSpace(name)
	}
	return fields, rows[1:], nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	return rows, nil
}

// resolveSheet picks a worksheet by name or zero-based index; empty
// selects the first sheet.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheet = strings.TrimSpace(sheet)
	if sheet == "" {
		name := f.GetSheetName(0)
		if name == "" {
			return "", fmt.Errorf("importer: workbook has no sheets")
		}
		return name, nil
	}
	if idx, err := strconv.Atoi(sheet); err == nil {
		name := f.GetSheetName(idx)
		if name == "" {
			return "", fmt.Errorf("importer: no sheet at index %d", idx)
		}
		return name, nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return "", fmt.Errorf("importer: sheet %q not found", sheet)
	}
	return sheet, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

// rowValues pairs header fields with row cells. Blank headers and empty
// cells are dropped; remaining cells are coerced to typed values.
func rowValues(fields []string, cells []string) (nocobase.Values, error) {
	values := nocobase.Values{}
	for i, field := range fields {
		if field == "" || i >= len(cells) {
			continue
		}
		cell := strings.TrimSpace(cells[i])
		if cell == "" {
			continue
		}
		value, err := nocobase.CoerceValue(cell)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", field, err)
		}
		values[field] = value
	}
	return values, nil
}

// usedFields drops blank header cells for reporting.
func usedFields(fields []string) []string {
	var used []string
	for _, f := range fields {
		if f != "" {
			used = append(used, f)
		}
	}
	return used
}
