package services

import (
	"context"
	"strings"

	"github.com/GylleadheBodedono/SCI/internal/platform/gsheets"
)

// fakeLedger is an in-memory LedgerService. rows holds the data rows only
// (everything below the two header rows), in sheet order.
type fakeLedger struct {
	rows [][]string

	appended      [][]string
	cellUpdates   []gsheets.CellUpdate
	rowUpdates    map[string][]string
	clearedRanges []string
	deletedRows   []int

	readErr   error
	appendErr error
	deleteErr error
}

func newFakeLedger(rows ...[]string) *fakeLedger {
	return &fakeLedger{
		rows:       rows,
		rowUpdates: make(map[string][]string),
	}
}

func (f *fakeLedger) ReadRange(ctx context.Context, readRange string) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeLedger) AppendRows(ctx context.Context, sheetName string, rows [][]string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, rows...)
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeLedger) UpdateRow(ctx context.Context, rowRange string, values []string) error {
	f.rowUpdates[rowRange] = append([]string(nil), values...)
	return nil
}

func (f *fakeLedger) ClearRange(ctx context.Context, clearRange string) error {
	f.clearedRanges = append(f.clearedRanges, clearRange)
	return nil
}

func (f *fakeLedger) BatchDeleteRows(ctx context.Context, sheetName string, rowNumbers []int) (int, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	seen := make(map[int]struct{}, len(rowNumbers))
	for _, row := range rowNumbers {
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}
		f.deletedRows = append(f.deletedRows, row)
	}
	return len(seen), nil
}

func (f *fakeLedger) BatchUpdateCells(ctx context.Context, updates []gsheets.CellUpdate) (int64, error) {
	var cells int64
	for _, u := range updates {
		f.cellUpdates = append(f.cellUpdates, u)
		cells += int64(len(u.Values))
	}
	return cells, nil
}

func (f *fakeLedger) RowCount(ctx context.Context, sheetName string) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	return ledgerHeaderRows + len(f.rows), nil
}

func (f *fakeLedger) SheetID(ctx context.Context, sheetName string) (int64, error) {
	return 7, nil
}

func (f *fakeLedger) updatedRange(substr string) ([]string, bool) {
	for r, values := range f.rowUpdates {
		if strings.Contains(r, substr) {
			return values, true
		}
	}
	return nil, false
}
