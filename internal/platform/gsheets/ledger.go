package gsheets

import (
	"context"
	"fmt"
	"sort"

	"google.golang.org/api/sheets/v4"

	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
)

// CellUpdate is one range/values pair of a values batchUpdate.
type CellUpdate struct {
	Range  string
	Values []string
}

// LedgerService is the narrow read/write contract the pipelines consume from
// the spreadsheet store. Every call is one blocking network round trip and a
// potential failure point; nothing here is transactional across calls.
type LedgerService interface {
	// ReadRange returns the rows of an A1 range. An empty store yields an
	// empty slice, not an error.
	ReadRange(ctx context.Context, readRange string) ([][]string, error)
	// AppendRows writes rows to the explicit range right below the current
	// column-A height, in a single call. No-op for zero rows.
	AppendRows(ctx context.Context, sheetName string, rows [][]string) error
	// UpdateRow overwrites the cells of one row range.
	UpdateRow(ctx context.Context, rowRange string, values []string) error
	// ClearRange blanks the cells of a range without removing the row.
	ClearRange(ctx context.Context, clearRange string) error
	// BatchDeleteRows destructively removes the given 1-based rows. Deletions
	// are issued bottom-up inside one batch request so earlier deletes never
	// shift rows still pending deletion. Returns the number of rows removed.
	BatchDeleteRows(ctx context.Context, sheetName string, rowNumbers []int) (int, error)
	// BatchUpdateCells applies all updates in one call and returns the total
	// updated cell count reported by the store.
	BatchUpdateCells(ctx context.Context, updates []CellUpdate) (int64, error)
	// RowCount returns the height of column A, header rows included.
	RowCount(ctx context.Context, sheetName string) (int, error)
	// SheetID resolves a sheet title to its numeric id (needed for deletes).
	SheetID(ctx context.Context, sheetName string) (int64, error)
}

type ledgerService struct {
	log           *logger.Logger
	svc           *sheets.Service
	spreadsheetID string
}

func NewLedgerService(ctx context.Context, log *logger.Logger, spreadsheetID string) (LedgerService, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("missing spreadsheet id")
	}
	svc, err := sheets.NewService(ctx, ClientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &ledgerService{
		log:           log.With("service", "LedgerService"),
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (l *ledgerService) ReadRange(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", readRange, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *ledgerService) AppendRows(ctx context.Context, sheetName string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	height, err := l.RowCount(ctx, sheetName)
	if err != nil {
		return err
	}
	target := AppendRange(sheetName, height, len(rows))
	l.log.Info("Appending rows", "range", target, "rows", len(rows))
	_, err = l.svc.Spreadsheets.Values.
		Update(l.spreadsheetID, target, &sheets.ValueRange{Values: toCellMatrix(rows)}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", target, err)
	}
	return nil
}

func (l *ledgerService) UpdateRow(ctx context.Context, rowRange string, values []string) error {
	_, err := l.svc.Spreadsheets.Values.
		Update(l.spreadsheetID, rowRange, &sheets.ValueRange{Values: toCellMatrix([][]string{values})}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rowRange, err)
	}
	return nil
}

func (l *ledgerService) ClearRange(ctx context.Context, clearRange string) error {
	_, err := l.svc.Spreadsheets.Values.
		Clear(l.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", clearRange, err)
	}
	return nil
}

func (l *ledgerService) BatchDeleteRows(ctx context.Context, sheetName string, rowNumbers []int) (int, error) {
	if len(rowNumbers) == 0 {
		return 0, nil
	}
	sheetID, err := l.SheetID(ctx, sheetName)
	if err != nil {
		return 0, err
	}
	reqs := deleteRowRequests(sheetID, rowNumbers)
	l.log.Info("Deleting rows", "sheet", sheetName, "count", len(reqs))
	_, err = l.svc.Spreadsheets.
		BatchUpdate(l.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("batch delete rows: %w", err)
	}
	return len(reqs), nil
}

func (l *ledgerService) BatchUpdateCells(ctx context.Context, updates []CellUpdate) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  u.Range,
			Values: toCellMatrix([][]string{u.Values}),
		})
	}
	resp, err := l.svc.Spreadsheets.Values.
		BatchUpdate(l.spreadsheetID, &sheets.BatchUpdateValuesRequest{
			ValueInputOption: "USER_ENTERED",
			Data:             data,
		}).
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("batch update cells: %w", err)
	}
	return resp.TotalUpdatedCells, nil
}

func (l *ledgerService) RowCount(ctx context.Context, sheetName string) (int, error) {
	rows, err := l.ReadRange(ctx, Range(sheetName, "A:A"))
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (l *ledgerService) SheetID(ctx context.Context, sheetName string) (int64, error) {
	resp, err := l.svc.Spreadsheets.Get(l.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, s := range resp.Sheets {
		if s.Properties != nil && s.Properties.Title == sheetName {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found", sheetName)
}

// deleteRowRequests builds deleteDimension requests in strictly descending
// row order. Ascending deletes would shift every row below the first cut and
// remove the wrong records.
func deleteRowRequests(sheetID int64, rowNumbers []int) []*sheets.Request {
	seen := make(map[int]struct{}, len(rowNumbers))
	sorted := make([]int, 0, len(rowNumbers))
	for _, row := range rowNumbers {
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}
		sorted = append(sorted, row)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	reqs := make([]*sheets.Request, 0, len(sorted))
	for _, row := range sorted {
		reqs = append(reqs, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		})
	}
	return reqs
}

func toCellMatrix(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		out[i] = cells
	}
	return out
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
