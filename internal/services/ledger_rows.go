package services

import (
	"context"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	"github.com/GylleadheBodedono/SCI/internal/platform/gsheets"
)

// The ledger sheet carries two header rows; data starts at row 3.
const (
	ledgerHeaderRows   = 2
	ledgerDataStartRow = 3
	ledgerDataRef      = "A3:O"
)

// readLedgerRecords fetches the whole data range in one call and tags every
// record with its physical row number.
func readLedgerRecords(ctx context.Context, ledger gsheets.LedgerService, sheetName string) ([]*dispute.Record, error) {
	rows, err := ledger.ReadRange(ctx, gsheets.Range(sheetName, ledgerDataRef))
	if err != nil {
		return nil, err
	}
	records := make([]*dispute.Record, 0, len(rows))
	for i, cells := range rows {
		records = append(records, dispute.RecordFromRow(cells, i+ledgerDataStartRow))
	}
	return records, nil
}
