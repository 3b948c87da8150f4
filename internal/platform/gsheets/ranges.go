package gsheets

import "fmt"

// Range builds a quoted A1 range ("'Sheet Name'!A3:O"). Sheet names with
// spaces or accents must be quoted or the API rejects the range.
func Range(sheetName, ref string) string {
	return fmt.Sprintf("'%s'!%s", sheetName, ref)
}

// RowRange addresses one full ledger row (columns A..O).
func RowRange(sheetName string, row int) string {
	return Range(sheetName, fmt.Sprintf("A%d:O%d", row, row))
}

// AppendRange computes the explicit contiguous target for a batch append of n
// rows onto a sheet whose column A currently holds height rows. The store's
// native append heuristic misplaces data when trailing rows have gaps, so the
// caller always writes to this exact range instead.
func AppendRange(sheetName string, height, n int) string {
	start := height + 1
	end := height + n
	return Range(sheetName, fmt.Sprintf("A%d:O%d", start, end))
}
