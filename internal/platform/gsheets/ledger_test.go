package gsheets

import (
	"testing"
)

func TestDeleteRowRequestsAreDescending(t *testing.T) {
	t.Parallel()

	reqs := deleteRowRequests(99, []int{3, 7, 2})
	if len(reqs) != 3 {
		t.Fatalf("unexpected request count: got=%d want=3", len(reqs))
	}
	wantStarts := []int64{6, 2, 1}
	for i, req := range reqs {
		r := req.DeleteDimension.Range
		if r.SheetId != 99 {
			t.Fatalf("request %d targets sheet %d, want 99", i, r.SheetId)
		}
		if r.Dimension != "ROWS" {
			t.Fatalf("request %d dimension: got=%q want=ROWS", i, r.Dimension)
		}
		if r.StartIndex != wantStarts[i] {
			t.Fatalf("request %d start index: got=%d want=%d", i, r.StartIndex, wantStarts[i])
		}
		if r.EndIndex != r.StartIndex+1 {
			t.Fatalf("request %d must delete exactly one row", i)
		}
	}
}

func TestDeleteRowRequestsDedupe(t *testing.T) {
	t.Parallel()

	reqs := deleteRowRequests(1, []int{5, 5, 5, 4})
	if len(reqs) != 2 {
		t.Fatalf("duplicate rows must collapse: got=%d requests want=2", len(reqs))
	}
	if reqs[0].DeleteDimension.Range.StartIndex != 4 {
		t.Fatalf("first delete must be the bottom row: got start=%d", reqs[0].DeleteDimension.Range.StartIndex)
	}
}

func TestRangeQuotesSheetName(t *testing.T) {
	t.Parallel()

	got := Range("Contestações iFood", "A3:O")
	want := "'Contestações iFood'!A3:O"
	if got != want {
		t.Fatalf("unexpected range: got=%q want=%q", got, want)
	}
}

func TestRowRange(t *testing.T) {
	t.Parallel()

	got := RowRange("Planilha", 12)
	want := "'Planilha'!A12:O12"
	if got != want {
		t.Fatalf("unexpected row range: got=%q want=%q", got, want)
	}
}

func TestAppendRangeTargetsRowsBelowHeight(t *testing.T) {
	t.Parallel()

	got := AppendRange("Contestações iFood", 10, 3)
	want := "'Contestações iFood'!A11:O13"
	if got != want {
		t.Fatalf("unexpected append range: got=%q want=%q", got, want)
	}

	got = AppendRange("Contestações iFood", 0, 1)
	want = "'Contestações iFood'!A1:O1"
	if got != want {
		t.Fatalf("unexpected append range on empty sheet: got=%q want=%q", got, want)
	}
}
