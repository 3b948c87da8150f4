package dispute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordFromRowPadsShortRows(t *testing.T) {
	t.Parallel()

	rec := RecordFromRow([]string{"12", "05/11/2025", "8842", "Burguer do Nô"}, 7)
	assert.Equal(t, 12, rec.ID)
	assert.Equal(t, "05/11/2025", rec.OpenedDate)
	assert.Equal(t, "8842", rec.OrderNumber)
	assert.Equal(t, "Burguer do Nô", rec.Restaurant)
	assert.Equal(t, "", rec.Status)
	assert.Equal(t, "", rec.SpecificReason)
	assert.Equal(t, 7, rec.Row)
}

func TestRecordToRowWidth(t *testing.T) {
	t.Parallel()

	rec := RecordFromRow([]string{"3", "01/01/2025", "77", "Italiano Pizzas"}, 5)
	row := rec.ToRow()
	assert.Len(t, row, LedgerColumns)
	assert.Equal(t, "3", row[0])
	assert.Equal(t, "77", row[2])
}

func TestRecordIsBlank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cells []string
		want  bool
	}{
		{"fully empty row", []string{}, true},
		{"whitespace-only identity cells", []string{"  ", "", "  ", "   "}, true},
		{"other columns filled but no identity", []string{"", "", "", "", "motivo", "", "R$ 1,00"}, true},
		{"id only", []string{"4"}, false},
		{"order number only", []string{"", "", "8842"}, false},
		{"restaurant only", []string{"", "", "", "Burguer do Nô"}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, RecordFromRow(tc.cells, 3).IsBlank())
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"05/11/2025 19:42", "05/11/2025"},
		{"05/11/2025", "05/11/2025"},
		{"  05/11/2025 19:42  ", "05/11/2025"},
		{"2025-11-05", ""},
		{"texto livre", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDate(tc.in), "FormatDate(%q)", tc.in)
	}
}
