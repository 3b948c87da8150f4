package dispute

import (
	"strconv"
	"strings"
)

// Ledger statuses. Derived at import time, edited by the operator afterwards.
const (
	StatusAguardando = "AGUARDANDO"
	StatusEmAnalise  = "EM ANÁLISE"
	StatusFinalizado = "FINALIZADO"
	StatusCancelado  = "CANCELADO"
)

// LedgerColumns is the width of one ledger row (columns A through O).
const LedgerColumns = 15

// Record is one row of the contestação ledger.
type Record struct {
	ID               int    `json:"id"`
	OpenedDate       string `json:"openedDate"`
	OrderNumber      string `json:"orderNumber"`
	Restaurant       string `json:"restaurant"`
	Reason           string `json:"reason"`
	Description      string `json:"description"`
	DisputedAmount   string `json:"disputedAmount"`
	Status           string `json:"status"`
	ResolutionDate   string `json:"resolutionDate"`
	ResolutionText   string `json:"resolutionText"`
	RecoveredAmount  string `json:"recoveredAmount"`
	Notes            string `json:"notes"`
	Attachments      string `json:"attachments"`
	ResponsibleParty string `json:"responsibleParty"`
	SpecificReason   string `json:"specificReason"`

	// Row is the 1-based physical row in the sheet. It doubles as the
	// delete/update target, so it travels with the record everywhere.
	Row int `json:"row"`

	rawID string
}

// RecordFromRow maps a raw sheet row onto a Record. Short rows are padded;
// the sheet trims trailing empty cells on read.
func RecordFromRow(cells []string, row int) *Record {
	padded := make([]string, LedgerColumns)
	copy(padded, cells)
	id, _ := strconv.Atoi(strings.TrimSpace(padded[0]))
	return &Record{
		ID:               id,
		OpenedDate:       padded[1],
		OrderNumber:      padded[2],
		Restaurant:       padded[3],
		Reason:           padded[4],
		Description:      padded[5],
		DisputedAmount:   padded[6],
		Status:           padded[7],
		ResolutionDate:   padded[8],
		ResolutionText:   padded[9],
		RecoveredAmount:  padded[10],
		Notes:            padded[11],
		Attachments:      padded[12],
		ResponsibleParty: padded[13],
		SpecificReason:   padded[14],
		Row:              row,
		rawID:            padded[0],
	}
}

// ToRow serializes a Record back into ledger column order A..O.
func (r *Record) ToRow() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.OpenedDate,
		r.OrderNumber,
		r.Restaurant,
		r.Reason,
		r.Description,
		r.DisputedAmount,
		r.Status,
		r.ResolutionDate,
		r.ResolutionText,
		r.RecoveredAmount,
		r.Notes,
		r.Attachments,
		r.ResponsibleParty,
		r.SpecificReason,
	}
}

// IsBlank reports whether the row carries no identity at all: no id cell, no
// order number and no restaurant. Other fields do not matter.
func (r *Record) IsBlank() bool {
	return strings.TrimSpace(r.rawID) == "" &&
		strings.TrimSpace(r.OrderNumber) == "" &&
		strings.TrimSpace(r.Restaurant) == ""
}

// FormatDate keeps the dd/mm/yyyy part of an export timestamp such as
// "05/11/2025 19:42". Anything that does not look like a date collapses to "".
func FormatDate(dateTime string) string {
	s := strings.TrimSpace(dateTime)
	if s == "" {
		return ""
	}
	datePart := strings.SplitN(s, " ", 2)[0]
	if len(strings.Split(datePart, "/")) != 3 {
		return ""
	}
	return datePart
}
