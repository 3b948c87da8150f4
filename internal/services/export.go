package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	apperrors "github.com/GylleadheBodedono/SCI/internal/pkg/errors"
)

// ExportRow is one parsed line of the delivery-platform XLSX export.
type ExportRow struct {
	OrderID             string
	OrderNumber         string
	Restaurant          string
	OrderedAt           string
	FinalStatus         string
	ItemsValue          float64
	TotalPaid           float64
	NetValue            float64
	CancellationReason  string
	CancellationOrigin  string
	CancelledAt         string
	CancelledItemsValue float64
	Disputable          string
	NonDisputableReason string
}

// Source column headers of the iFood export.
const (
	colOrderID             = "ID COMPLETO DO PEDIDO"
	colOrderNumber         = "ID CURTO DO PEDIDO"
	colRestaurant          = "NOME DA LOJA"
	colOrderedAt           = "DATA E HORA DO PEDIDO"
	colFinalStatus         = "STATUS FINAL DO PEDIDO"
	colItemsValue          = "VALOR DOS ITENS (R$)"
	colTotalPaid           = "TOTAL PAGO PELO CLIENTE (R$)"
	colNetValue            = "VALOR LIQUIDO (R$)"
	colCancellationReason  = "MOTIVO DO CANCELAMENTO"
	colCancellationOrigin  = "ORIGEM DO CANCELAMENTO"
	colCancelledAt         = "DATA DO CANCELAMENTO"
	colCancelledItemsValue = "VALOR DOS ITENS CANCELADOS"
	colDisputable          = "CANCELAMENTO É CONTESTAVEL"
	colNonDisputableReason = "MOTIVO DA IMPOSSIBILIDADE DE CONTESTAR"
)

// parseExport decodes the first worksheet of an uploaded XLSX file into
// ExportRows keyed by the source headers. Missing text cells default to "",
// missing or unparsable currency cells default to 0. A file with no data rows
// is ErrEmptySheet.
func parseExport(file io.Reader) ([]ExportRow, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrEmptySheet, err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, apperrors.ErrEmptySheet
	}
	rows, err := f.GetRows(sheetNames[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, apperrors.ErrEmptySheet
	}

	headerIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		headerIdx[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	cell := func(row []string, header string) string {
		i, ok := headerIdx[header]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]ExportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		out = append(out, ExportRow{
			OrderID:             cell(row, colOrderID),
			OrderNumber:         cell(row, colOrderNumber),
			Restaurant:          cell(row, colRestaurant),
			OrderedAt:           cell(row, colOrderedAt),
			FinalStatus:         cell(row, colFinalStatus),
			ItemsValue:          dispute.ParseBRL(cell(row, colItemsValue)),
			TotalPaid:           dispute.ParseBRL(cell(row, colTotalPaid)),
			NetValue:            dispute.ParseBRL(cell(row, colNetValue)),
			CancellationReason:  cell(row, colCancellationReason),
			CancellationOrigin:  cell(row, colCancellationOrigin),
			CancelledAt:         cell(row, colCancelledAt),
			CancelledItemsValue: dispute.ParseBRL(cell(row, colCancelledItemsValue)),
			Disputable:          cell(row, colDisputable),
			NonDisputableReason: cell(row, colNonDisputableReason),
		})
	}
	if len(out) == 0 {
		return nil, apperrors.ErrEmptySheet
	}
	return out, nil
}
