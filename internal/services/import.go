package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	"github.com/GylleadheBodedono/SCI/internal/platform/gsheets"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
)

// ImportDetails lists the order numbers of each bucket for operator review.
type ImportDetails struct {
	Imported     []string `json:"imported"`
	Duplicated   []string `json:"duplicated"`
	NotCancelled []string `json:"notCancelled"`
}

// ImportReport summarizes one import run.
type ImportReport struct {
	TotalRows    int           `json:"totalRows"`
	Cancelled    int           `json:"cancelled"`
	Imported     int           `json:"imported"`
	Duplicated   int           `json:"duplicated"`
	NotCancelled int           `json:"notCancelled"`
	ElapsedMS    int64         `json:"elapsedMs"`
	Details      ImportDetails `json:"details"`
}

type ImportService interface {
	// Run executes one import: parse, classify, dedupe against the ledger,
	// derive fields, commit new rows in a single batch append. Any failing
	// store call aborts the run; nothing is retried.
	Run(ctx context.Context, file io.Reader) (*ImportReport, error)
}

type importService struct {
	log       *logger.Logger
	ledger    gsheets.LedgerService
	mappings  *dispute.Mappings
	sheetName string
}

func NewImportService(log *logger.Logger, ledger gsheets.LedgerService, mappings *dispute.Mappings, sheetName string) ImportService {
	return &importService{
		log:       log.With("service", "ImportService"),
		ledger:    ledger,
		mappings:  mappings,
		sheetName: sheetName,
	}
}

func (s *importService) Run(ctx context.Context, file io.Reader) (*ImportReport, error) {
	start := time.Now()

	rows, err := parseExport(file)
	if err != nil {
		return nil, err
	}

	var cancelled, notCancelled []ExportRow
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.FinalStatus), dispute.StatusCancelado) {
			cancelled = append(cancelled, row)
		} else {
			notCancelled = append(notCancelled, row)
		}
	}

	// One read of the full ledger; identity keys are normalized on the stored
	// side too, since legacy rows may predate name normalization.
	existingRows, err := s.ledger.ReadRange(ctx, gsheets.Range(s.sheetName, ledgerDataRef))
	if err != nil {
		return nil, err
	}
	existingKeys := make(map[string]struct{}, len(existingRows))
	for _, cells := range existingRows {
		rec := dispute.RecordFromRow(cells, 0)
		existingKeys[s.mappings.IdentityKey(rec.OrderNumber, rec.Restaurant)] = struct{}{}
	}

	// New rows are deduplicated against the ledger only, not against each
	// other: two cancelled rows sharing a key inside one upload both import.
	var fresh, duplicated []ExportRow
	for _, row := range cancelled {
		if _, exists := existingKeys[s.mappings.IdentityKey(row.OrderNumber, row.Restaurant)]; exists {
			duplicated = append(duplicated, row)
		} else {
			fresh = append(fresh, row)
		}
	}

	if len(fresh) > 0 {
		height, err := s.ledger.RowCount(ctx, s.sheetName)
		if err != nil {
			return nil, err
		}
		currentID := height - ledgerHeaderRows
		if currentID < 1 {
			currentID = 1
		}
		ledgerRows := make([][]string, 0, len(fresh))
		for _, row := range fresh {
			currentID++
			ledgerRows = append(ledgerRows, s.buildLedgerRow(row, currentID))
		}
		if err := s.ledger.AppendRows(ctx, s.sheetName, ledgerRows); err != nil {
			return nil, err
		}
	}

	report := &ImportReport{
		TotalRows:    len(rows),
		Cancelled:    len(cancelled),
		Imported:     len(fresh),
		Duplicated:   len(duplicated),
		NotCancelled: len(notCancelled),
		ElapsedMS:    time.Since(start).Milliseconds(),
		Details: ImportDetails{
			Imported:     orderNumbers(fresh),
			Duplicated:   orderNumbers(duplicated),
			NotCancelled: orderNumbers(notCancelled),
		},
	}
	s.log.Info("Import finished",
		"total", report.TotalRows,
		"cancelled", report.Cancelled,
		"imported", report.Imported,
		"duplicated", report.Duplicated,
		"elapsed_ms", report.ElapsedMS,
	)
	return report, nil
}

// buildLedgerRow derives the stored record for one new cancelled order.
// A positive net (líquido) value means the platform already refunded the
// order, so it lands FINALIZADO with resolution fields filled; otherwise it
// waits as AGUARDANDO. The disputed amount is the items value, not the
// cancelled-items value.
func (s *importService) buildLedgerRow(row ExportRow, id int) []string {
	cls := s.mappings.MapReason(row.CancellationReason, row.CancellationOrigin)
	openedDate := dispute.FormatDate(row.OrderedAt)

	refunded := row.NetValue > 0
	status := dispute.StatusAguardando
	resolutionDate := ""
	resolutionText := ""
	if refunded {
		status = dispute.StatusFinalizado
		resolutionDate = openedDate
		resolutionText = "Reembolso automático iFood"
	}

	reason := row.CancellationReason
	if reason == "" {
		reason = "Cancelamento"
	}

	rec := &dispute.Record{
		ID:               id,
		OpenedDate:       openedDate,
		OrderNumber:      row.OrderNumber,
		Restaurant:       s.mappings.NormalizeRestaurantName(row.Restaurant),
		Reason:           reason,
		Description:      strings.TrimSpace("Importado automaticamente. " + row.NonDisputableReason),
		DisputedAmount:   dispute.FormatBRL(row.ItemsValue),
		Status:           status,
		ResolutionDate:   resolutionDate,
		ResolutionText:   resolutionText,
		RecoveredAmount:  dispute.FormatBRL(row.NetValue),
		Notes:            "Contestável: " + row.Disputable,
		ResponsibleParty: cls.ResponsibleParty,
		SpecificReason:   cls.SpecificReason,
	}
	return rec.ToRow()
}

func orderNumbers(rows []ExportRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.OrderNumber)
	}
	return out
}
