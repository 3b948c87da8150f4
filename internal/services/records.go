package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	apperrors "github.com/GylleadheBodedono/SCI/internal/pkg/errors"
	"github.com/GylleadheBodedono/SCI/internal/platform/gsheets"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
)

// RecordInput is a manual ledger entry from the operator.
type RecordInput struct {
	OpenedDate     string  `json:"openedDate"`
	OrderNumber    string  `json:"orderNumber"`
	Restaurant     string  `json:"restaurant"`
	Reason         string  `json:"reason"`
	Description    string  `json:"description"`
	DisputedAmount float64 `json:"disputedAmount"`
	Notes          string  `json:"notes"`
}

// RecordUpdate carries the fields the edit path may change. Everything else
// in the row is immutable after creation.
type RecordUpdate struct {
	Status          string  `json:"status"`
	ResolutionDate  string  `json:"resolutionDate"`
	ResolutionText  string  `json:"resolutionText"`
	RecoveredAmount float64 `json:"recoveredAmount"`
	Notes           string  `json:"notes"`
}

type RecordsService interface {
	List(ctx context.Context) ([]*dispute.Record, error)
	Create(ctx context.Context, in RecordInput) (*dispute.Record, error)
	Update(ctx context.Context, row int, in RecordUpdate) error
	// Delete clears the row content; the physical row stays (blank-row
	// maintenance removes it later if wanted).
	Delete(ctx context.Context, row int) error
}

type recordsService struct {
	log       *logger.Logger
	ledger    gsheets.LedgerService
	mappings  *dispute.Mappings
	sheetName string
}

func NewRecordsService(log *logger.Logger, ledger gsheets.LedgerService, mappings *dispute.Mappings, sheetName string) RecordsService {
	return &recordsService{
		log:       log.With("service", "RecordsService"),
		ledger:    ledger,
		mappings:  mappings,
		sheetName: sheetName,
	}
}

func (s *recordsService) List(ctx context.Context) ([]*dispute.Record, error) {
	return readLedgerRecords(ctx, s.ledger, s.sheetName)
}

func (s *recordsService) Create(ctx context.Context, in RecordInput) (*dispute.Record, error) {
	if strings.TrimSpace(in.OrderNumber) == "" {
		return nil, fmt.Errorf("%w: order number is required", apperrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Restaurant) == "" {
		return nil, fmt.Errorf("%w: restaurant is required", apperrors.ErrInvalidArgument)
	}

	height, err := s.ledger.RowCount(ctx, s.sheetName)
	if err != nil {
		return nil, err
	}
	id := height - ledgerHeaderRows
	if id < 1 {
		id = 1
	}
	id++

	cls := s.mappings.MapReason(in.Reason, "")
	rec := &dispute.Record{
		ID:               id,
		OpenedDate:       in.OpenedDate,
		OrderNumber:      strings.TrimSpace(in.OrderNumber),
		Restaurant:       s.mappings.NormalizeRestaurantName(in.Restaurant),
		Reason:           in.Reason,
		Description:      in.Description,
		DisputedAmount:   dispute.FormatBRL(in.DisputedAmount),
		Status:           dispute.StatusAguardando,
		RecoveredAmount:  dispute.FormatBRL(0),
		Notes:            in.Notes,
		ResponsibleParty: cls.ResponsibleParty,
		SpecificReason:   cls.SpecificReason,
	}
	if err := s.ledger.AppendRows(ctx, s.sheetName, [][]string{rec.ToRow()}); err != nil {
		return nil, err
	}
	rec.Row = height + 1
	s.log.Info("Record created", "id", rec.ID, "order", rec.OrderNumber, "restaurant", rec.Restaurant)
	return rec, nil
}

func (s *recordsService) Update(ctx context.Context, row int, in RecordUpdate) error {
	if row < ledgerDataStartRow {
		return fmt.Errorf("%w: row %d is inside the header", apperrors.ErrInvalidArgument, row)
	}
	switch in.Status {
	case dispute.StatusAguardando, dispute.StatusEmAnalise, dispute.StatusFinalizado, dispute.StatusCancelado:
	default:
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidArgument, in.Status)
	}
	// Editable fields live in the contiguous block H..L.
	target := gsheets.Range(s.sheetName, fmt.Sprintf("H%d:L%d", row, row))
	values := []string{
		in.Status,
		in.ResolutionDate,
		in.ResolutionText,
		dispute.FormatBRL(in.RecoveredAmount),
		in.Notes,
	}
	if err := s.ledger.UpdateRow(ctx, target, values); err != nil {
		return err
	}
	s.log.Info("Record updated", "row", row, "status", in.Status)
	return nil
}

func (s *recordsService) Delete(ctx context.Context, row int) error {
	if row < ledgerDataStartRow {
		return fmt.Errorf("%w: row %d is inside the header", apperrors.ErrInvalidArgument, row)
	}
	if err := s.ledger.ClearRange(ctx, gsheets.RowRange(s.sheetName, row)); err != nil {
		return err
	}
	s.log.Info("Record cleared", "row", row)
	return nil
}
