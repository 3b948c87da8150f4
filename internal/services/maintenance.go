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

// NormalizationChange is one row whose restaurant name differs from its
// canonical form.
type NormalizationChange struct {
	Row        int    `json:"row"`
	Current    string `json:"current"`
	Normalized string `json:"normalized"`
}

type NormalizationAnalysis struct {
	Total          int                   `json:"total"`
	AlreadyCorrect int                   `json:"alreadyCorrect"`
	ToNormalize    []NormalizationChange `json:"toNormalize"`
}

type NormalizationResult struct {
	UpdatedRows  int   `json:"updatedRows"`
	UpdatedCells int64 `json:"updatedCells"`
}

// DuplicateMember is one ledger row inside a duplicate group, in original
// row order; the first member is the retention candidate.
type DuplicateMember struct {
	ID              int    `json:"id"`
	Row             int    `json:"row"`
	Restaurant      string `json:"restaurant"`
	OpenedDate      string `json:"openedDate"`
	DisputedAmount  string `json:"disputedAmount"`
	RecoveredAmount string `json:"recoveredAmount"`
	Status          string `json:"status"`
}

type DuplicateGroup struct {
	Key         string            `json:"key"`
	OrderNumber string            `json:"orderNumber"`
	Restaurant  string            `json:"restaurant"`
	Members     []DuplicateMember `json:"members"`
}

type BlankRow struct {
	Row     int    `json:"row"`
	Content string `json:"content"`
}

type RemovalResult struct {
	Removed int   `json:"removed"`
	Rows    []int `json:"rows"`
}

// MaintenanceService repairs drift in the ledger. All three jobs follow the
// analyze/apply pattern: analyze is read-only and proposes changes, apply
// performs the single batch write. There is no lock between the read and the
// write; a concurrent import can invalidate the analyzed row numbers.
type MaintenanceService interface {
	AnalyzeNormalization(ctx context.Context) (*NormalizationAnalysis, error)
	ApplyNormalization(ctx context.Context) (*NormalizationResult, error)

	AnalyzeDuplicates(ctx context.Context) ([]DuplicateGroup, error)
	// RemoveDuplicates deletes the given rows. An empty list applies the
	// default policy: keep the first (oldest) member of every group.
	RemoveDuplicates(ctx context.Context, rows []int) (*RemovalResult, error)

	AnalyzeBlankRows(ctx context.Context) ([]BlankRow, error)
	RemoveBlankRows(ctx context.Context) (*RemovalResult, error)
}

type maintenanceService struct {
	log       *logger.Logger
	ledger    gsheets.LedgerService
	mappings  *dispute.Mappings
	sheetName string
}

func NewMaintenanceService(log *logger.Logger, ledger gsheets.LedgerService, mappings *dispute.Mappings, sheetName string) MaintenanceService {
	return &maintenanceService{
		log:       log.With("service", "MaintenanceService"),
		ledger:    ledger,
		mappings:  mappings,
		sheetName: sheetName,
	}
}

func (s *maintenanceService) AnalyzeNormalization(ctx context.Context) (*NormalizationAnalysis, error) {
	records, err := readLedgerRecords(ctx, s.ledger, s.sheetName)
	if err != nil {
		return nil, err
	}
	analysis := &NormalizationAnalysis{Total: len(records)}
	for _, rec := range records {
		normalized := s.mappings.NormalizeRestaurantName(rec.Restaurant)
		if normalized == rec.Restaurant {
			analysis.AlreadyCorrect++
			continue
		}
		analysis.ToNormalize = append(analysis.ToNormalize, NormalizationChange{
			Row:        rec.Row,
			Current:    rec.Restaurant,
			Normalized: normalized,
		})
	}
	return analysis, nil
}

func (s *maintenanceService) ApplyNormalization(ctx context.Context) (*NormalizationResult, error) {
	// Re-read right before writing; the analysis shown to the operator may
	// be stale by now.
	analysis, err := s.AnalyzeNormalization(ctx)
	if err != nil {
		return nil, err
	}
	if len(analysis.ToNormalize) == 0 {
		return &NormalizationResult{}, nil
	}
	updates := make([]gsheets.CellUpdate, 0, len(analysis.ToNormalize))
	for _, change := range analysis.ToNormalize {
		updates = append(updates, gsheets.CellUpdate{
			Range:  gsheets.Range(s.sheetName, fmt.Sprintf("D%d", change.Row)),
			Values: []string{change.Normalized},
		})
	}
	cells, err := s.ledger.BatchUpdateCells(ctx, updates)
	if err != nil {
		return nil, err
	}
	s.log.Info("Normalization applied", "rows", len(updates), "cells", cells)
	return &NormalizationResult{UpdatedRows: len(updates), UpdatedCells: cells}, nil
}

func (s *maintenanceService) AnalyzeDuplicates(ctx context.Context) ([]DuplicateGroup, error) {
	records, err := readLedgerRecords(ctx, s.ledger, s.sheetName)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string][]*dispute.Record)
	var keyOrder []string
	for _, rec := range records {
		key := s.mappings.IdentityKey(rec.OrderNumber, rec.Restaurant)
		if _, seen := byKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = append(byKey[key], rec)
	}

	var groups []DuplicateGroup
	for _, key := range keyOrder {
		members := byKey[key]
		if len(members) < 2 {
			continue
		}
		group := DuplicateGroup{
			Key:         key,
			OrderNumber: dispute.NormalizeOrderNumber(members[0].OrderNumber),
			Restaurant:  s.mappings.NormalizeRestaurantName(members[0].Restaurant),
		}
		for _, rec := range members {
			group.Members = append(group.Members, DuplicateMember{
				ID:              rec.ID,
				Row:             rec.Row,
				Restaurant:      rec.Restaurant,
				OpenedDate:      rec.OpenedDate,
				DisputedAmount:  rec.DisputedAmount,
				RecoveredAmount: rec.RecoveredAmount,
				Status:          rec.Status,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *maintenanceService) RemoveDuplicates(ctx context.Context, rows []int) (*RemovalResult, error) {
	if len(rows) == 0 {
		groups, err := s.AnalyzeDuplicates(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			for _, m := range g.Members[1:] {
				rows = append(rows, m.Row)
			}
		}
		if len(rows) == 0 {
			return &RemovalResult{}, nil
		}
	}
	for _, row := range rows {
		if row < ledgerDataStartRow {
			return nil, fmt.Errorf("%w: row %d is inside the header", apperrors.ErrInvalidArgument, row)
		}
	}
	removed, err := s.ledger.BatchDeleteRows(ctx, s.sheetName, rows)
	if err != nil {
		return nil, err
	}
	s.log.Info("Duplicates removed", "rows", removed)
	return &RemovalResult{Removed: removed, Rows: rows}, nil
}

func (s *maintenanceService) AnalyzeBlankRows(ctx context.Context) ([]BlankRow, error) {
	rows, err := s.ledger.ReadRange(ctx, gsheets.Range(s.sheetName, ledgerDataRef))
	if err != nil {
		return nil, err
	}
	var blanks []BlankRow
	for i, cells := range rows {
		rec := dispute.RecordFromRow(cells, i+ledgerDataStartRow)
		if !rec.IsBlank() {
			continue
		}
		blanks = append(blanks, BlankRow{
			Row:     rec.Row,
			Content: strings.TrimSpace(strings.Join(cells, " ")),
		})
	}
	return blanks, nil
}

func (s *maintenanceService) RemoveBlankRows(ctx context.Context) (*RemovalResult, error) {
	blanks, err := s.AnalyzeBlankRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(blanks) == 0 {
		return &RemovalResult{}, nil
	}
	rows := make([]int, 0, len(blanks))
	for _, b := range blanks {
		rows = append(rows, b.Row)
	}
	removed, err := s.ledger.BatchDeleteRows(ctx, s.sheetName, rows)
	if err != nil {
		return nil, err
	}
	s.log.Info("Blank rows removed", "rows", removed)
	return &RemovalResult{Removed: removed, Rows: rows}, nil
}
