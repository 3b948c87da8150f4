package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	apperrors "github.com/GylleadheBodedono/SCI/internal/pkg/errors"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
)

const testSheet = "Contestações iFood"

func newImportService(t *testing.T, ledger *fakeLedger) ImportService {
	t.Helper()
	m, err := dispute.LoadMappings("")
	require.NoError(t, err)
	return NewImportService(logger.NewNop(), ledger, m, testSheet)
}

func TestImportRun(t *testing.T) {
	t.Parallel()

	ledger := newFakeLedger()
	svc := newImportService(t, ledger)

	file := buildExport(t,
		map[string]string{
			colOrderNumber:        "8842",
			colRestaurant:         "Bode do Nô (Af)",
			colOrderedAt:          "05/11/2025 19:42",
			colFinalStatus:        "CANCELADO",
			colItemsValue:         "R$ 45,90",
			colNetValue:           "R$ 45,90",
			colCancellationReason: "Loja fechada",
			colDisputable:         "Não",
			colNonDisputableReason: "Reembolso já efetuado",
		},
		map[string]string{
			colOrderNumber:        "8843",
			colRestaurant:         "Italiano Pizza",
			colOrderedAt:          "05/11/2025 20:10",
			colFinalStatus:        "cancelado",
			colItemsValue:         "R$ 80,00",
			colNetValue:           "R$ 0,00",
			colCancellationReason: "Desistência do cliente",
			colDisputable:         "Sim",
		},
		map[string]string{
			colOrderNumber: "8844",
			colRestaurant:  "Italiano Pizzas",
			colFinalStatus: "CONCLUÍDO",
		},
	)

	report, err := svc.Run(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 2, report.Cancelled)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Duplicated)
	assert.Equal(t, 1, report.NotCancelled)
	assert.Equal(t, []string{"8842", "8843"}, report.Details.Imported)
	assert.Equal(t, []string{"8844"}, report.Details.NotCancelled)

	require.Len(t, ledger.appended, 2)

	refunded := dispute.RecordFromRow(ledger.appended[0], 3)
	assert.Equal(t, 2, refunded.ID)
	assert.Equal(t, "05/11/2025", refunded.OpenedDate)
	assert.Equal(t, "8842", refunded.OrderNumber)
	assert.Equal(t, "Bode do Nô Afogados", refunded.Restaurant)
	assert.Equal(t, dispute.StatusFinalizado, refunded.Status)
	assert.Equal(t, "05/11/2025", refunded.ResolutionDate)
	assert.Equal(t, "Reembolso automático iFood", refunded.ResolutionText)
	assert.Equal(t, "R$ 45,90", refunded.DisputedAmount)
	assert.Equal(t, "R$ 45,90", refunded.RecoveredAmount)
	assert.Equal(t, "Importado automaticamente. Reembolso já efetuado", refunded.Description)
	assert.Equal(t, "Contestável: Não", refunded.Notes)
	assert.Equal(t, "Loja", refunded.ResponsibleParty)

	waiting := dispute.RecordFromRow(ledger.appended[1], 4)
	assert.Equal(t, 3, waiting.ID)
	assert.Equal(t, "Italiano Pizzas", waiting.Restaurant)
	assert.Equal(t, dispute.StatusAguardando, waiting.Status)
	assert.Equal(t, "", waiting.ResolutionDate)
	assert.Equal(t, "R$ 0,00", waiting.RecoveredAmount)
	assert.Equal(t, "Importado automaticamente.", waiting.Description)
	assert.Equal(t, "Cliente", waiting.ResponsibleParty)
}

func TestImportRunSkipsRowsAlreadyInLedger(t *testing.T) {
	t.Parallel()

	// Stored row predates normalization: variant spelling and leading zero.
	existing := dispute.RecordFromRow([]string{"1", "01/11/2025", "08842", "Bode do Nô (Af)"}, 3)
	ledger := newFakeLedger(existing.ToRow())
	svc := newImportService(t, ledger)

	file := buildExport(t, map[string]string{
		colOrderNumber: "8842",
		colRestaurant:  "Bode do Nô Afogados",
		colFinalStatus: "CANCELADO",
		colItemsValue:  "R$ 10,00",
	})

	report, err := svc.Run(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, 1, report.Duplicated)
	assert.Equal(t, []string{"8842"}, report.Details.Duplicated)
	assert.Empty(t, ledger.appended)
}

func TestImportRunDoesNotDedupeInsideOneUpload(t *testing.T) {
	t.Parallel()

	ledger := newFakeLedger()
	svc := newImportService(t, ledger)

	row := map[string]string{
		colOrderNumber: "500",
		colRestaurant:  "Burguer do Nô",
		colFinalStatus: "CANCELADO",
		colItemsValue:  "R$ 30,00",
	}
	report, err := svc.Run(context.Background(), buildExport(t, row, row))
	require.NoError(t, err)

	// Both rows share one identity key but neither is in the ledger yet, so
	// both land.
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Duplicated)
	require.Len(t, ledger.appended, 2)
}

func TestImportRunKeepsZeroValueDisputes(t *testing.T) {
	t.Parallel()

	ledger := newFakeLedger()
	svc := newImportService(t, ledger)

	file := buildExport(t, map[string]string{
		colOrderNumber: "31",
		colRestaurant:  "Burguer do Nô",
		colFinalStatus: "CANCELADO",
	})

	report, err := svc.Run(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	rec := dispute.RecordFromRow(ledger.appended[0], 3)
	assert.Equal(t, "R$ 0,00", rec.DisputedAmount)
	assert.Equal(t, dispute.StatusAguardando, rec.Status)
	assert.Equal(t, "Cancelamento", rec.Reason)
}

func TestImportRunContinuesIDSequence(t *testing.T) {
	t.Parallel()

	ledger := newFakeLedger(
		dispute.RecordFromRow([]string{"2", "", "1", "Burguer do Nô"}, 3).ToRow(),
		dispute.RecordFromRow([]string{"3", "", "2", "Burguer do Nô"}, 4).ToRow(),
	)
	svc := newImportService(t, ledger)

	file := buildExport(t, map[string]string{
		colOrderNumber: "99",
		colRestaurant:  "Burguer do Nô",
		colFinalStatus: "CANCELADO",
	})

	_, err := svc.Run(context.Background(), file)
	require.NoError(t, err)

	require.Len(t, ledger.appended, 1)
	rec := dispute.RecordFromRow(ledger.appended[0], 5)
	assert.Equal(t, 3, rec.ID)
}

func TestImportRunEmptyFile(t *testing.T) {
	t.Parallel()

	svc := newImportService(t, newFakeLedger())
	_, err := svc.Run(context.Background(), buildExport(t))
	assert.ErrorIs(t, err, apperrors.ErrEmptySheet)
}
