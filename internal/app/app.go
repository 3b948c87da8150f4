package app

import (
	"context"
	"fmt"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	apphttp "github.com/GylleadheBodedono/SCI/internal/http"
	"github.com/GylleadheBodedono/SCI/internal/http/handlers"
	"github.com/GylleadheBodedono/SCI/internal/platform/gsheets"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
	"github.com/GylleadheBodedono/SCI/internal/services"
)

type App struct {
	Log    *logger.Logger
	Cfg    Config
	Ledger gsheets.LedgerService
	Server *apphttp.Server
}

func New(ctx context.Context) (*App, error) {
	cfg := LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if cfg.SpreadsheetID == "" {
		log.Sync()
		return nil, fmt.Errorf("GOOGLE_SPREADSHEET_ID is required")
	}

	mappings, err := dispute.LoadMappings(cfg.MappingsFile)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load mappings: %w", err)
	}

	ledger, err := gsheets.NewLedgerService(ctx, log, cfg.SpreadsheetID)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init sheets client: %w", err)
	}

	importSvc := services.NewImportService(log, ledger, mappings, cfg.SheetName)
	maintenanceSvc := services.NewMaintenanceService(log, ledger, mappings, cfg.SheetName)
	recordsSvc := services.NewRecordsService(log, ledger, mappings, cfg.SheetName)
	dashboardSvc := services.NewDashboardService(log, ledger, mappings, cfg.SheetName)

	server := apphttp.NewServer(apphttp.RouterConfig{
		Log:                log,
		ImportHandler:      handlers.NewImportHandler(log, importSvc),
		MaintenanceHandler: handlers.NewMaintenanceHandler(log, maintenanceSvc),
		DisputeHandler:     handlers.NewDisputeHandler(log, recordsSvc),
		DashboardHandler:   handlers.NewDashboardHandler(log, dashboardSvc),
		HealthHandler:      handlers.NewHealthHandler(),
	})

	return &App{
		Log:    log,
		Cfg:    cfg,
		Ledger: ledger,
		Server: server,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting server", "port", a.Cfg.Port, "sheet", a.Cfg.SheetName)
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
