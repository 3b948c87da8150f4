package app

import (
	"github.com/GylleadheBodedono/SCI/internal/platform/envutil"
)

type Config struct {
	Port          string
	LogMode       string
	SpreadsheetID string
	SheetName     string
	MappingsFile  string
}

func LoadConfig() Config {
	return Config{
		Port:          envutil.Str("PORT", "8080"),
		LogMode:       envutil.Str("LOG_MODE", "development"),
		SpreadsheetID: envutil.Str("GOOGLE_SPREADSHEET_ID", ""),
		SheetName:     envutil.Str("LEDGER_SHEET_NAME", "Contestações iFood"),
		MappingsFile:  envutil.Str("DISPUTE_MAPPINGS_FILE", ""),
	}
}
