package services

import (
	"context"
	"sort"
	"strings"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	"github.com/GylleadheBodedono/SCI/internal/platform/gsheets"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
)

type BrandStat struct {
	Count     int     `json:"count"`
	Disputed  float64 `json:"disputed"`
	Recovered float64 `json:"recovered"`
}

type NameStat struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Disputed float64 `json:"disputed"`
}

type Dashboard struct {
	Total          int                  `json:"total"`
	TotalDisputed  float64              `json:"totalDisputed"`
	TotalRecovered float64              `json:"totalRecovered"`
	TotalLost      float64              `json:"totalLost"`
	RecoveryRate   float64              `json:"recoveryRate"`
	AverageTicket  float64              `json:"averageTicket"`
	ByStatus       map[string]int       `json:"byStatus"`
	Brands         map[string]BrandStat `json:"brands"`
	TopRestaurants []NameStat           `json:"topRestaurants"`
	TopReasons     []NameStat           `json:"topReasons"`
}

type DashboardService interface {
	// Build aggregates the whole ledger in one read.
	Build(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	log       *logger.Logger
	ledger    gsheets.LedgerService
	mappings  *dispute.Mappings
	sheetName string
}

func NewDashboardService(log *logger.Logger, ledger gsheets.LedgerService, mappings *dispute.Mappings, sheetName string) DashboardService {
	return &dashboardService{
		log:       log.With("service", "DashboardService"),
		ledger:    ledger,
		mappings:  mappings,
		sheetName: sheetName,
	}
}

func (s *dashboardService) Build(ctx context.Context) (*Dashboard, error) {
	records, err := readLedgerRecords(ctx, s.ledger, s.sheetName)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Total:    len(records),
		ByStatus: make(map[string]int),
		Brands:   make(map[string]BrandStat),
	}
	restaurants := make(map[string]*NameStat)
	reasons := make(map[string]*NameStat)

	for _, rec := range records {
		disputed := dispute.ParseBRL(rec.DisputedAmount)
		recovered := dispute.ParseBRL(rec.RecoveredAmount)
		d.TotalDisputed += disputed
		d.TotalRecovered += recovered

		status := rec.Status
		if status == "" {
			status = dispute.StatusAguardando
		}
		d.ByStatus[status]++

		name := s.mappings.NormalizeRestaurantName(rec.Restaurant)
		brand := brandFromName(name)
		bs := d.Brands[brand]
		bs.Count++
		bs.Disputed += disputed
		bs.Recovered += recovered
		d.Brands[brand] = bs

		bump(restaurants, name, disputed)
		reason := rec.Reason
		if reason == "" {
			reason = "Outros"
		}
		bump(reasons, reason, disputed)
	}

	d.TotalLost = d.TotalDisputed - d.TotalRecovered
	if d.TotalDisputed > 0 {
		d.RecoveryRate = d.TotalRecovered / d.TotalDisputed * 100
	}
	if d.Total > 0 {
		d.AverageTicket = d.TotalDisputed / float64(d.Total)
	}
	d.TopRestaurants = topN(restaurants, 5)
	d.TopReasons = topN(reasons, 5)
	return d, nil
}

// brandFromName rolls branch names up to the group's three brands.
func brandFromName(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "burguer"):
		return "Burguer do Nô"
	case strings.Contains(n, "italiano"):
		return "Italiano Pizzas"
	case strings.Contains(n, "bode"):
		return "Bode do Nô"
	default:
		return "Outros"
	}
}

func bump(m map[string]*NameStat, name string, disputed float64) {
	st, ok := m[name]
	if !ok {
		st = &NameStat{Name: name}
		m[name] = st
	}
	st.Count++
	st.Disputed += disputed
}

func topN(m map[string]*NameStat, n int) []NameStat {
	out := make([]NameStat, 0, len(m))
	for _, st := range m {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
