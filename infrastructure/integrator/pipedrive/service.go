package pipedrive

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
	"github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/pipedriveclient"
	"github.com/jmfarina/sales-ops-api/internal/config"
	"github.com/jmfarina/sales-ops-api/internal/domain"
)

var (
	ErrEmptyIdentifier = errors.New("el identificador de atribución no puede estar vacío")
	ErrInvalidQuarter  = errors.New("el trimestre debe estar entre 1 y 4")
	ErrInvalidYear     = errors.New("el año debe tener 4 dígitos")
	ErrCRMUnavailable  = errors.New("no se pudieron cargar las operaciones del CRM")
)

// Integrator expone la búsqueda de operaciones ganadas atribuidas a un
// vendedor. La variante batch devuelve la unión por identificador, sin
// deduplicar por id de operación.
type Integrator interface {
	FetchWonDeals(mode, identifier string, year, quarter int) ([]pipedrivedomain.Deal, error)
	FetchWonDealsBatch(mode string, identifiers []string, year, quarter int) ([]pipedrivedomain.Deal, error)
}

type PipedriveIntegrator struct {
	cfg    *config.Config
	client pipedriveclient.Client
}

func New(cfg *config.Config, client pipedriveclient.Client) *PipedriveIntegrator {
	return &PipedriveIntegrator{
		cfg:    cfg,
		client: client,
	}
}

func (s *PipedriveIntegrator) FetchWonDeals(mode, identifier string, year, quarter int) ([]pipedrivedomain.Deal, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}
	if err := validatePeriod(year, quarter); err != nil {
		return nil, err
	}

	raws, err := s.client.ListWonDeals(quarterWindow(year, quarter))
	if err != nil {
		return nil, errors.Wrapf(ErrCRMUnavailable, "%v", err)
	}

	var deals []pipedrivedomain.Deal
	for _, raw := range raws {
		deal := s.mapDeal(raw)
		if matchesAttribution(deal, mode, identifier) {
			deals = append(deals, deal)
		}
	}

	return deals, nil
}

// FetchWonDealsBatch devuelve la unión de las operaciones de cada
// identificador. La ventana se baja del CRM una sola vez y la atribución se
// resuelve en memoria por identificador. Un identificador vacío aborta todo
// el lote: no hay resultados parciales de fetch.
func (s *PipedriveIntegrator) FetchWonDealsBatch(mode string, identifiers []string, year, quarter int) ([]pipedrivedomain.Deal, error) {
	if err := validatePeriod(year, quarter); err != nil {
		return nil, err
	}

	trimmed := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		identifier = strings.TrimSpace(identifier)
		if identifier == "" {
			return nil, ErrEmptyIdentifier
		}
		trimmed = append(trimmed, identifier)
	}

	raws, err := s.client.ListWonDeals(quarterWindow(year, quarter))
	if err != nil {
		return nil, errors.Wrapf(ErrCRMUnavailable, "%v", err)
	}

	deals := make([]pipedrivedomain.Deal, 0, len(raws))
	for _, raw := range raws {
		deals = append(deals, s.mapDeal(raw))
	}

	var all []pipedrivedomain.Deal
	for _, identifier := range trimmed {
		for _, deal := range deals {
			if matchesAttribution(deal, mode, identifier) {
				all = append(all, deal)
			}
		}
	}

	return all, nil
}

func validatePeriod(year, quarter int) error {
	if quarter < 1 || quarter > 4 {
		return ErrInvalidQuarter
	}
	if year < 1000 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// quarterWindow arma la ventana aproximada para el CRM: el trimestre con un
// mes de margen a cada lado. El corte exacto lo hace el filtro de trimestre.
func quarterWindow(year, quarter int) pipedriveclient.ListWonDealsParams {
	firstMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, firstMonth, 1, 0, 0, 0, 0, time.Local)

	return pipedriveclient.ListWonDealsParams{
		Since: start.AddDate(0, -1, 0),
		Until: start.AddDate(0, 4, 0),
	}
}

func matchesAttribution(deal pipedrivedomain.Deal, mode, identifier string) bool {
	switch mode {
	case domain.AttributionModeMapache:
		return strings.EqualFold(strings.TrimSpace(deal.MapacheAsignado), identifier)
	case domain.AttributionModeOwner:
		return strings.EqualFold(strings.TrimSpace(deal.OwnerEmail), identifier)
	}
	return false
}

// mapDeal traduce el item crudo del CRM al tipo del dominio. Los campos
// personalizados vienen con clave hash, configurada por entorno.
func (s *PipedriveIntegrator) mapDeal(raw map[string]any) pipedrivedomain.Deal {
	deal := pipedrivedomain.Deal{
		ID:    toInt(raw["id"]),
		Title: toString(raw["title"]),
		Value: toFloat(raw["value"]),
	}

	if fee, ok := raw[s.cfg.Pipedrive.FeeMensualFieldKey]; ok {
		v := toFloat(fee)
		deal.FeeMensual = &v
	}

	deal.QuarterHint = toInt(raw[s.cfg.Pipedrive.QuarterFieldKey])
	deal.MapacheAsignado = toString(raw[s.cfg.Pipedrive.MapacheFieldKey])

	if wonTimeStr := toString(raw["won_time"]); wonTimeStr != "" {
		if wonTime, err := time.ParseInLocation(pipedrivedomain.WonTimeLayout, wonTimeStr, time.Local); err == nil {
			deal.WonTime = &wonTime
		}
	}

	// El dueño viene embebido como objeto user_id en la API de Pipedrive
	if owner, ok := raw["user_id"].(map[string]any); ok {
		deal.OwnerEmail = toString(owner["email"])
	}

	return deal
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}
