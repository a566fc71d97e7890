package goaltracking

import (
	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
)

// QuarterOf devuelve el trimestre calendario (1-4) de un mes.
func QuarterOf(month int) int {
	return (month-1)/3 + 1
}

// BelongsToQuarter decide si una operación ganada pertenece de verdad al
// trimestre pedido. El filtro de fechas del CRM es aproximado, así que el
// corte exacto se hace acá.
//
// El año de won_time tiene que coincidir. Para el trimestre alcanza con que
// coincida el trimestre reportado por el CRM O el derivado del timestamp:
// el campo manual suele quedar desactualizado y un AND descartaría
// operaciones legítimamente ganadas.
//
// Una operación sin won_time no pertenece a ningún trimestre todavía.
func BelongsToQuarter(deal pipedrivedomain.Deal, year, quarter int) bool {
	if deal.WonTime == nil {
		return false
	}

	if deal.WonTime.Year() != year {
		return false
	}

	wonQuarter := QuarterOf(int(deal.WonTime.Month()))
	return deal.QuarterHint == quarter || wonQuarter == quarter
}

// FilterByQuarter reduce la lista cruda del CRM al trimestre exacto.
func FilterByQuarter(deals []pipedrivedomain.Deal, year, quarter int) []pipedrivedomain.Deal {
	filtered := make([]pipedrivedomain.Deal, 0, len(deals))
	for _, deal := range deals {
		if BelongsToQuarter(deal, year, quarter) {
			filtered = append(filtered, deal)
		}
	}
	return filtered
}
