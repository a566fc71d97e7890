package goaltracking

import (
	"math"

	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
	"github.com/jmfarina/sales-ops-api/internal/domain"
	"github.com/jmfarina/sales-ops-api/pkg/utils"
)

// Aggregate suma la contribución monetaria de cada operación ya filtrada por
// trimestre. La cuota es de revenue recurrente: el fee mensual pesa más que
// el valor puntual de la operación.
func Aggregate(deals []pipedrivedomain.Deal) domain.GoalsProgress {
	var progress float64
	for _, deal := range deals {
		progress += dealContribution(deal)
	}

	return domain.GoalsProgress{
		ProgressAmount: utils.RoundWithTwoDecimalPlace(progress),
		DealsCount:     len(deals),
	}
}

// dealContribution: fee mensual si está presente y es positivo, si no el
// valor de la operación, si no cero.
func dealContribution(deal pipedrivedomain.Deal) float64 {
	if deal.FeeMensual != nil && finiteOrZero(*deal.FeeMensual) > 0 {
		return finiteOrZero(*deal.FeeMensual)
	}
	return finiteOrZero(deal.Value)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Percentage calcula el porcentaje de avance redondeado. Meta en cero da 0%:
// es el piso definido, no un error. El sobrecumplimiento no se recorta.
func Percentage(progress, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(progress / goal * 100))
}
