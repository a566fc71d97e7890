package goaltracking

import (
	"math"
	"testing"

	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name             string
		deals            []pipedrivedomain.Deal
		expectedProgress float64
		expectedCount    int
	}{
		{
			name:             "sin operaciones",
			deals:            nil,
			expectedProgress: 0,
			expectedCount:    0,
		},
		{
			name: "el fee mensual pesa más que el valor puntual",
			deals: []pipedrivedomain.Deal{
				{Value: 1000, FeeMensual: floatPtr(300)},
			},
			expectedProgress: 300,
			expectedCount:    1,
		},
		{
			name: "sin fee mensual se usa el valor de la operación",
			deals: []pipedrivedomain.Deal{
				{Value: 1000},
			},
			expectedProgress: 1000,
			expectedCount:    1,
		},
		{
			name: "fee mensual en cero no reemplaza al valor",
			deals: []pipedrivedomain.Deal{
				{Value: 750, FeeMensual: floatPtr(0)},
			},
			expectedProgress: 750,
			expectedCount:    1,
		},
		{
			name: "valores no finitos aportan cero",
			deals: []pipedrivedomain.Deal{
				{Value: math.NaN()},
				{Value: math.Inf(1)},
				{Value: 100, FeeMensual: floatPtr(math.NaN())},
			},
			expectedProgress: 100,
			expectedCount:    3,
		},
		{
			name: "mezcla de fees y valores",
			deals: []pipedrivedomain.Deal{
				{Value: 1000, FeeMensual: floatPtr(300)},
				{Value: 500},
				{Value: 200, FeeMensual: floatPtr(150.25)},
			},
			expectedProgress: 950.25,
			expectedCount:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.deals)
			assert.Equal(t, tt.expectedProgress, result.ProgressAmount)
			assert.Equal(t, tt.expectedCount, result.DealsCount)
		})
	}
}

func TestAggregate_IndependienteDelOrden(t *testing.T) {
	deals := []pipedrivedomain.Deal{
		{Value: 1000, FeeMensual: floatPtr(300)},
		{Value: 500},
		{Value: 250.25},
	}
	reversed := []pipedrivedomain.Deal{deals[2], deals[1], deals[0]}

	original := Aggregate(deals)
	shuffled := Aggregate(reversed)

	assert.Equal(t, original.ProgressAmount, shuffled.ProgressAmount)
	assert.Equal(t, original.DealsCount, shuffled.DealsCount)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		goal     float64
		expected int
	}{
		{"meta en cero da 0% sin importar el avance", 5000, 0, 0},
		{"meta negativa también da 0%", 5000, -100, 0},
		{"sobrecumplimiento no se recorta", 1500, 1000, 150},
		{"avance parcial", 300, 2000, 15},
		{"redondeo al entero más cercano", 333, 1000, 33},
		{"redondeo hacia arriba", 335, 1000, 34},
		{"sin avance", 0, 2000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentage(tt.progress, tt.goal))
		})
	}
}
