package goaltracking

import (
	"testing"
	"time"

	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month    int
		expected int
	}{
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
		{6, 2},
		{7, 3},
		{9, 3},
		{10, 4},
		{12, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, QuarterOf(tt.month), "mes %d", tt.month)
	}
}

func TestBelongsToQuarter(t *testing.T) {
	tests := []struct {
		name     string
		deal     pipedrivedomain.Deal
		year     int
		quarter  int
		expected bool
	}{
		{
			name: "ganada en mayo pertenece al Q2",
			deal: pipedrivedomain.Deal{
				WonTime: timePtr(time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)),
			},
			year:     2024,
			quarter:  2,
			expected: true,
		},
		{
			name: "sin won_time no pertenece a ningún trimestre",
			deal: pipedrivedomain.Deal{
				QuarterHint: 2,
			},
			year:     2024,
			quarter:  2,
			expected: false,
		},
		{
			name: "año distinto descarta aunque el trimestre coincida",
			deal: pipedrivedomain.Deal{
				WonTime: timePtr(time.Date(2023, 5, 10, 0, 0, 0, 0, time.Local)),
			},
			year:     2024,
			quarter:  2,
			expected: false,
		},
		{
			name: "ganada en julio con hint desactualizado entra al Q3 por timestamp",
			deal: pipedrivedomain.Deal{
				WonTime:     timePtr(time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)),
				QuarterHint: 2,
			},
			year:     2024,
			quarter:  3,
			expected: true,
		},
		{
			name: "ganada en julio con hint 2 entra al Q2 por el hint del CRM",
			deal: pipedrivedomain.Deal{
				WonTime:     timePtr(time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)),
				QuarterHint: 2,
			},
			year:     2024,
			quarter:  2,
			expected: true,
		},
		{
			name: "ganada en julio sin hint no entra al Q2",
			deal: pipedrivedomain.Deal{
				WonTime: timePtr(time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)),
			},
			year:     2024,
			quarter:  2,
			expected: false,
		},
		{
			name: "hint cero nunca coincide con un trimestre válido",
			deal: pipedrivedomain.Deal{
				WonTime: timePtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)),
			},
			year:     2024,
			quarter:  4,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BelongsToQuarter(tt.deal, tt.year, tt.quarter))
		})
	}
}

func TestFilterByQuarter(t *testing.T) {
	deals := []pipedrivedomain.Deal{
		{ID: 1, WonTime: timePtr(time.Date(2024, 4, 2, 0, 0, 0, 0, time.Local))},
		{ID: 2, WonTime: timePtr(time.Date(2024, 8, 20, 0, 0, 0, 0, time.Local))},
		{ID: 3, WonTime: nil},
		{ID: 4, WonTime: timePtr(time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local))},
	}

	filtered := FilterByQuarter(deals, 2024, 2)

	assert.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 4, filtered[1].ID)
}

func TestFilterByQuarter_ListaVacia(t *testing.T) {
	filtered := FilterByQuarter(nil, 2024, 1)
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
