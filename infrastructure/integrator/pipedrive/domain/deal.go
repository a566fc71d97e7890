package pipedrivedomain

import (
	"time"
)

// WonTimeLayout es el formato de fecha que devuelve el CRM para won_time.
const WonTimeLayout = "2006-01-02 15:04:05"

// Deal es una operación del CRM normalizada para el subsistema de metas.
// Es de solo lectura: el portal nunca escribe de vuelta en el CRM.
type Deal struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Value float64 `json:"value"`

	// FeeMensual es el campo personalizado de fee recurrente. Cuando está
	// presente y es mayor a cero, pesa más que Value para el avance de metas.
	FeeMensual *float64 `json:"fee_mensual"`

	// WonTime es el momento en que la operación se marcó como ganada.
	// Una operación sin WonTime todavía no es atribuible a ningún trimestre.
	WonTime *time.Time `json:"won_time"`

	// QuarterHint es el trimestre que reporta el propio CRM (campo
	// personalizado cargado a mano, puede estar desactualizado). Cero si
	// no fue informado.
	QuarterHint int `json:"quarter_hint"`

	// MapacheAsignado es el nombre y apellido del preventor asignado.
	MapacheAsignado string `json:"mapache_asignado"`

	// OwnerEmail es el email del dueño de la operación en el CRM.
	OwnerEmail string `json:"owner_email"`
}
