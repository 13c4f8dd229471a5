//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillotegh/sistema-reservas/internal/handler/dto/request"
)

func TestMontoUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		want request.Monto
	}{
		{name: "number", json: `2500.5`, want: 2500.5},
		{name: "integer number", json: `1000`, want: 1000},
		{name: "numeric string", json: `"123.45"`, want: 123.45},
		{name: "numeric string with spaces", json: `"  400 "`, want: 400},
		{name: "unparseable string coerces to zero", json: `"abc"`, want: 0},
		{name: "empty string coerces to zero", json: `""`, want: 0},
		{name: "null coerces to zero", json: `null`, want: 0},
		{name: "boolean coerces to zero", json: `true`, want: 0},
		{name: "negative number", json: `-150.25`, want: -150.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m request.Monto
			err := json.Unmarshal([]byte(tt.json), &m)
			require.NoError(t, err, "Monto should never reject input")
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestCrearReservaRequestToParams(t *testing.T) {
	t.Parallel()

	req := request.CrearReservaRequest{
		FechaCreacion: "2026-03-02",
		FechaViaje:    "2026-03-15",
		FechaRegreso:  "pronto",
		Titular:       "Ana García",
		Destino:       "Bariloche",
		Operador:      "Andes Viajes",
		PrecioVenta:   1000,
		PrecioNeto:    800,
		Moneda:        "USD",
	}

	params := req.ToParams()
	assert.Equal(t, "2026-03-02", params.FechaCreacion.String())
	assert.Equal(t, "2026-03-15", params.FechaViaje.String())
	assert.Equal(t, "pronto", params.FechaRegreso.String(), "Malformed dates keep their raw value")
	assert.False(t, params.FechaRegreso.IsValid())
	assert.Equal(t, 1000.0, params.PrecioVenta)
	assert.Equal(t, "USD", string(params.Moneda))
}
