package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/usecase"
)

// Monto accepts a JSON number or a numeric string. Un-parseable input
// coerces to 0 at this boundary instead of failing the request; amount
// validation is a presentation concern.
type Monto float64

func (m *Monto) UnmarshalJSON(data []byte) error {
	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*m = Monto(asNumber)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(asString), 64)
		if err != nil {
			parsed = 0
		}
		*m = Monto(parsed)
		return nil
	}

	*m = 0
	return nil
}

type CrearReservaRequest struct {
	FechaCreacion string `json:"fechaCreacion"`
	FechaViaje    string `json:"fechaViaje" binding:"required"`
	FechaRegreso  string `json:"fechaRegreso"`
	Titular       string `json:"titular" binding:"required"`
	Destino       string `json:"destino" binding:"required"`
	Operador      string `json:"operador" binding:"required"`
	PrecioVenta   Monto  `json:"precioVenta"`
	PrecioNeto    Monto  `json:"precioNeto"`
	Moneda        string `json:"moneda"`
}

func (r CrearReservaRequest) ToParams() usecase.CrearReservaParams {
	return usecase.CrearReservaParams{
		FechaCreacion: reserva.ParseFecha(r.FechaCreacion),
		FechaViaje:    reserva.ParseFecha(r.FechaViaje),
		FechaRegreso:  reserva.ParseFecha(r.FechaRegreso),
		Titular:       r.Titular,
		Destino:       r.Destino,
		Operador:      r.Operador,
		PrecioVenta:   float64(r.PrecioVenta),
		PrecioNeto:    float64(r.PrecioNeto),
		Moneda:        reserva.Moneda(r.Moneda),
	}
}

type ActualizarReservaRequest struct {
	FechaCreacion       string `json:"fechaCreacion"`
	FechaViaje          string `json:"fechaViaje" binding:"required"`
	FechaRegreso        string `json:"fechaRegreso"`
	Titular             string `json:"titular" binding:"required"`
	Destino             string `json:"destino" binding:"required"`
	Operador            string `json:"operador" binding:"required"`
	PrecioVenta         Monto  `json:"precioVenta"`
	PrecioNeto          Monto  `json:"precioNeto"`
	Moneda              string `json:"moneda"`
	LiquidacionRecibida bool   `json:"liquidacionRecibida"`
	VoucherEnviado      bool   `json:"voucherEnviado"`
}

func (r ActualizarReservaRequest) ToParams() usecase.ActualizarReservaParams {
	return usecase.ActualizarReservaParams{
		FechaCreacion:       reserva.ParseFecha(r.FechaCreacion),
		FechaViaje:          reserva.ParseFecha(r.FechaViaje),
		FechaRegreso:        reserva.ParseFecha(r.FechaRegreso),
		Titular:             r.Titular,
		Destino:             r.Destino,
		Operador:            r.Operador,
		PrecioVenta:         float64(r.PrecioVenta),
		PrecioNeto:          float64(r.PrecioNeto),
		Moneda:              reserva.Moneda(r.Moneda),
		LiquidacionRecibida: r.LiquidacionRecibida,
		VoucherEnviado:      r.VoucherEnviado,
	}
}

type AgregarPagoRequest struct {
	Fecha  string `json:"fecha"`
	Metodo string `json:"metodo" binding:"required"`
	Monto  Monto  `json:"monto"`
}

func (r AgregarPagoRequest) ToParams() usecase.AgregarPagoParams {
	return usecase.AgregarPagoParams{
		Fecha:  reserva.ParseFecha(r.Fecha),
		Metodo: reserva.Metodo(r.Metodo),
		Monto:  float64(r.Monto),
	}
}

type EditarMontoPagoRequest struct {
	Monto Monto `json:"monto"`
}
