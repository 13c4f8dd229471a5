package response

import (
	"github.com/google/uuid"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/domain/vista"
	"github.com/guillotegh/sistema-reservas/internal/usecase"
)

type PagoResponse struct {
	ID     uuid.UUID      `json:"id"`
	Fecha  reserva.Fecha  `json:"fecha"`
	Metodo reserva.Metodo `json:"metodo"`
	Monto  float64        `json:"monto"`
}

// ReservaResponse carries the stored record plus every derived balance field
// so the client never re-computes payment state.
type ReservaResponse struct {
	ID                  uuid.UUID      `json:"id"`
	FechaCreacion       reserva.Fecha  `json:"fechaCreacion"`
	FechaViaje          reserva.Fecha  `json:"fechaViaje"`
	FechaRegreso        reserva.Fecha  `json:"fechaRegreso"`
	Titular             string         `json:"titular"`
	Destino             string         `json:"destino"`
	Operador            string         `json:"operador"`
	PrecioVenta         float64        `json:"precioVenta"`
	PrecioNeto          float64        `json:"precioNeto"`
	Moneda              reserva.Moneda `json:"moneda"`
	LiquidacionRecibida bool           `json:"liquidacionRecibida"`
	VoucherEnviado      bool           `json:"voucherEnviado"`
	PagosCliente        []PagoResponse `json:"pagosCliente"`
	PagosProveedor      []PagoResponse `json:"pagosProveedor"`

	TotalPagadoCliente   float64                `json:"totalPagadoCliente"`
	TotalPagadoProveedor float64                `json:"totalPagadoProveedor"`
	EstadoCliente        reserva.EstadoPago     `json:"estadoCliente"`
	EstadoProveedor      reserva.EstadoPago     `json:"estadoProveedor"`
	SaldoCliente         float64                `json:"saldoCliente"`
	SaldoProveedor       float64                `json:"saldoProveedor"`
	PorcentajeCliente    float64                `json:"porcentajeCliente"`
	PorcentajeProveedor  float64                `json:"porcentajeProveedor"`
	ProgresoCliente      reserva.NivelProgreso  `json:"progresoCliente"`
	ProgresoProveedor    reserva.NivelProgreso  `json:"progresoProveedor"`
	SobrepagoCliente     bool                   `json:"sobrepagoCliente"`
	SobrepagoProveedor   bool                   `json:"sobrepagoProveedor"`
	Completa             bool                   `json:"completa"`
}

func pagosResponse(pagos []reserva.Pago) []PagoResponse {
	out := make([]PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, PagoResponse{ID: p.ID, Fecha: p.Fecha, Metodo: p.Metodo, Monto: p.Monto})
	}
	return out
}

func FromReserva(r reserva.Reserva) ReservaResponse {
	return ReservaResponse{
		ID:                  r.ID,
		FechaCreacion:       r.FechaCreacion,
		FechaViaje:          r.FechaViaje,
		FechaRegreso:        r.FechaRegreso,
		Titular:             r.Titular,
		Destino:             r.Destino,
		Operador:            r.Operador,
		PrecioVenta:         r.PrecioVenta,
		PrecioNeto:          r.PrecioNeto,
		Moneda:              r.Moneda,
		LiquidacionRecibida: r.LiquidacionRecibida,
		VoucherEnviado:      r.VoucherEnviado,
		PagosCliente:        pagosResponse(r.PagosCliente),
		PagosProveedor:      pagosResponse(r.PagosProveedor),

		TotalPagadoCliente:   r.TotalPagadoCliente(),
		TotalPagadoProveedor: r.TotalPagadoProveedor(),
		EstadoCliente:        r.EstadoCliente(),
		EstadoProveedor:      r.EstadoProveedor(),
		SaldoCliente:         r.SaldoCliente(),
		SaldoProveedor:       r.SaldoProveedor(),
		PorcentajeCliente:    r.PorcentajeCliente(),
		PorcentajeProveedor:  r.PorcentajeProveedor(),
		ProgresoCliente:      reserva.ClasificarProgreso(r.PorcentajeCliente()),
		ProgresoProveedor:    reserva.ClasificarProgreso(r.PorcentajeProveedor()),
		SobrepagoCliente:     r.SobrepagoCliente(),
		SobrepagoProveedor:   r.SobrepagoProveedor(),
		Completa:             r.EsCompleta(),
	}
}

func fromReservas(rs []reserva.Reserva) []ReservaResponse {
	out := make([]ReservaResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReserva(r))
	}
	return out
}

type SeccionResponse struct {
	Grupo    vista.Grupo       `json:"grupo"`
	Reservas []ReservaResponse `json:"reservas"`
}

type ListaReservasResponse struct {
	Agrupado bool              `json:"agrupado"`
	Vacio    vista.EstadoVacio `json:"vacio,omitempty"`
	Reservas []ReservaResponse `json:"reservas,omitempty"`
	Grupos   []SeccionResponse `json:"grupos,omitempty"`
}

func FromResultado(res vista.Resultado) ListaReservasResponse {
	out := ListaReservasResponse{
		Agrupado: res.Agrupado,
		Vacio:    res.Vacio,
	}
	if res.Agrupado {
		out.Grupos = make([]SeccionResponse, 0, len(res.Secciones))
		for _, s := range res.Secciones {
			out.Grupos = append(out.Grupos, SeccionResponse{
				Grupo:    s.Grupo,
				Reservas: fromReservas(s.Reservas),
			})
		}
		return out
	}
	out.Reservas = fromReservas(res.Plano)
	return out
}

type SugerenciasResponse struct {
	Destinos   []string `json:"destinos"`
	Operadores []string `json:"operadores"`
}

func FromSugerencias(s usecase.Sugerencias) SugerenciasResponse {
	return SugerenciasResponse{Destinos: s.Destinos, Operadores: s.Operadores}
}
