// Package reserva contains the booking ledger's core entity and the pure
// balance engine that derives financial state from raw payment history.
// Nothing here performs I/O; every derivation is recomputed from the
// reservation snapshot it is given.
package reserva

import (
	"time"

	"github.com/google/uuid"
)

// Reserva is the central record of the ledger: one travel reservation with
// its client-facing and supplier-facing payment histories.
//
// PrecioNeto is the supplier-side benchmark; 0 means "no supplier cost", in
// which case the supplier side is considered fully settled no matter what
// payments were recorded against it.
type Reserva struct {
	ID uuid.UUID `json:"id"`

	FechaCreacion Fecha `json:"fechaCreacion"`
	FechaViaje    Fecha `json:"fechaViaje"`
	FechaRegreso  Fecha `json:"fechaRegreso,omitempty"` // zero when one-way

	Titular  string `json:"titular"`
	Destino  string `json:"destino"`
	Operador string `json:"operador"`

	PrecioVenta float64 `json:"precioVenta"`
	PrecioNeto  float64 `json:"precioNeto"`
	Moneda      Moneda  `json:"moneda"`

	LiquidacionRecibida bool `json:"liquidacionRecibida"`
	VoucherEnviado      bool `json:"voucherEnviado"`

	PagosCliente   []Pago `json:"pagosCliente"`
	PagosProveedor []Pago `json:"pagosProveedor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// pagosDeLado selects a side's payment sequence.
func (r Reserva) pagosDeLado(lado Lado) []Pago {
	if lado == LadoProveedor {
		return r.PagosProveedor
	}
	return r.PagosCliente
}

// conPagosDeLado returns a copy of the reservation with the given side's
// payment sequence replaced. The receiver is never mutated.
func (r Reserva) conPagosDeLado(lado Lado, pagos []Pago) Reserva {
	if lado == LadoProveedor {
		r.PagosProveedor = pagos
	} else {
		r.PagosCliente = pagos
	}
	return r
}

// ConPago appends a payment to one side, returning the modified copy.
func (r Reserva) ConPago(lado Lado, p Pago) Reserva {
	return r.conPagosDeLado(lado, agregarPago(r.pagosDeLado(lado), p))
}

// SinPago removes a payment by id from one side, returning the modified copy.
func (r Reserva) SinPago(lado Lado, id uuid.UUID) Reserva {
	return r.conPagosDeLado(lado, eliminarPago(r.pagosDeLado(lado), id))
}

// ConMontoPago replaces the amount of a payment by id, returning the
// modified copy.
func (r Reserva) ConMontoPago(lado Lado, id uuid.UUID, monto float64) Reserva {
	return r.conPagosDeLado(lado, editarMontoPago(r.pagosDeLado(lado), id, monto))
}

// BuscarPago finds a payment by id on one side.
func (r Reserva) BuscarPago(lado Lado, id uuid.UUID) (Pago, bool) {
	for _, p := range r.pagosDeLado(lado) {
		if p.ID == id {
			return p, true
		}
	}
	return Pago{}, false
}
