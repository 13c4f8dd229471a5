//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	reqdto "github.com/guillotegh/sistema-reservas/internal/handler/dto/request"
)

// ReservaBuilder assembles test reservations from a sensible base record.
type ReservaBuilder struct {
	Reserva reserva.Reserva
}

func NewReservaBuilder() *ReservaBuilder {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	return &ReservaBuilder{
		Reserva: reserva.Reserva{
			ID:             uuid.New(),
			FechaCreacion:  reserva.ParseFecha("2026-03-02"),
			FechaViaje:     reserva.ParseFecha("2026-03-15"),
			FechaRegreso:   reserva.ParseFecha("2026-03-22"),
			Titular:        "Ana García",
			Destino:        "Bariloche",
			Operador:       "Andes Viajes",
			PrecioVenta:    1000,
			PrecioNeto:     800,
			Moneda:         reserva.MonedaARS,
			PagosCliente:   []reserva.Pago{},
			PagosProveedor: []reserva.Pago{},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}

func (b *ReservaBuilder) With(mutate func(*ReservaBuilder)) *ReservaBuilder {
	mutate(b)
	return b
}

// Build returns a deep copy so shared builders never leak payment slices
// between test cases.
func (b *ReservaBuilder) Build() reserva.Reserva {
	var out reserva.Reserva
	if err := copier.CopyWithOption(&out, &b.Reserva, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return out
}

func (b *ReservaBuilder) BuildCrearRequestDTO() reqdto.CrearReservaRequest {
	return reqdto.CrearReservaRequest{
		FechaCreacion: b.Reserva.FechaCreacion.String(),
		FechaViaje:    b.Reserva.FechaViaje.String(),
		FechaRegreso:  b.Reserva.FechaRegreso.String(),
		Titular:       b.Reserva.Titular,
		Destino:       b.Reserva.Destino,
		Operador:      b.Reserva.Operador,
		PrecioVenta:   reqdto.Monto(b.Reserva.PrecioVenta),
		PrecioNeto:    reqdto.Monto(b.Reserva.PrecioNeto),
		Moneda:        string(b.Reserva.Moneda),
	}
}

// Fluent builder methods
func (b *ReservaBuilder) WithID(id uuid.UUID) *ReservaBuilder {
	b.Reserva.ID = id
	return b
}

func (b *ReservaBuilder) WithTitular(titular string) *ReservaBuilder {
	b.Reserva.Titular = titular
	return b
}

func (b *ReservaBuilder) WithDestino(destino string) *ReservaBuilder {
	b.Reserva.Destino = destino
	return b
}

func (b *ReservaBuilder) WithOperador(operador string) *ReservaBuilder {
	b.Reserva.Operador = operador
	return b
}

func (b *ReservaBuilder) WithFechaCreacion(fecha string) *ReservaBuilder {
	b.Reserva.FechaCreacion = reserva.ParseFecha(fecha)
	return b
}

func (b *ReservaBuilder) WithFechaViaje(fecha string) *ReservaBuilder {
	b.Reserva.FechaViaje = reserva.ParseFecha(fecha)
	return b
}

func (b *ReservaBuilder) WithFechaRegreso(fecha string) *ReservaBuilder {
	b.Reserva.FechaRegreso = reserva.ParseFecha(fecha)
	return b
}

func (b *ReservaBuilder) WithPrecios(venta, neto float64) *ReservaBuilder {
	b.Reserva.PrecioVenta = venta
	b.Reserva.PrecioNeto = neto
	return b
}

func (b *ReservaBuilder) WithMoneda(moneda reserva.Moneda) *ReservaBuilder {
	b.Reserva.Moneda = moneda
	return b
}

func (b *ReservaBuilder) WithVoucherEnviado(enviado bool) *ReservaBuilder {
	b.Reserva.VoucherEnviado = enviado
	return b
}

func (b *ReservaBuilder) WithLiquidacionRecibida(recibida bool) *ReservaBuilder {
	b.Reserva.LiquidacionRecibida = recibida
	return b
}

func (b *ReservaBuilder) ConPagoCliente(monto float64) *ReservaBuilder {
	pago := reserva.NuevoPago(b.Reserva.FechaCreacion, reserva.MetodoEfectivo, monto)
	b.Reserva.PagosCliente = append(b.Reserva.PagosCliente, pago)
	return b
}

func (b *ReservaBuilder) ConPagoProveedor(monto float64) *ReservaBuilder {
	pago := reserva.NuevoPago(b.Reserva.FechaCreacion, reserva.MetodoTransferencia, monto)
	b.Reserva.PagosProveedor = append(b.Reserva.PagosProveedor, pago)
	return b
}

// AsSaldada covers both sides in full with the voucher already sent.
func (b *ReservaBuilder) AsSaldada() *ReservaBuilder {
	return b.ConPagoCliente(b.Reserva.PrecioVenta).
		ConPagoProveedor(b.Reserva.PrecioNeto).
		WithVoucherEnviado(true)
}
