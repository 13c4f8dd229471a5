// Package usecase orchestrates the pure domain engine against the
// persistence collaborator. Every mutation follows the same shape: load the
// current snapshot, derive a new record value through the domain, hand it to
// the repository, and return whatever state came back. A rejected write
// leaves the caller's snapshot untouched.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/domain/vista"
	"github.com/guillotegh/sistema-reservas/internal/infra"
	"github.com/guillotegh/sistema-reservas/internal/pkg/clock"
	"github.com/guillotegh/sistema-reservas/internal/pkg/errs"
)

var (
	ErrReservaNotFound = errs.New("reserva not found")
	ErrPagoNotFound    = errs.New("pago not found")
	ErrValidacion      = errs.New("validation failed")
	ErrLadoInvalido    = errs.New("invalid payment side")
	ErrMonedaInvalida  = errs.New("invalid currency")
	ErrMetodoInvalido  = errs.New("invalid payment method")

	// Error marker for persistence failures surfaced to handlers as 500s.
	ErrPersistencia = errs.New("persistence operation failed")
)

// ReservaRepository is the persistence collaborator boundary: whole-record
// replace/insert/delete keyed by id, plus the ordered initial collection.
type ReservaRepository interface {
	// List returns every reservation ordered by fecha_creacion descending,
	// the upstream order the view pipeline's buckets rely on.
	List(ctx context.Context) ([]reserva.Reserva, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error)
	Create(ctx context.Context, r reserva.Reserva) (*reserva.Reserva, error)
	Update(ctx context.Context, r reserva.Reserva) (*reserva.Reserva, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DistinctDestinos(ctx context.Context) ([]string, error)
	DistinctOperadores(ctx context.Context) ([]string, error)
}

type CrearReservaParams struct {
	FechaCreacion reserva.Fecha
	FechaViaje    reserva.Fecha
	FechaRegreso  reserva.Fecha
	Titular       string
	Destino       string
	Operador      string
	PrecioVenta   float64
	PrecioNeto    float64
	Moneda        reserva.Moneda
}

type ActualizarReservaParams struct {
	FechaCreacion       reserva.Fecha
	FechaViaje          reserva.Fecha
	FechaRegreso        reserva.Fecha
	Titular             string
	Destino             string
	Operador            string
	PrecioVenta         float64
	PrecioNeto          float64
	Moneda              reserva.Moneda
	LiquidacionRecibida bool
	VoucherEnviado      bool
}

type AgregarPagoParams struct {
	Fecha  reserva.Fecha
	Metodo reserva.Metodo
	Monto  float64
}

// Sugerencias feeds the form's autocomplete inputs.
type Sugerencias struct {
	Destinos   []string
	Operadores []string
}

type ReservaUseCase interface {
	Crear(ctx context.Context, params CrearReservaParams) (*reserva.Reserva, error)
	Obtener(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error)
	Listar(ctx context.Context, cfg vista.Config) (vista.Resultado, error)
	Actualizar(ctx context.Context, id uuid.UUID, params ActualizarReservaParams) (*reserva.Reserva, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	AgregarPago(ctx context.Context, id uuid.UUID, lado reserva.Lado, params AgregarPagoParams) (*reserva.Reserva, error)
	EditarMontoPago(ctx context.Context, id uuid.UUID, lado reserva.Lado, pagoID uuid.UUID, monto float64) (*reserva.Reserva, error)
	EliminarPago(ctx context.Context, id uuid.UUID, lado reserva.Lado, pagoID uuid.UUID) (*reserva.Reserva, error)

	ToggleLiquidacion(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error)
	ToggleVoucher(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error)

	ObtenerSugerencias(ctx context.Context) (*Sugerencias, error)
}

type reservaUseCaseImpl struct {
	repo  ReservaRepository
	clock clock.Clock
}

func NewReservaUseCase(repo ReservaRepository, clock clock.Clock) ReservaUseCase {
	return &reservaUseCaseImpl{repo: repo, clock: clock}
}

func (u *reservaUseCaseImpl) Crear(ctx context.Context, params CrearReservaParams) (*reserva.Reserva, error) {
	if err := validarCampos(params.FechaViaje, params.Titular, params.Destino, params.Operador, params.PrecioVenta); err != nil {
		return nil, err
	}
	moneda := params.Moneda
	if moneda == "" {
		moneda = reserva.MonedaARS
	}
	if !moneda.IsValid() {
		return nil, ErrMonedaInvalida
	}

	fechaCreacion := params.FechaCreacion
	if fechaCreacion.IsZero() {
		fechaCreacion = reserva.FechaDesde(u.clock.Now())
	}

	r := reserva.Reserva{
		ID:             uuid.New(),
		FechaCreacion:  fechaCreacion,
		FechaViaje:     params.FechaViaje,
		FechaRegreso:   params.FechaRegreso,
		Titular:        strings.TrimSpace(params.Titular),
		Destino:        strings.TrimSpace(params.Destino),
		Operador:       strings.TrimSpace(params.Operador),
		PrecioVenta:    params.PrecioVenta,
		PrecioNeto:     params.PrecioNeto,
		Moneda:         moneda,
		PagosCliente:   []reserva.Pago{},
		PagosProveedor: []reserva.Pago{},
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistencia)
	}
	return created, nil
}

func (u *reservaUseCaseImpl) Obtener(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error) {
	r, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, marcarNotFound(err)
	}
	return r, nil
}

func (u *reservaUseCaseImpl) Listar(ctx context.Context, cfg vista.Config) (vista.Resultado, error) {
	reservas, err := u.repo.List(ctx)
	if err != nil {
		return vista.Resultado{}, errs.Mark(err, ErrPersistencia)
	}
	hoy := reserva.FechaDesde(u.clock.Now())
	return vista.Aplicar(reservas, cfg, hoy), nil
}

func (u *reservaUseCaseImpl) Actualizar(ctx context.Context, id uuid.UUID, params ActualizarReservaParams) (*reserva.Reserva, error) {
	if err := validarCampos(params.FechaViaje, params.Titular, params.Destino, params.Operador, params.PrecioVenta); err != nil {
		return nil, err
	}
	if !params.Moneda.IsValid() {
		return nil, ErrMonedaInvalida
	}

	return u.mutar(ctx, id, func(r reserva.Reserva) (reserva.Reserva, error) {
		r.FechaCreacion = params.FechaCreacion
		r.FechaViaje = params.FechaViaje
		r.FechaRegreso = params.FechaRegreso
		r.Titular = strings.TrimSpace(params.Titular)
		r.Destino = strings.TrimSpace(params.Destino)
		r.Operador = strings.TrimSpace(params.Operador)
		r.PrecioVenta = params.PrecioVenta
		r.PrecioNeto = params.PrecioNeto
		r.Moneda = params.Moneda
		r.LiquidacionRecibida = params.LiquidacionRecibida
		r.VoucherEnviado = params.VoucherEnviado
		return r, nil
	})
}

func (u *reservaUseCaseImpl) Eliminar(ctx context.Context, id uuid.UUID) error {
	// Hard delete: the record's payments live inside it, so they go with it.
	if err := u.repo.Delete(ctx, id); err != nil {
		return marcarNotFound(err)
	}
	return nil
}

func (u *reservaUseCaseImpl) AgregarPago(ctx context.Context, id uuid.UUID, lado reserva.Lado, params AgregarPagoParams) (*reserva.Reserva, error) {
	if !lado.IsValid() {
		return nil, ErrLadoInvalido
	}
	if !params.Metodo.IsValid() {
		return nil, ErrMetodoInvalido
	}
	fecha := params.Fecha
	if fecha.IsZero() {
		fecha = reserva.FechaDesde(u.clock.Now())
	}

	return u.mutar(ctx, id, func(r reserva.Reserva) (reserva.Reserva, error) {
		return r.ConPago(lado, reserva.NuevoPago(fecha, params.Metodo, params.Monto)), nil
	})
}

func (u *reservaUseCaseImpl) EditarMontoPago(ctx context.Context, id uuid.UUID, lado reserva.Lado, pagoID uuid.UUID, monto float64) (*reserva.Reserva, error) {
	if !lado.IsValid() {
		return nil, ErrLadoInvalido
	}
	return u.mutar(ctx, id, func(r reserva.Reserva) (reserva.Reserva, error) {
		if _, ok := r.BuscarPago(lado, pagoID); !ok {
			return reserva.Reserva{}, ErrPagoNotFound
		}
		return r.ConMontoPago(lado, pagoID, monto), nil
	})
}

func (u *reservaUseCaseImpl) EliminarPago(ctx context.Context, id uuid.UUID, lado reserva.Lado, pagoID uuid.UUID) (*reserva.Reserva, error) {
	if !lado.IsValid() {
		return nil, ErrLadoInvalido
	}
	return u.mutar(ctx, id, func(r reserva.Reserva) (reserva.Reserva, error) {
		if _, ok := r.BuscarPago(lado, pagoID); !ok {
			return reserva.Reserva{}, ErrPagoNotFound
		}
		return r.SinPago(lado, pagoID), nil
	})
}

func (u *reservaUseCaseImpl) ToggleLiquidacion(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error) {
	return u.mutar(ctx, id, func(r reserva.Reserva) (reserva.Reserva, error) {
		r.LiquidacionRecibida = !r.LiquidacionRecibida
		return r, nil
	})
}

func (u *reservaUseCaseImpl) ToggleVoucher(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error) {
	return u.mutar(ctx, id, func(r reserva.Reserva) (reserva.Reserva, error) {
		r.VoucherEnviado = !r.VoucherEnviado
		return r, nil
	})
}

func (u *reservaUseCaseImpl) ObtenerSugerencias(ctx context.Context) (*Sugerencias, error) {
	destinos, err := u.repo.DistinctDestinos(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistencia)
	}
	operadores, err := u.repo.DistinctOperadores(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistencia)
	}
	return &Sugerencias{Destinos: destinos, Operadores: operadores}, nil
}

// mutar loads the current snapshot, derives the next record value, and
// submits a whole-record replace. The derivation operates on a copy, so a
// rejected write changes nothing.
func (u *reservaUseCaseImpl) mutar(ctx context.Context, id uuid.UUID, fn func(reserva.Reserva) (reserva.Reserva, error)) (*reserva.Reserva, error) {
	actual, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, marcarNotFound(err)
	}

	siguiente, err := fn(*actual)
	if err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, siguiente)
	if err != nil {
		return nil, marcarNotFound(err)
	}
	return updated, nil
}

func validarCampos(fechaViaje reserva.Fecha, titular, destino, operador string, precioVenta float64) error {
	switch {
	case fechaViaje.IsZero(),
		strings.TrimSpace(titular) == "",
		strings.TrimSpace(destino) == "",
		strings.TrimSpace(operador) == "":
		return ErrValidacion
	case precioVenta < 0:
		return ErrValidacion
	}
	return nil
}

func marcarNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReservaNotFound)
	}
	return errs.Mark(err, ErrPersistencia)
}
