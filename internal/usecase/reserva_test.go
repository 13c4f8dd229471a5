//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/domain/vista"
	"github.com/guillotegh/sistema-reservas/internal/infra"
	"github.com/guillotegh/sistema-reservas/internal/pkg/clock"
	"github.com/guillotegh/sistema-reservas/internal/pkg/errs"
	"github.com/guillotegh/sistema-reservas/internal/usecase"
	"github.com/guillotegh/sistema-reservas/tests/common/builder"
	usecasemock "github.com/guillotegh/sistema-reservas/tests/mock/usecase"
)

var errNoRows = errors.New("no rows in result set")

type ReservaUseCaseTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *usecasemock.MockReservaRepository
	clock    *clock.MockClock
	useCase  usecase.ReservaUseCase
	ctx      context.Context
	notFound error
}

func (s *ReservaUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockReservaRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC))
	s.useCase = usecase.NewReservaUseCase(s.repo, s.clock)
	s.ctx = context.Background()
	s.notFound = infra.WrapRepoErr("reserva not found", errNoRows, infra.KindNotFound)
}

func (s *ReservaUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservaUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReservaUseCaseTestSuite))
}

func (s *ReservaUseCaseTestSuite) TestCrear() {
	s.Run("aplica los valores por defecto", func() {
		params := usecase.CrearReservaParams{
			FechaViaje:  reserva.ParseFecha("2026-03-15"),
			Titular:     "  Ana García  ",
			Destino:     "Bariloche",
			Operador:    "Andes Viajes",
			PrecioVenta: 1000,
		}

		s.repo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.NotEqual(uuid.Nil, r.ID)
				s.Equal("Ana García", r.Titular, "titular is trimmed")
				s.Equal(reserva.MonedaARS, r.Moneda, "empty currency defaults to ARS")
				s.Equal("2026-03-04", r.FechaCreacion.String(), "missing creation date defaults to today")
				s.NotNil(r.PagosCliente)
				s.NotNil(r.PagosProveedor)
				return &r, nil
			})

		created, err := s.useCase.Crear(s.ctx, params)
		s.NoError(err)
		s.NotNil(created)
	})

	s.Run("respeta la fecha de creacion explicita", func() {
		params := usecase.CrearReservaParams{
			FechaCreacion: reserva.ParseFecha("2026-02-01"),
			FechaViaje:    reserva.ParseFecha("2026-03-15"),
			Titular:       "Ana",
			Destino:       "Bariloche",
			Operador:      "Andes",
			PrecioVenta:   1000,
		}

		s.repo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.Equal("2026-02-01", r.FechaCreacion.String())
				return &r, nil
			})

		_, err := s.useCase.Crear(s.ctx, params)
		s.NoError(err)
	})

	s.Run("rechaza campos obligatorios vacios", func() {
		params := usecase.CrearReservaParams{
			FechaViaje:  reserva.ParseFecha("2026-03-15"),
			Titular:     "   ",
			Destino:     "Bariloche",
			Operador:    "Andes",
			PrecioVenta: 1000,
		}

		_, err := s.useCase.Crear(s.ctx, params)
		s.ErrorIs(err, usecase.ErrValidacion)
	})

	s.Run("rechaza moneda desconocida", func() {
		params := usecase.CrearReservaParams{
			FechaViaje:  reserva.ParseFecha("2026-03-15"),
			Titular:     "Ana",
			Destino:     "Bariloche",
			Operador:    "Andes",
			PrecioVenta: 1000,
			Moneda:      "EUR",
		}

		_, err := s.useCase.Crear(s.ctx, params)
		s.ErrorIs(err, usecase.ErrMonedaInvalida)
	})
}

func (s *ReservaUseCaseTestSuite) TestObtener() {
	s.Run("devuelve la reserva", func() {
		r := builder.NewReservaBuilder().Build()
		s.repo.EXPECT().FindByID(s.ctx, r.ID).Return(&r, nil)

		got, err := s.useCase.Obtener(s.ctx, r.ID)
		s.NoError(err)
		s.Equal(r.ID, got.ID)
	})

	s.Run("traduce not found", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(s.ctx, id).Return(nil, s.notFound)

		_, err := s.useCase.Obtener(s.ctx, id)
		s.True(errs.Is(err, usecase.ErrReservaNotFound))
	})
}

func (s *ReservaUseCaseTestSuite) TestListar() {
	s.Run("agrupa con la fecha actual del reloj", func() {
		deHoy := builder.NewReservaBuilder().WithFechaCreacion("2026-03-04").Build()
		s.repo.EXPECT().List(s.ctx).Return([]reserva.Reserva{deHoy}, nil)

		got, err := s.useCase.Listar(s.ctx, vista.Config{Filtros: vista.NuevosFiltros()})
		s.NoError(err)
		s.True(got.Agrupado)
		s.Require().Len(got.Secciones, 1)
		s.Equal(vista.GrupoHoy, got.Secciones[0].Grupo)
	})

	s.Run("propaga errores de persistencia", func() {
		s.repo.EXPECT().List(s.ctx).Return(nil, errors.New("connection refused"))

		_, err := s.useCase.Listar(s.ctx, vista.Config{Filtros: vista.NuevosFiltros()})
		s.True(errs.Is(err, usecase.ErrPersistencia))
	})
}

func (s *ReservaUseCaseTestSuite) TestActualizar() {
	base := builder.NewReservaBuilder().Build()
	params := usecase.ActualizarReservaParams{
		FechaCreacion:  base.FechaCreacion,
		FechaViaje:     reserva.ParseFecha("2026-05-01"),
		Titular:        "Nuevo Titular",
		Destino:        "Mendoza",
		Operador:       "Cuyo Tour",
		PrecioVenta:    2000,
		PrecioNeto:     1500,
		Moneda:         reserva.MonedaUSD,
		VoucherEnviado: true,
	}

	s.Run("reemplaza los campos sobre el registro cargado", func() {
		conPagos := builder.NewReservaBuilder().ConPagoCliente(300).Build()
		s.repo.EXPECT().FindByID(s.ctx, conPagos.ID).Return(&conPagos, nil)
		s.repo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.Equal("Nuevo Titular", r.Titular)
				s.Equal(reserva.MonedaUSD, r.Moneda)
				s.True(r.VoucherEnviado)
				s.Len(r.PagosCliente, 1, "payments survive a field update")
				return &r, nil
			})

		_, err := s.useCase.Actualizar(s.ctx, conPagos.ID, params)
		s.NoError(err)
	})

	s.Run("traduce not found", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(s.ctx, id).Return(nil, s.notFound)

		_, err := s.useCase.Actualizar(s.ctx, id, params)
		s.True(errs.Is(err, usecase.ErrReservaNotFound))
	})
}

func (s *ReservaUseCaseTestSuite) TestEliminar() {
	s.Run("borra", func() {
		id := uuid.New()
		s.repo.EXPECT().Delete(s.ctx, id).Return(nil)
		s.NoError(s.useCase.Eliminar(s.ctx, id))
	})

	s.Run("traduce not found", func() {
		id := uuid.New()
		s.repo.EXPECT().Delete(s.ctx, id).Return(s.notFound)
		s.True(errs.Is(s.useCase.Eliminar(s.ctx, id), usecase.ErrReservaNotFound))
	})
}

func (s *ReservaUseCaseTestSuite) TestAgregarPago() {
	s.Run("agrega al lado pedido con fecha por defecto", func() {
		base := builder.NewReservaBuilder().Build()
		s.repo.EXPECT().FindByID(s.ctx, base.ID).Return(&base, nil)
		s.repo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.Require().Len(r.PagosCliente, 1)
				s.Equal(float64(400), r.PagosCliente[0].Monto)
				s.Equal("2026-03-04", r.PagosCliente[0].Fecha.String())
				s.Empty(r.PagosProveedor)
				return &r, nil
			})

		_, err := s.useCase.AgregarPago(s.ctx, base.ID, reserva.LadoCliente, usecase.AgregarPagoParams{
			Metodo: reserva.MetodoEfectivo,
			Monto:  400,
		})
		s.NoError(err)
	})

	s.Run("rechaza lado desconocido", func() {
		_, err := s.useCase.AgregarPago(s.ctx, uuid.New(), "otro", usecase.AgregarPagoParams{
			Metodo: reserva.MetodoEfectivo,
		})
		s.ErrorIs(err, usecase.ErrLadoInvalido)
	})

	s.Run("rechaza metodo desconocido", func() {
		_, err := s.useCase.AgregarPago(s.ctx, uuid.New(), reserva.LadoCliente, usecase.AgregarPagoParams{
			Metodo: "Cheque",
		})
		s.ErrorIs(err, usecase.ErrMetodoInvalido)
	})
}

func (s *ReservaUseCaseTestSuite) TestEditarMontoPago() {
	s.Run("cambia el monto del pago", func() {
		base := builder.NewReservaBuilder().ConPagoCliente(100).Build()
		pagoID := base.PagosCliente[0].ID

		s.repo.EXPECT().FindByID(s.ctx, base.ID).Return(&base, nil)
		s.repo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.Equal(float64(250), r.PagosCliente[0].Monto)
				return &r, nil
			})

		_, err := s.useCase.EditarMontoPago(s.ctx, base.ID, reserva.LadoCliente, pagoID, 250)
		s.NoError(err)
	})

	s.Run("pago inexistente no escribe", func() {
		base := builder.NewReservaBuilder().Build()
		s.repo.EXPECT().FindByID(s.ctx, base.ID).Return(&base, nil)

		_, err := s.useCase.EditarMontoPago(s.ctx, base.ID, reserva.LadoCliente, uuid.New(), 250)
		s.ErrorIs(err, usecase.ErrPagoNotFound)
	})
}

func (s *ReservaUseCaseTestSuite) TestEliminarPago() {
	s.Run("quita el pago", func() {
		base := builder.NewReservaBuilder().ConPagoProveedor(500).Build()
		pagoID := base.PagosProveedor[0].ID

		s.repo.EXPECT().FindByID(s.ctx, base.ID).Return(&base, nil)
		s.repo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.Empty(r.PagosProveedor)
				return &r, nil
			})

		_, err := s.useCase.EliminarPago(s.ctx, base.ID, reserva.LadoProveedor, pagoID)
		s.NoError(err)
	})

	s.Run("pago inexistente no escribe", func() {
		base := builder.NewReservaBuilder().Build()
		s.repo.EXPECT().FindByID(s.ctx, base.ID).Return(&base, nil)

		_, err := s.useCase.EliminarPago(s.ctx, base.ID, reserva.LadoProveedor, uuid.New())
		s.ErrorIs(err, usecase.ErrPagoNotFound)
	})
}

func (s *ReservaUseCaseTestSuite) TestToggles() {
	s.Run("liquidacion alterna", func() {
		base := builder.NewReservaBuilder().WithLiquidacionRecibida(true).Build()
		s.repo.EXPECT().FindByID(s.ctx, base.ID).Return(&base, nil)
		s.repo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.False(r.LiquidacionRecibida)
				return &r, nil
			})

		_, err := s.useCase.ToggleLiquidacion(s.ctx, base.ID)
		s.NoError(err)
	})

	s.Run("voucher alterna", func() {
		base := builder.NewReservaBuilder().Build()
		s.repo.EXPECT().FindByID(s.ctx, base.ID).Return(&base, nil)
		s.repo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r reserva.Reserva) (*reserva.Reserva, error) {
				s.True(r.VoucherEnviado)
				return &r, nil
			})

		_, err := s.useCase.ToggleVoucher(s.ctx, base.ID)
		s.NoError(err)
	})
}

func (s *ReservaUseCaseTestSuite) TestObtenerSugerencias() {
	s.repo.EXPECT().DistinctDestinos(s.ctx).Return([]string{"Bariloche", "Mendoza"}, nil)
	s.repo.EXPECT().DistinctOperadores(s.ctx).Return([]string{"Andes Viajes"}, nil)

	got, err := s.useCase.ObtenerSugerencias(s.ctx)
	s.NoError(err)
	s.Equal([]string{"Bariloche", "Mendoza"}, got.Destinos)
	s.Equal([]string{"Andes Viajes"}, got.Operadores)
}
