package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/infra"
	"github.com/guillotegh/sistema-reservas/internal/infra/repository"
	"github.com/guillotegh/sistema-reservas/internal/usecase"
)

// newTestRepo opens a single transaction and builds the repository on top of
// it. The rollback in Cleanup gives per-test isolation without truncating.
func newTestRepo(t *testing.T) usecase.ReservaRepository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository integration tests")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "open pool")
	t.Cleanup(pool.Close)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repository.NewReservaRepository(tx)
}

func reservaFixture() reserva.Reserva {
	return reserva.Reserva{
		ID:            uuid.New(),
		FechaCreacion: reserva.ParseFecha("2026-03-02"),
		FechaViaje:    reserva.ParseFecha("2026-03-15"),
		FechaRegreso:  reserva.ParseFecha("2026-03-22"),
		Titular:       "Ana García",
		Destino:       "Bariloche",
		Operador:      "Andes Viajes",
		PrecioVenta:   1000,
		PrecioNeto:    800,
		Moneda:        reserva.MonedaARS,
		PagosCliente: []reserva.Pago{
			reserva.NuevoPago(reserva.ParseFecha("2026-03-03"), reserva.MetodoEfectivo, 400),
		},
		PagosProveedor: []reserva.Pago{},
	}
}

func TestReservaRepository_Create(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	input := reservaFixture()
	got, err := repo.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.ID, got.ID)
	assert.Equal(t, "2026-03-02", got.FechaCreacion.String())
	assert.Equal(t, "Ana García", got.Titular)
	assert.Equal(t, reserva.MonedaARS, got.Moneda)
	require.Len(t, got.PagosCliente, 1)
	assert.Equal(t, input.PagosCliente[0].ID, got.PagosCliente[0].ID)
	assert.Equal(t, 400.0, got.PagosCliente[0].Monto)
	assert.Empty(t, got.PagosProveedor)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by the database")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by the database")
}

func TestReservaRepository_Create_PreservesRawDates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	input := reservaFixture()
	input.FechaViaje = reserva.ParseFecha("pronto")
	input.FechaRegreso = reserva.Fecha{}

	got, err := repo.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "pronto", got.FechaViaje.String(), "Malformed dates round-trip untouched")
	assert.False(t, got.FechaViaje.IsValid())
	assert.True(t, got.FechaRegreso.IsZero(), "Empty date stays NULL")
}

func TestReservaRepository_FindByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, reservaFixture())
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Titular, got.Titular)

	_, err = repo.FindByID(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservaRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, reservaFixture())
	require.NoError(t, err)

	modified := *created
	modified.Destino = "Mendoza"
	modified.VoucherEnviado = true
	modified.PagosProveedor = []reserva.Pago{
		reserva.NuevoPago(reserva.ParseFecha("2026-03-05"), reserva.MetodoTransferencia, 800),
	}

	got, err := repo.Update(ctx, modified)
	require.NoError(t, err)
	assert.Equal(t, "Mendoza", got.Destino)
	assert.True(t, got.VoucherEnviado)
	require.Len(t, got.PagosProveedor, 1)
	assert.Equal(t, 800.0, got.PagosProveedor[0].Monto)

	missing := reservaFixture()
	_, err = repo.Update(ctx, missing)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservaRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, reservaFixture())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	err = repo.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservaRepository_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	vieja := reservaFixture()
	vieja.FechaCreacion = reserva.ParseFecha("2026-02-10")
	nueva := reservaFixture()
	nueva.FechaCreacion = reserva.ParseFecha("2026-03-20")

	_, err := repo.Create(ctx, vieja)
	require.NoError(t, err)
	_, err = repo.Create(ctx, nueva)
	require.NoError(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, nueva.ID, got[0].ID, "Newest creation date first")
	assert.Equal(t, vieja.ID, got[1].ID)
}

func TestReservaRepository_Distinct(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, r := range []struct{ destino, operador string }{
		{"Bariloche", "Andes Viajes"},
		{"Bariloche", "Sur Tours"},
		{"Mendoza", "Andes Viajes"},
	} {
		fixture := reservaFixture()
		fixture.Destino = r.destino
		fixture.Operador = r.operador
		_, err := repo.Create(ctx, fixture)
		require.NoError(t, err)
	}

	destinos, err := repo.DistinctDestinos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bariloche", "Mendoza"}, destinos)

	operadores, err := repo.DistinctOperadores(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Andes Viajes", "Sur Tours"}, operadores)
}
