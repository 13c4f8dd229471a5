// Package repository contains the Postgres persistence for the booking
// ledger. Payment histories are stored as JSONB arrays inside the
// reservation row, so every write is a whole-record replace and deleting a
// reservation discards its payments with it.
package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/infra"
	"github.com/guillotegh/sistema-reservas/internal/pkg/pgconv"
	"github.com/guillotegh/sistema-reservas/internal/usecase"
)

// DB is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Integration tests pass a transaction that is rolled back after
// each test, giving per-test isolation without manual cleanup.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgReservaRepository struct {
	db DB
}

// NewReservaRepository constructs the Postgres-backed repository. In
// production pass *pgxpool.Pool; in tests a pgx.Tx works as well.
func NewReservaRepository(db DB) usecase.ReservaRepository {
	return &pgReservaRepository{db: db}
}

const reservaColumns = `
	id, fecha_creacion, fecha_viaje, fecha_regreso,
	titular, destino, operador,
	precio_venta, precio_neto, moneda,
	liquidacion_recibida, voucher_enviado,
	pagos_cliente, pagos_proveedor,
	created_at, updated_at`

func (r *pgReservaRepository) List(ctx context.Context) ([]reserva.Reserva, error) {
	q := `SELECT ` + reservaColumns + `
		FROM reservas
		ORDER BY fecha_creacion DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservas", err)
	}
	defer rows.Close()

	result := make([]reserva.Reserva, 0)
	for rows.Next() {
		rec, err := scanReserva(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reserva row", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservas", err)
	}
	return result, nil
}

func (r *pgReservaRepository) FindByID(ctx context.Context, id uuid.UUID) (*reserva.Reserva, error) {
	q := `SELECT ` + reservaColumns + ` FROM reservas WHERE id = @id`

	rec, err := scanReserva(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reserva not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reserva by id", err)
	}
	return &rec, nil
}

func (r *pgReservaRepository) Create(ctx context.Context, rec reserva.Reserva) (*reserva.Reserva, error) {
	q := `
		INSERT INTO reservas (
			id, fecha_creacion, fecha_viaje, fecha_regreso,
			titular, destino, operador,
			precio_venta, precio_neto, moneda,
			liquidacion_recibida, voucher_enviado,
			pagos_cliente, pagos_proveedor
		) VALUES (
			@id, @fecha_creacion, @fecha_viaje, @fecha_regreso,
			@titular, @destino, @operador,
			@precio_venta, @precio_neto, @moneda,
			@liquidacion_recibida, @voucher_enviado,
			@pagos_cliente, @pagos_proveedor
		)
		RETURNING ` + reservaColumns

	args, err := reservaArgs(rec)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode reserva", err)
	}

	created, err := scanReserva(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reserva", err)
	}
	return &created, nil
}

func (r *pgReservaRepository) Update(ctx context.Context, rec reserva.Reserva) (*reserva.Reserva, error) {
	q := `
		UPDATE reservas SET
			fecha_creacion = @fecha_creacion,
			fecha_viaje = @fecha_viaje,
			fecha_regreso = @fecha_regreso,
			titular = @titular,
			destino = @destino,
			operador = @operador,
			precio_venta = @precio_venta,
			precio_neto = @precio_neto,
			moneda = @moneda,
			liquidacion_recibida = @liquidacion_recibida,
			voucher_enviado = @voucher_enviado,
			pagos_cliente = @pagos_cliente,
			pagos_proveedor = @pagos_proveedor,
			updated_at = now()
		WHERE id = @id
		RETURNING ` + reservaColumns

	args, err := reservaArgs(rec)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode reserva", err)
	}

	updated, err := scanReserva(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reserva not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update reserva", err)
	}
	return &updated, nil
}

func (r *pgReservaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservas WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return infra.WrapRepoErr("failed to delete reserva", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reserva not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *pgReservaRepository) DistinctDestinos(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT destino FROM reservas WHERE destino <> '' ORDER BY destino`)
}

func (r *pgReservaRepository) DistinctOperadores(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT operador FROM reservas WHERE operador <> '' ORDER BY operador`)
}

func (r *pgReservaRepository) distinct(ctx context.Context, q string) ([]string, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query distinct values", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan distinct value", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate distinct values", err)
	}
	return values, nil
}

func reservaArgs(rec reserva.Reserva) (pgx.NamedArgs, error) {
	pagosCliente, err := json.Marshal(rec.PagosCliente)
	if err != nil {
		return nil, err
	}
	pagosProveedor, err := json.Marshal(rec.PagosProveedor)
	if err != nil {
		return nil, err
	}
	return pgx.NamedArgs{
		"id":                   rec.ID,
		"fecha_creacion":       pgconv.FechaToPgtype(rec.FechaCreacion),
		"fecha_viaje":          pgconv.FechaToPgtype(rec.FechaViaje),
		"fecha_regreso":        pgconv.FechaToPgtype(rec.FechaRegreso), // zero becomes NULL
		"titular":              rec.Titular,
		"destino":              rec.Destino,
		"operador":             rec.Operador,
		"precio_venta":         rec.PrecioVenta,
		"precio_neto":          rec.PrecioNeto,
		"moneda":               string(rec.Moneda),
		"liquidacion_recibida": rec.LiquidacionRecibida,
		"voucher_enviado":      rec.VoucherEnviado,
		"pagos_cliente":        pagosCliente,
		"pagos_proveedor":      pagosProveedor,
	}, nil
}

// scanReserva works for both pgx.Row and pgx.Rows.
func scanReserva(row pgx.Row) (reserva.Reserva, error) {
	var (
		rec            reserva.Reserva
		moneda         string
		fechaCreacion  pgtype.Text
		fechaViaje     pgtype.Text
		fechaRegreso   pgtype.Text
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
		pagosCliente   []byte
		pagosProveedor []byte
	)

	err := row.Scan(
		&rec.ID, &fechaCreacion, &fechaViaje, &fechaRegreso,
		&rec.Titular, &rec.Destino, &rec.Operador,
		&rec.PrecioVenta, &rec.PrecioNeto, &moneda,
		&rec.LiquidacionRecibida, &rec.VoucherEnviado,
		&pagosCliente, &pagosProveedor,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return reserva.Reserva{}, err
	}

	rec.FechaCreacion = pgconv.FechaFromPgtype(fechaCreacion)
	rec.FechaViaje = pgconv.FechaFromPgtype(fechaViaje)
	rec.FechaRegreso = pgconv.FechaFromPgtype(fechaRegreso)
	rec.Moneda = reserva.Moneda(moneda)
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rec.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if err := json.Unmarshal(pagosCliente, &rec.PagosCliente); err != nil {
		return reserva.Reserva{}, err
	}
	if err := json.Unmarshal(pagosProveedor, &rec.PagosProveedor); err != nil {
		return reserva.Reserva{}, err
	}
	return rec, nil
}
