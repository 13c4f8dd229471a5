package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
)

// Calendar dates cross the persistence boundary as TEXT columns so malformed
// raw values survive a round trip; the domain keeps them as reserva.Fecha
// values. Zero dates map to NULL.

func FechaFromPgtype(pt pgtype.Text) reserva.Fecha {
	if !pt.Valid {
		return reserva.Fecha{}
	}
	return reserva.ParseFecha(pt.String)
}

func FechaToPgtype(f reserva.Fecha) pgtype.Text {
	if f.IsZero() {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: f.String(), Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a pgx "no rows" error
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
