//go:build unit

package reserva_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
)

func TestParseFecha(t *testing.T) {
	t.Run("iso input is chronological", func(t *testing.T) {
		f := reserva.ParseFecha("2026-03-15")
		assert.True(t, f.IsValid())
		assert.Equal(t, "2026-03-15", f.String())
		assert.Equal(t, "15/03/2026", f.Display())
	})

	t.Run("empty input is zero", func(t *testing.T) {
		f := reserva.ParseFecha("")
		assert.True(t, f.IsZero())
		assert.False(t, f.IsValid())
	})

	t.Run("malformed input never fails", func(t *testing.T) {
		f := reserva.ParseFecha("pronto")
		assert.False(t, f.IsValid())
		assert.False(t, f.IsZero())
		assert.Equal(t, "pronto", f.String())
		assert.Equal(t, "pronto", f.Display())
	})
}

func TestFechaCompare(t *testing.T) {
	t.Run("valid dates compare chronologically", func(t *testing.T) {
		a := reserva.ParseFecha("2026-03-01")
		b := reserva.ParseFecha("2026-03-15")
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.True(t, a.Equal(reserva.ParseFecha("2026-03-01")))
	})

	t.Run("malformed side falls back to string order", func(t *testing.T) {
		a := reserva.ParseFecha("2026-03-01")
		b := reserva.ParseFecha("antes")
		// "2026..." < "antes" lexicographically
		assert.True(t, a.Before(b))
	})
}

func TestFechaAritmetica(t *testing.T) {
	t.Run("add days normalizes across month ends", func(t *testing.T) {
		f := reserva.ParseFecha("2026-01-31").AddDays(1)
		assert.Equal(t, "2026-02-01", f.String())
	})

	t.Run("lunes de semana para dias habiles", func(t *testing.T) {
		// 2026-03-04 is a Wednesday
		f := reserva.ParseFecha("2026-03-04")
		assert.Equal(t, "2026-03-02", f.LunesDeSemana().String())
	})

	t.Run("domingo pertenece a la semana que empieza el lunes anterior", func(t *testing.T) {
		// 2026-03-08 is a Sunday, six days past Monday 2026-03-02
		f := reserva.ParseFecha("2026-03-08")
		assert.Equal(t, "2026-03-02", f.LunesDeSemana().String())
	})

	t.Run("lunes es su propio inicio de semana", func(t *testing.T) {
		f := reserva.ParseFecha("2026-03-02")
		assert.Equal(t, "2026-03-02", f.LunesDeSemana().String())
	})
}

func TestFechaDesde(t *testing.T) {
	f := reserva.FechaDesde(time.Date(2026, time.March, 15, 23, 45, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-15", f.String())
}

func TestFechaJSON(t *testing.T) {
	t.Run("round trip preserves iso and raw forms", func(t *testing.T) {
		for _, s := range []string{"2026-03-15", "pronto", ""} {
			data, err := json.Marshal(reserva.ParseFecha(s))
			require.NoError(t, err)

			var f reserva.Fecha
			require.NoError(t, json.Unmarshal(data, &f))
			assert.Equal(t, s, f.String())
		}
	})
}
