//go:build unit

package vista_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guillotegh/sistema-reservas/internal/domain/vista"
)

func TestSeleccionarCiclaDireccion(t *testing.T) {
	var o vista.Orden
	assert.False(t, o.Activo())

	o = o.Seleccionar(vista.OrdenNombre)
	assert.Equal(t, vista.Orden{Clave: vista.OrdenNombre, Direccion: vista.DireccionAsc}, o)

	o = o.Seleccionar(vista.OrdenNombre)
	assert.Equal(t, vista.Orden{Clave: vista.OrdenNombre, Direccion: vista.DireccionDesc}, o)

	o = o.Seleccionar(vista.OrdenNombre)
	assert.Equal(t, vista.Orden{}, o, "third selection clears the sort")
	assert.False(t, o.Activo())
}

func TestSeleccionarOtraClaveReiniciaAscendente(t *testing.T) {
	o := vista.Orden{Clave: vista.OrdenNombre, Direccion: vista.DireccionDesc}

	o = o.Seleccionar(vista.OrdenDestino)

	assert.Equal(t, vista.Orden{Clave: vista.OrdenDestino, Direccion: vista.DireccionAsc}, o,
		"switching keys drops the prior key and starts ascending")
}

func TestNuevosFiltros(t *testing.T) {
	f := vista.NuevosFiltros()
	assert.Equal(t, vista.EjeSalida, f.Eje)
	assert.Equal(t, vista.EstadoTodas, f.Estado)
	assert.True(t, f.FechaDesde.IsZero())
	assert.True(t, f.FechaHasta.IsZero())
	assert.Empty(t, f.Busqueda)
}
