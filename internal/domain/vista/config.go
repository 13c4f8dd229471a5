// Package vista is the pure view pipeline: it turns a raw reservation
// collection plus an explicit filter/sort configuration into the exact
// on-screen ordering, either flat (filtered and sorted) or grouped into
// temporal buckets. The configuration is an immutable value so the pipeline
// is testable without any rendering environment.
package vista

import (
	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
)

// EjeFecha selects which date the range filter applies to.
type EjeFecha string

const (
	EjeCreacion EjeFecha = "creacion"
	EjeSalida   EjeFecha = "salida"
)

func (e EjeFecha) IsValid() bool {
	return e == EjeCreacion || e == EjeSalida
}

// EstadoFiltro narrows by reservation completion.
type EstadoFiltro string

const (
	EstadoTodas       EstadoFiltro = "todas"
	EstadoCompletadas EstadoFiltro = "completadas"
	EstadoPendientes  EstadoFiltro = "pendientes"
)

func (e EstadoFiltro) IsValid() bool {
	switch e {
	case EstadoTodas, EstadoCompletadas, EstadoPendientes:
		return true
	default:
		return false
	}
}

// ClaveOrden is one of the seven sortable columns.
type ClaveOrden string

const (
	OrdenFechaCreacion ClaveOrden = "fechaCreacion"
	OrdenFechaSalida   ClaveOrden = "fechaSalida"
	OrdenNombre        ClaveOrden = "nombre"
	OrdenDestino       ClaveOrden = "destino"
	OrdenOperador      ClaveOrden = "operador"
	OrdenSaldoPax      ClaveOrden = "saldoPax"
	OrdenSaldoProv     ClaveOrden = "saldoProv"
)

func (c ClaveOrden) IsValid() bool {
	switch c {
	case OrdenFechaCreacion, OrdenFechaSalida, OrdenNombre,
		OrdenDestino, OrdenOperador, OrdenSaldoPax, OrdenSaldoProv:
		return true
	default:
		return false
	}
}

// Direccion of an active sort.
type Direccion string

const (
	DireccionNinguna Direccion = ""
	DireccionAsc     Direccion = "asc"
	DireccionDesc    Direccion = "desc"
)

// Filtros is the filter half of the view configuration. Zero bounds mean
// unbounded on that side; an empty Busqueda matches everything. Active
// filters compose with logical AND.
type Filtros struct {
	FechaDesde reserva.Fecha
	FechaHasta reserva.Fecha
	Eje        EjeFecha
	Busqueda   string
	Estado     EstadoFiltro
}

// NuevosFiltros returns the defaults the screen opens with: travel-date axis,
// every reservation shown.
func NuevosFiltros() Filtros {
	return Filtros{Eje: EjeSalida, Estado: EstadoTodas}
}

// Orden is the sort half of the configuration. The zero value means no
// explicit sort, which is what enables the bucketed presentation.
type Orden struct {
	Clave     ClaveOrden
	Direccion Direccion
}

// Activo reports whether an explicit sort is in effect.
func (o Orden) Activo() bool {
	return o.Clave != "" && o.Direccion != DireccionNinguna
}

// Seleccionar cycles the tri-state direction for repeated selections of the
// same column (none → asc → desc → none) and resets to ascending when a
// different column is chosen, dropping the prior key.
func (o Orden) Seleccionar(clave ClaveOrden) Orden {
	if o.Clave == clave {
		switch o.Direccion {
		case DireccionAsc:
			return Orden{Clave: clave, Direccion: DireccionDesc}
		case DireccionDesc:
			return Orden{}
		}
	}
	return Orden{Clave: clave, Direccion: DireccionAsc}
}

// Config is the full immutable view configuration handed to Aplicar.
type Config struct {
	Filtros Filtros
	Orden   Orden
}
