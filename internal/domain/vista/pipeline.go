package vista

import (
	"slices"
	"strings"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
)

// Grupo labels a temporal bucket of the grouped presentation.
type Grupo string

const (
	GrupoHoy        Grupo = "hoy"
	GrupoAyer       Grupo = "ayer"
	GrupoEstaSemana Grupo = "estaSemana"
	GrupoAnteriores Grupo = "anteriores"
)

// EstadoVacio discriminates the pipeline's empty outcomes so the screen can
// word them differently.
type EstadoVacio string

const (
	// VacioNo: the result has content.
	VacioNo EstadoVacio = ""
	// VacioSinReservas: the upstream collection itself is empty.
	VacioSinReservas EstadoVacio = "sinReservas"
	// VacioSinCoincidencias: reservations exist but none pass the filters.
	VacioSinCoincidencias EstadoVacio = "sinCoincidencias"
	// VacioSinGrupos: filtered reservations exist but none fall into a
	// temporal bucket (future-dated creation dates).
	VacioSinGrupos EstadoVacio = "sinGrupos"
)

// Seccion is one non-empty bucket of a grouped result.
type Seccion struct {
	Grupo    Grupo
	Reservas []reserva.Reserva
}

// Resultado is the pipeline output: exactly one presentation mode is active —
// a flat filtered/sorted list, or the bucketed sections. Never both.
type Resultado struct {
	Plano     []reserva.Reserva
	Secciones []Seccion
	Agrupado  bool
	Vacio     EstadoVacio
}

// Aplicar runs filter, then either sort (flat mode) or temporal bucketing.
// An active sort key or a non-empty text search forces the flat view; hoy is
// the current calendar date the buckets are evaluated against.
func Aplicar(reservas []reserva.Reserva, cfg Config, hoy reserva.Fecha) Resultado {
	filtradas := Filtrar(reservas, cfg.Filtros)

	if cfg.Orden.Activo() || cfg.Filtros.Busqueda != "" {
		plano := Ordenar(filtradas, cfg.Orden)
		res := Resultado{Plano: plano}
		res.Vacio = estadoVacio(len(reservas), len(plano), -1)
		return res
	}

	secciones := Agrupar(filtradas, hoy)
	agrupadas := 0
	for _, s := range secciones {
		agrupadas += len(s.Reservas)
	}
	res := Resultado{Secciones: secciones, Agrupado: true}
	res.Vacio = estadoVacio(len(reservas), len(filtradas), agrupadas)
	return res
}

func estadoVacio(total, filtradas, agrupadas int) EstadoVacio {
	switch {
	case total == 0:
		return VacioSinReservas
	case filtradas == 0:
		return VacioSinCoincidencias
	case agrupadas == 0:
		return VacioSinGrupos
	default:
		return VacioNo
	}
}

// Filtrar keeps the reservations passing every active filter, preserving the
// input's relative order.
func Filtrar(reservas []reserva.Reserva, f Filtros) []reserva.Reserva {
	result := make([]reserva.Reserva, 0, len(reservas))
	for _, r := range reservas {
		if pasaFiltros(r, f) {
			result = append(result, r)
		}
	}
	return result
}

func pasaFiltros(r reserva.Reserva, f Filtros) bool {
	fecha := r.FechaViaje
	if f.Eje == EjeCreacion {
		fecha = r.FechaCreacion
	}
	if !f.FechaDesde.IsZero() && fecha.Before(f.FechaDesde) {
		return false
	}
	if !f.FechaHasta.IsZero() && fecha.After(f.FechaHasta) {
		return false
	}

	if f.Busqueda != "" && !coincideBusqueda(r, f.Busqueda) {
		return false
	}

	switch f.Estado {
	case EstadoCompletadas:
		if !r.EsCompleta() {
			return false
		}
	case EstadoPendientes:
		if r.EsCompleta() {
			return false
		}
	}
	return true
}

// coincideBusqueda is a case-insensitive substring match against titular,
// operador, and destino; one hit is enough.
func coincideBusqueda(r reserva.Reserva, termino string) bool {
	t := strings.ToLower(termino)
	return strings.Contains(strings.ToLower(r.Titular), t) ||
		strings.Contains(strings.ToLower(r.Operador), t) ||
		strings.Contains(strings.ToLower(r.Destino), t)
}

// Ordenar sorts a copy of the list by the configured key and direction.
// The sort is stable: ties keep the input's relative order. An inactive
// Orden returns the copy unsorted.
func Ordenar(reservas []reserva.Reserva, o Orden) []reserva.Reserva {
	result := slices.Clone(reservas)
	if result == nil {
		result = []reserva.Reserva{}
	}
	if !o.Activo() {
		return result
	}

	cmp := comparador(o.Clave)
	slices.SortStableFunc(result, func(a, b reserva.Reserva) int {
		c := cmp(a, b)
		if o.Direccion == DireccionDesc {
			return -c
		}
		return c
	})
	return result
}

func comparador(clave ClaveOrden) func(a, b reserva.Reserva) int {
	switch clave {
	case OrdenFechaCreacion:
		return func(a, b reserva.Reserva) int { return a.FechaCreacion.Compare(b.FechaCreacion) }
	case OrdenFechaSalida:
		return func(a, b reserva.Reserva) int { return a.FechaViaje.Compare(b.FechaViaje) }
	case OrdenNombre:
		return textoComparador(func(r reserva.Reserva) string { return r.Titular })
	case OrdenDestino:
		return textoComparador(func(r reserva.Reserva) string { return r.Destino })
	case OrdenOperador:
		return textoComparador(func(r reserva.Reserva) string { return r.Operador })
	case OrdenSaldoPax:
		return numeroComparador(reserva.Reserva.SaldoCliente)
	case OrdenSaldoProv:
		return numeroComparador(reserva.Reserva.SaldoProveedor)
	default:
		return func(a, b reserva.Reserva) int { return 0 }
	}
}

func textoComparador(campo func(reserva.Reserva) string) func(a, b reserva.Reserva) int {
	return func(a, b reserva.Reserva) int {
		return strings.Compare(strings.ToLower(campo(a)), strings.ToLower(campo(b)))
	}
}

func numeroComparador(campo func(reserva.Reserva) float64) func(a, b reserva.Reserva) int {
	return func(a, b reserva.Reserva) int {
		va, vb := campo(a), campo(b)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		default:
			return 0
		}
	}
}

// Agrupar partitions by creation date into hoy / ayer / esta semana (Monday
// through today, excluding hoy and ayer) / anteriores (strictly before this
// week's Monday). Buckets preserve the input order; empty buckets are
// omitted. A creation date past hoy lands in no bucket.
func Agrupar(reservas []reserva.Reserva, hoy reserva.Fecha) []Seccion {
	ayer := hoy.AddDays(-1)
	lunes := hoy.LunesDeSemana()

	buckets := map[Grupo][]reserva.Reserva{}
	for _, r := range reservas {
		g, ok := clasificar(r.FechaCreacion, hoy, ayer, lunes)
		if ok {
			buckets[g] = append(buckets[g], r)
		}
	}

	orden := []Grupo{GrupoHoy, GrupoAyer, GrupoEstaSemana, GrupoAnteriores}
	secciones := make([]Seccion, 0, len(orden))
	for _, g := range orden {
		if rs := buckets[g]; len(rs) > 0 {
			secciones = append(secciones, Seccion{Grupo: g, Reservas: rs})
		}
	}
	return secciones
}

func clasificar(fecha, hoy, ayer, lunes reserva.Fecha) (Grupo, bool) {
	switch {
	case fecha.Equal(hoy):
		return GrupoHoy, true
	case fecha.Equal(ayer):
		return GrupoAyer, true
	case fecha.Before(lunes):
		return GrupoAnteriores, true
	case !fecha.After(hoy):
		// Between Monday and today, already excluding hoy and ayer. When
		// ayer is a Sunday it belongs to the previous week, so this branch
		// only sees Monday-and-later dates.
		return GrupoEstaSemana, true
	default:
		return "", false
	}
}
