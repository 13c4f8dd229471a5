package usecase

import (
	"context"
	"fmt"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/domain/vista"
	"github.com/guillotegh/sistema-reservas/internal/pkg/errs"
)

// Planilla is the spreadsheet layout handed to the export collaborator:
// already laid out as rows of cells, so the writer only encodes.
type Planilla struct {
	Titulo        string
	Filas         [][]string
	NombreArchivo string
}

// PlanillaWriter encodes a laid-out spreadsheet into file bytes.
type PlanillaWriter interface {
	Escribir(p Planilla) ([]byte, error)
}

type ExportUseCase interface {
	// Exportar builds the spreadsheet for the filtered reservation list and
	// returns the suggested filename along with the file content.
	Exportar(ctx context.Context, filtros vista.Filtros) (string, []byte, error)
}

type exportUseCaseImpl struct {
	repo   ReservaRepository
	writer PlanillaWriter
}

func NewExportUseCase(repo ReservaRepository, writer PlanillaWriter) ExportUseCase {
	return &exportUseCaseImpl{repo: repo, writer: writer}
}

func (u *exportUseCaseImpl) Exportar(ctx context.Context, filtros vista.Filtros) (string, []byte, error) {
	reservas, err := u.repo.List(ctx)
	if err != nil {
		return "", nil, errs.Mark(err, ErrPersistencia)
	}

	planilla := BuildPlanilla(vista.Filtrar(reservas, filtros), filtros)
	contenido, err := u.writer.Escribir(planilla)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to encode planilla")
	}
	return planilla.NombreArchivo, contenido, nil
}

var encabezadoExport = []string{"FECHA", "NOMBRE", "DESTINO", "OPERADOR", "SALDO PAX", "SALDO PROV", "VOUCHER"}

// BuildPlanilla lays out the export for an already-filtered list. With an
// explicit date range the rows are keyed by travel date and span every
// calendar day between the earliest and latest travel date present, leaving
// a blank line per day so gaps stay visible on paper; without a range it is
// one row per reservation in filtered order.
func BuildPlanilla(filtradas []reserva.Reserva, filtros vista.Filtros) Planilla {
	titulo := tituloMes(filtros)

	filas := make([][]string, 0, len(filtradas)+4)
	if titulo != "" {
		filas = append(filas, []string{titulo}, nil)
	}
	filas = append(filas, encabezadoExport)

	if rangoExplicito(filtros) {
		if diarias, ok := filasPorDia(filtradas); ok {
			filas = append(filas, diarias...)
			return armarPlanilla(titulo, filas)
		}
	}

	for _, r := range filtradas {
		filas = append(filas, filaReserva(r))
	}
	return armarPlanilla(titulo, filas)
}

func armarPlanilla(titulo string, filas [][]string) Planilla {
	nombre := "Reservas.xlsx"
	if titulo != "" {
		nombre = fmt.Sprintf("Reservas_%s.xlsx", titulo)
	}
	return Planilla{Titulo: titulo, Filas: filas, NombreArchivo: nombre}
}

func rangoExplicito(f vista.Filtros) bool {
	return !f.FechaDesde.IsZero() && !f.FechaHasta.IsZero()
}

// filasPorDia produces the day-continuous breakdown. It reports false when
// no well-formed travel date exists to anchor the day walk, in which case
// the caller falls back to flat rows.
func filasPorDia(filtradas []reserva.Reserva) ([][]string, bool) {
	var min, max reserva.Fecha
	porDia := make(map[string][]reserva.Reserva)
	for _, r := range filtradas {
		f := r.FechaViaje
		if !f.IsValid() {
			continue
		}
		porDia[f.String()] = append(porDia[f.String()], r)
		if min.IsZero() || f.Before(min) {
			min = f
		}
		if max.IsZero() || f.After(max) {
			max = f
		}
	}
	if min.IsZero() {
		return nil, false
	}

	var filas [][]string
	for d := min; !d.After(max); d = d.AddDays(1) {
		if rs := porDia[d.String()]; len(rs) > 0 {
			for _, r := range rs {
				filas = append(filas, filaReserva(r))
			}
		} else {
			// Day with no reservations: keep the date visible as a blank row.
			filas = append(filas, []string{d.Display(), "", "", "", "", "", ""})
		}
		filas = append(filas, nil)
	}
	return filas, true
}

func filaReserva(r reserva.Reserva) []string {
	saldoPax := ""
	if r.EstadoCliente() == reserva.EstadoSaldado {
		saldoPax = "SALDADO"
	}
	saldoProv := ""
	if r.EstadoProveedor() == reserva.EstadoSaldado {
		saldoProv = "SALDADO"
	}
	voucher := ""
	if r.VoucherEnviado {
		voucher = "ENVIADO"
	}
	return []string{r.FechaViaje.Display(), r.Titular, r.Destino, r.Operador, saldoPax, saldoProv, voucher}
}

var mesesES = [...]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// tituloMes returns "MES AÑO" when the explicit range stays within a single
// calendar month, empty otherwise.
func tituloMes(f vista.Filtros) string {
	desde, okD := f.FechaDesde.Time()
	hasta, okH := f.FechaHasta.Time()
	if !okD || !okH {
		return ""
	}
	if desde.Month() != hasta.Month() || desde.Year() != hasta.Year() {
		return ""
	}
	return fmt.Sprintf("%s %d", mesesES[desde.Month()-1], desde.Year())
}
