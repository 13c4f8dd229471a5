package reserva

import "github.com/google/uuid"

// Metodo is the closed set of payment methods.
type Metodo string

const (
	MetodoEfectivo      Metodo = "Efectivo"
	MetodoTarjeta       Metodo = "Tarjeta"
	MetodoTransferencia Metodo = "Transferencia"
	MetodoDeposito      Metodo = "Depósito"
)

func (m Metodo) IsValid() bool {
	switch m {
	case MetodoEfectivo, MetodoTarjeta, MetodoTransferencia, MetodoDeposito:
		return true
	default:
		return false
	}
}

func (m Metodo) String() string {
	return string(m)
}

// Pago is a single payment entry owned by its reservation. Entries keep
// insertion order, which is entry order and not necessarily chronological.
// Monto is editable after creation and the engine does not constrain its sign.
type Pago struct {
	ID     uuid.UUID `json:"id"`
	Fecha  Fecha     `json:"fecha"`
	Metodo Metodo    `json:"metodo"`
	Monto  float64   `json:"monto"`
}

// NuevoPago assigns a fresh id. Ids are uuids rather than wall-clock
// timestamps so rapid successive inserts cannot collide.
func NuevoPago(fecha Fecha, metodo Metodo, monto float64) Pago {
	return Pago{
		ID:     uuid.New(),
		Fecha:  fecha,
		Metodo: metodo,
		Monto:  monto,
	}
}

// TotalPagado sums the amounts of a payment sequence. It is always recomputed
// from the current sequence, never cached. An empty sequence totals 0.
func TotalPagado(pagos []Pago) float64 {
	var total float64
	for _, p := range pagos {
		total += p.Monto
	}
	return total
}

// agregarPago appends to a fresh slice; the input sequence is left untouched.
func agregarPago(pagos []Pago, p Pago) []Pago {
	result := make([]Pago, 0, len(pagos)+1)
	result = append(result, pagos...)
	return append(result, p)
}

// eliminarPago filters out the entry with the given id into a fresh slice.
// Unknown ids leave the sequence content unchanged.
func eliminarPago(pagos []Pago, id uuid.UUID) []Pago {
	result := make([]Pago, 0, len(pagos))
	for _, p := range pagos {
		if p.ID != id {
			result = append(result, p)
		}
	}
	return result
}

// editarMontoPago maps the sequence replacing the amount of the entry with the
// given id, preserving entry order.
func editarMontoPago(pagos []Pago, id uuid.UUID, monto float64) []Pago {
	result := make([]Pago, len(pagos))
	for i, p := range pagos {
		if p.ID == id {
			p.Monto = monto
		}
		result[i] = p
	}
	return result
}
