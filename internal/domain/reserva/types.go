package reserva

// EstadoPago is the payment-completion state of either side of a reservation.
type EstadoPago string

const (
	EstadoPendiente EstadoPago = "pendiente"
	EstadoParcial   EstadoPago = "parcial"
	EstadoSaldado   EstadoPago = "saldado"
)

func (e EstadoPago) String() string {
	return string(e)
}

// Moneda is the closed set of currencies the ledger accepts.
type Moneda string

const (
	MonedaARS Moneda = "ARS"
	MonedaUSD Moneda = "USD"
)

func (m Moneda) IsValid() bool {
	switch m {
	case MonedaARS, MonedaUSD:
		return true
	default:
		return false
	}
}

func (m Moneda) String() string {
	return string(m)
}

// Lado distinguishes the client side from the supplier side of a reservation.
type Lado string

const (
	LadoCliente   Lado = "cliente"
	LadoProveedor Lado = "proveedor"
)

func (l Lado) IsValid() bool {
	switch l {
	case LadoCliente, LadoProveedor:
		return true
	default:
		return false
	}
}

func (l Lado) String() string {
	return string(l)
}

// NivelProgreso classifies a paid percentage for the progress indicator.
type NivelProgreso string

const (
	ProgresoVerde   NivelProgreso = "verde"   // >= 100
	ProgresoLima    NivelProgreso = "lima"    // [76, 100)
	ProgresoNaranja NivelProgreso = "naranja" // [41, 76)
	ProgresoRojo    NivelProgreso = "rojo"    // [0, 41)
)

func (n NivelProgreso) String() string {
	return string(n)
}

// ClasificarProgreso maps a paid percentage to its progress level. The same
// thresholds apply to the client bar and the supplier bar.
func ClasificarProgreso(porcentaje float64) NivelProgreso {
	switch {
	case porcentaje >= 100:
		return ProgresoVerde
	case porcentaje >= 76:
		return ProgresoLima
	case porcentaje >= 41:
		return ProgresoNaranja
	default:
		return ProgresoRojo
	}
}
