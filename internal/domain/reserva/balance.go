package reserva

// Balance engine: every derivation below is a pure function of the
// reservation snapshot. Sums are recomputed from the payment sequences on
// each call so an edited historical amount is reflected immediately.

// TotalPagadoCliente is the sum of client payment amounts.
func (r Reserva) TotalPagadoCliente() float64 {
	return TotalPagado(r.PagosCliente)
}

// TotalPagadoProveedor is the sum of supplier payment amounts.
func (r Reserva) TotalPagadoProveedor() float64 {
	return TotalPagado(r.PagosProveedor)
}

// EstadoCliente thresholds client payments against the sale price.
// Paying exactly the sale price settles the reservation (inclusive boundary).
func (r Reserva) EstadoCliente() EstadoPago {
	total := r.TotalPagadoCliente()
	switch {
	case total >= r.PrecioVenta:
		return EstadoSaldado
	case total > 0:
		return EstadoParcial
	default:
		return EstadoPendiente
	}
}

// EstadoProveedor thresholds supplier payments against the net price.
// Without a net price there is nothing to pay, so the side is always settled.
func (r Reserva) EstadoProveedor() EstadoPago {
	if r.PrecioNeto == 0 {
		return EstadoSaldado
	}
	total := r.TotalPagadoProveedor()
	switch {
	case total >= r.PrecioNeto:
		return EstadoSaldado
	case total > 0:
		return EstadoParcial
	default:
		return EstadoPendiente
	}
}

// SaldoCliente is the outstanding client balance. Negative means overpayment.
func (r Reserva) SaldoCliente() float64 {
	return r.PrecioVenta - r.TotalPagadoCliente()
}

// SaldoProveedor is the outstanding supplier balance. Negative means overpayment.
func (r Reserva) SaldoProveedor() float64 {
	return r.PrecioNeto - r.TotalPagadoProveedor()
}

// PorcentajeCliente is the client paid percentage. A sale price of 0 would
// make the ratio undefined, so it reports 0 instead; the status still reads
// saldado because 0 covers a 0 benchmark.
func (r Reserva) PorcentajeCliente() float64 {
	if r.PrecioVenta == 0 {
		return 0
	}
	return r.TotalPagadoCliente() / r.PrecioVenta * 100
}

// PorcentajeProveedor is the supplier paid percentage, 0 when there is no
// net price to measure against.
func (r Reserva) PorcentajeProveedor() float64 {
	if r.PrecioNeto == 0 {
		return 0
	}
	return r.TotalPagadoProveedor() / r.PrecioNeto * 100
}

// EsCompleta holds iff both sides are settled and the voucher went out.
func (r Reserva) EsCompleta() bool {
	return r.EstadoCliente() == EstadoSaldado &&
		r.EstadoProveedor() == EstadoSaldado &&
		r.VoucherEnviado
}

// SobrepagoCliente flags a settled client side that was paid past 100%,
// shown as a warning next to the settled badge.
func (r Reserva) SobrepagoCliente() bool {
	return r.EstadoCliente() == EstadoSaldado && r.PorcentajeCliente() > 100
}

// SobrepagoProveedor is the supplier-side overpayment warning.
func (r Reserva) SobrepagoProveedor() bool {
	return r.EstadoProveedor() == EstadoSaldado && r.PorcentajeProveedor() > 100
}
