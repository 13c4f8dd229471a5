package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guillotegh/sistema-reservas/internal/domain/reserva"
	"github.com/guillotegh/sistema-reservas/internal/domain/vista"
	reqdto "github.com/guillotegh/sistema-reservas/internal/handler/dto/request"
	resdto "github.com/guillotegh/sistema-reservas/internal/handler/dto/response"
	"github.com/guillotegh/sistema-reservas/internal/handler/httperr"
	"github.com/guillotegh/sistema-reservas/internal/pkg/errs"
	"github.com/guillotegh/sistema-reservas/internal/usecase"
)

type ReservaHandler struct {
	reservaUseCase usecase.ReservaUseCase
}

func NewReservaHandler(reservaUseCase usecase.ReservaUseCase) *ReservaHandler {
	return &ReservaHandler{
		reservaUseCase: reservaUseCase,
	}
}

// @Summary Listar reservas
// @Description Lista las reservas filtradas, ordenadas o agrupadas por fecha de creación
// @Tags reservas
// @Produce json
// @Param fechaDesde query string false "Cota inferior del rango (YYYY-MM-DD)"
// @Param fechaHasta query string false "Cota superior del rango (YYYY-MM-DD)"
// @Param tipoFecha query string false "Eje del rango: creacion o salida" default(salida)
// @Param busqueda query string false "Texto a buscar en titular, operador o destino"
// @Param estado query string false "todas, completadas o pendientes" default(todas)
// @Param orden query string false "Columna de orden explícito"
// @Param direccion query string false "asc o desc"
// @Success 200 {object} resdto.ListaReservasResponse
// @Failure 400 {object} map[string]string
// @Router /reservas [get]
func (h *ReservaHandler) ListarReservas(c *gin.Context) {
	cfg, err := parseVistaConfig(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	resultado, err := h.reservaUseCase.Listar(c.Request.Context(), cfg)
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResultado(resultado))
}

// @Summary Crear reserva
// @Description Da de alta una reserva nueva
// @Tags reservas
// @Accept json
// @Produce json
// @Param request body reqdto.CrearReservaRequest true "Datos de la reserva"
// @Success 201 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservas [post]
func (h *ReservaHandler) CrearReserva(c *gin.Context) {
	var req reqdto.CrearReservaRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Formato de solicitud inválido")
		return
	}

	creada, err := h.reservaUseCase.Crear(c.Request.Context(), req.ToParams())
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReserva(*creada))
}

// @Summary Obtener reserva
// @Description Devuelve una reserva por su ID
// @Tags reservas
// @Produce json
// @Param id path string true "ID de la reserva"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id} [get]
func (h *ReservaHandler) ObtenerReserva(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}

	encontrada, err := h.reservaUseCase.Obtener(c.Request.Context(), id)
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserva(*encontrada))
}

// @Summary Actualizar reserva
// @Description Reemplaza los datos de una reserva existente
// @Tags reservas
// @Accept json
// @Produce json
// @Param id path string true "ID de la reserva"
// @Param request body reqdto.ActualizarReservaRequest true "Datos de la reserva"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservas/{id} [put]
func (h *ReservaHandler) ActualizarReserva(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}

	var req reqdto.ActualizarReservaRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Formato de solicitud inválido")
		return
	}

	actualizada, err := h.reservaUseCase.Actualizar(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserva(*actualizada))
}

// @Summary Eliminar reserva
// @Description Borra una reserva y todos sus pagos
// @Tags reservas
// @Param id path string true "ID de la reserva"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id} [delete]
func (h *ReservaHandler) EliminarReserva(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}

	if err := h.reservaUseCase.Eliminar(c.Request.Context(), id); err != nil {
		abortConError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Agregar pago
// @Description Registra un pago del cliente o al proveedor
// @Tags pagos
// @Accept json
// @Produce json
// @Param id path string true "ID de la reserva"
// @Param lado path string true "cliente o proveedor"
// @Param request body reqdto.AgregarPagoRequest true "Datos del pago"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id}/pagos/{lado} [post]
func (h *ReservaHandler) AgregarPago(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}

	var req reqdto.AgregarPagoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Formato de solicitud inválido")
		return
	}

	actualizada, err := h.reservaUseCase.AgregarPago(c.Request.Context(), id, reserva.Lado(c.Param("lado")), req.ToParams())
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserva(*actualizada))
}

// @Summary Editar monto de un pago
// @Description Cambia el monto de un pago ya registrado
// @Tags pagos
// @Accept json
// @Produce json
// @Param id path string true "ID de la reserva"
// @Param lado path string true "cliente o proveedor"
// @Param pagoId path string true "ID del pago"
// @Param request body reqdto.EditarMontoPagoRequest true "Nuevo monto"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id}/pagos/{lado}/{pagoId} [patch]
func (h *ReservaHandler) EditarMontoPago(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}
	pagoID, ok := parsePagoID(c)
	if !ok {
		return
	}

	var req reqdto.EditarMontoPagoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Formato de solicitud inválido")
		return
	}

	actualizada, err := h.reservaUseCase.EditarMontoPago(c.Request.Context(), id, reserva.Lado(c.Param("lado")), pagoID, float64(req.Monto))
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserva(*actualizada))
}

// @Summary Eliminar pago
// @Description Quita un pago de la reserva
// @Tags pagos
// @Produce json
// @Param id path string true "ID de la reserva"
// @Param lado path string true "cliente o proveedor"
// @Param pagoId path string true "ID del pago"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id}/pagos/{lado}/{pagoId} [delete]
func (h *ReservaHandler) EliminarPago(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}
	pagoID, ok := parsePagoID(c)
	if !ok {
		return
	}

	actualizada, err := h.reservaUseCase.EliminarPago(c.Request.Context(), id, reserva.Lado(c.Param("lado")), pagoID)
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserva(*actualizada))
}

// @Summary Alternar liquidación recibida
// @Tags reservas
// @Produce json
// @Param id path string true "ID de la reserva"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 404 {object} map[string]string
// @Router /reservas/{id}/liquidacion [patch]
func (h *ReservaHandler) ToggleLiquidacion(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}

	actualizada, err := h.reservaUseCase.ToggleLiquidacion(c.Request.Context(), id)
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserva(*actualizada))
}

// @Summary Alternar voucher enviado
// @Tags reservas
// @Produce json
// @Param id path string true "ID de la reserva"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 404 {object} map[string]string
// @Router /reservas/{id}/voucher [patch]
func (h *ReservaHandler) ToggleVoucher(c *gin.Context) {
	id, ok := parseReservaID(c)
	if !ok {
		return
	}

	actualizada, err := h.reservaUseCase.ToggleVoucher(c.Request.Context(), id)
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserva(*actualizada))
}

// @Summary Sugerencias de autocompletado
// @Description Destinos y operadores ya usados, para los campos del formulario
// @Tags reservas
// @Produce json
// @Success 200 {object} resdto.SugerenciasResponse
// @Router /sugerencias [get]
func (h *ReservaHandler) ObtenerSugerencias(c *gin.Context) {
	sugerencias, err := h.reservaUseCase.ObtenerSugerencias(c.Request.Context())
	if err != nil {
		abortConError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSugerencias(*sugerencias))
}

func parseReservaID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "ID de reserva inválido")
		return uuid.Nil, false
	}
	return id, true
}

func parsePagoID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("pagoId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "ID de pago inválido")
		return uuid.Nil, false
	}
	return id, true
}

// parseVistaConfig maps the list/export query parameters onto the view
// configuration, starting from the screen defaults.
func parseVistaConfig(c *gin.Context) (vista.Config, error) {
	filtros := vista.NuevosFiltros()
	filtros.FechaDesde = reserva.ParseFecha(c.Query("fechaDesde"))
	filtros.FechaHasta = reserva.ParseFecha(c.Query("fechaHasta"))
	filtros.Busqueda = c.Query("busqueda")

	if eje := vista.EjeFecha(c.Query("tipoFecha")); eje != "" {
		if !eje.IsValid() {
			return vista.Config{}, errors.New("tipoFecha inválido: debe ser creacion o salida")
		}
		filtros.Eje = eje
	}
	if estado := vista.EstadoFiltro(c.Query("estado")); estado != "" {
		if !estado.IsValid() {
			return vista.Config{}, errors.New("estado inválido: debe ser todas, completadas o pendientes")
		}
		filtros.Estado = estado
	}

	var orden vista.Orden
	if clave := vista.ClaveOrden(c.Query("orden")); clave != "" {
		if !clave.IsValid() {
			return vista.Config{}, errors.New("columna de orden inválida")
		}
		direccion := vista.Direccion(c.Query("direccion"))
		switch direccion {
		case vista.DireccionNinguna:
			direccion = vista.DireccionAsc
		case vista.DireccionAsc, vista.DireccionDesc:
		default:
			return vista.Config{}, errors.New("direccion inválida: debe ser asc o desc")
		}
		orden = vista.Orden{Clave: clave, Direccion: direccion}
	}

	return vista.Config{Filtros: filtros, Orden: orden}, nil
}

// abortConError translates usecase errors to HTTP responses. Checks use
// errs.Is because the usecase attaches sentinels as marks, which live
// outside the Unwrap chain that stdlib errors.Is walks.
func abortConError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrReservaNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reserva no encontrada")
	case errs.Is(err, usecase.ErrPagoNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Pago no encontrado")
	case errs.Is(err, usecase.ErrLadoInvalido):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Lado inválido: debe ser cliente o proveedor")
	case errs.Is(err, usecase.ErrMonedaInvalida):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Moneda inválida: debe ser ARS o USD")
	case errs.Is(err, usecase.ErrMetodoInvalido):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Método de pago inválido")
	case errs.Is(err, usecase.ErrValidacion):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error interno del servidor")
	}
}
