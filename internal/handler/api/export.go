package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guillotegh/sistema-reservas/internal/handler/httperr"
	"github.com/guillotegh/sistema-reservas/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportUseCase usecase.ExportUseCase
}

func NewExportHandler(exportUseCase usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

// @Summary Exportar planilla
// @Description Genera el archivo de cálculo con las reservas filtradas
// @Tags reservas
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param fechaDesde query string false "Cota inferior del rango (YYYY-MM-DD)"
// @Param fechaHasta query string false "Cota superior del rango (YYYY-MM-DD)"
// @Param tipoFecha query string false "Eje del rango: creacion o salida" default(salida)
// @Param busqueda query string false "Texto a buscar en titular, operador o destino"
// @Param estado query string false "todas, completadas o pendientes" default(todas)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /reservas/export [get]
func (h *ExportHandler) ExportarReservas(c *gin.Context) {
	cfg, err := parseVistaConfig(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	nombre, contenido, err := h.exportUseCase.Exportar(c.Request.Context(), cfg.Filtros)
	if err != nil {
		abortConError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK, xlsxContentType, contenido)
}
