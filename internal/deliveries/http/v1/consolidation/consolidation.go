package consolidation

import (
	"errors"
	nethttp "net/http"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/http"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

type consolidationHandler struct {
	orchestratorSvc services.OrchestratorService
}

// New will initialize the consolidations/ resources endpoint
func New(app *echo.Group, orchestratorSvc services.OrchestratorService) {
	handler := consolidationHandler{
		orchestratorSvc: orchestratorSvc,
	}
	api := app.Group("/consolidations")
	api.POST("", handler.runConsolidation)
}

// runConsolidation triggers one full consolidation run and returns its
// report. A dry run returns the same report with nothing executed.
func (h *consolidationHandler) runConsolidation(c echo.Context) error {
	req := new(models.ConsolidationRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	run, err := h.orchestratorSvc.RunConsolidation(c.Request().Context(), *req)
	if err != nil {
		if errors.Is(err, common.ErrRunAlreadyInProgress) {
			return http.RestErrorResponse(c, nethttp.StatusConflict, models.GetErrMap(models.ErrKeyRunAlreadyInProgress))
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, run.ToResponse())
}
