package reconciliation

import (
	"errors"
	nethttp "net/http"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/http"
	"github.com/torxlabs/go-treasury/internal/common/validation"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

type reconciliationHandler struct {
	reconcileSvc services.ReconcileService
}

// New will initialize the reconciliations/ resources endpoint
func New(app *echo.Group, reconcileSvc services.ReconcileService) {
	handler := reconciliationHandler{
		reconcileSvc: reconcileSvc,
	}
	api := app.Group("/reconciliations")
	api.POST("", handler.reconcile)
}

// reconcile matches one observed incoming amount against the open expected
// payouts. A miss is reported as 422 so the operator knows to leave the
// amount for a later run or investigate by hand.
func (h *reconciliationHandler) reconcile(c echo.Context) error {
	req := new(models.ReconcileRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	match, err := h.reconcileSvc.Reconcile(c.Request().Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidAmount):
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidAmount))
		case errors.Is(err, common.ErrNoSuitableMatch):
			return http.RestErrorResponse(c, nethttp.StatusUnprocessableEntity, models.GetErrMap(models.ErrKeyNoSuitableMatch))
		default:
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, match.ToResponse())
}
