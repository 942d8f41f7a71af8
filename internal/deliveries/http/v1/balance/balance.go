package balance

import (
	nethttp "net/http"

	"github.com/torxlabs/go-treasury/internal/common/http"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

type balanceHandler struct {
	balanceSvc services.BalanceService
}

// New will initialize the balances/ resources endpoint
func New(app *echo.Group, balanceSvc services.BalanceService) {
	handler := balanceHandler{
		balanceSvc: balanceSvc,
	}
	api := app.Group("/balances")
	api.GET("", handler.getBalances)
}

// getBalances returns the aggregated cross-bank snapshot. Unreachable
// banks appear with a fetch error and a zero balance.
func (h *balanceHandler) getBalances(c echo.Context) error {
	snapshot, err := h.balanceSvc.Snapshot(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, snapshot.ToResponse())
}
