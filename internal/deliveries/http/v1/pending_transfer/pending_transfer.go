package pendingtransfer

import (
	"errors"
	nethttp "net/http"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/http"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

type pendingTransferHandler struct {
	pendingTransferSvc services.PendingTransferService
}

// New will initialize the pending-transfers/ resources endpoint
func New(app *echo.Group, pendingTransferSvc services.PendingTransferService) {
	handler := pendingTransferHandler{
		pendingTransferSvc: pendingTransferSvc,
	}
	api := app.Group("/pending-transfers")
	api.GET("", handler.getPendingTransfers)
	api.POST("/:transactionId/received", handler.markReceived)
}

func (h *pendingTransferHandler) getPendingTransfers(c echo.Context) error {
	var (
		transfers []models.PendingTransfer
		err       error
	)

	if bank := c.QueryParam("bank"); bank != "" {
		transfers, err = h.pendingTransferSvc.ListByBank(c.Request().Context(), bank)
	} else {
		transfers, err = h.pendingTransferSvc.List(c.Request().Context())
	}
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	data := make([]models.PendingTransferOut, 0, len(transfers))
	for _, t := range transfers {
		data = append(data, t.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// markReceived closes a ledger entry once the destination bank confirmed
// the transfer arrived.
func (h *pendingTransferHandler) markReceived(c echo.Context) error {
	transactionID := c.Param("transactionId")

	received, err := h.pendingTransferSvc.MarkReceived(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, common.ErrPendingTransferNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, models.GetErrMap(models.ErrKeyPendingTransferNotFound, transactionID))
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, received.ToResponse())
}
