package payout

import (
	nethttp "net/http"
	"strconv"

	"github.com/torxlabs/go-treasury/internal/common/http"
	"github.com/torxlabs/go-treasury/internal/common/validation"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

type payoutHandler struct {
	reconcileSvc services.ReconcileService
}

// New will initialize the payouts/ resources endpoint
func New(app *echo.Group, reconcileSvc services.ReconcileService) {
	handler := payoutHandler{
		reconcileSvc: reconcileSvc,
	}
	api := app.Group("/payouts")
	api.POST("", handler.createExpectedPayout)
	api.GET("/pending", handler.getPendingPayouts)
}

// createExpectedPayout registers a payout to expect. The net amount is
// derived from the platform's fee model, not supplied by the caller.
func (h *payoutHandler) createExpectedPayout(c echo.Context) error {
	req := new(models.CreateExpectedPayoutRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	created, err := h.reconcileSvc.CreateExpectedPayout(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, created.ToResponse())
}

func (h *payoutHandler) getPendingPayouts(c echo.Context) error {
	opts := models.PayoutFilterOptions{}

	if platform := c.QueryParam("platform"); platform != "" {
		opts.Platform = models.PlatformFromString(platform)
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyLimitMustBeGreaterThanZero))
		}
		opts.Limit = limit
	}

	payouts, err := h.reconcileSvc.ListPendingPayouts(c.Request().Context(), opts)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	data := make([]models.ExpectedPayoutOut, 0, len(payouts))
	for _, p := range payouts {
		data = append(data, p.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}
