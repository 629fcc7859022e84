package api

import (
	"net/http"

	reqdto "eiffel-bike-client/internal/handler/dto/request"
	resdto "eiffel-bike-client/internal/handler/dto/response"
	"eiffel-bike-client/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AppHandler serves the cross-cutting surface: the single visible alert and
// the display-currency selection.
type AppHandler struct {
	notifier *usecase.Notifier
	fx       *usecase.FxService
}

func NewAppHandler(notifier *usecase.Notifier, fx *usecase.FxService) *AppHandler {
	return &AppHandler{
		notifier: notifier,
		fx:       fx,
	}
}

// @Summary Current alert
// @Tags app
// @Produce json
// @Success 200 {object} resdto.AlertResponse
// @Success 204 "No Content"
// @Router /alert [get]
func (h *AppHandler) Alert(c *gin.Context) {
	alert := resdto.FromAlert(h.notifier.Current())
	if alert == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// @Summary Dismiss the current alert
// @Tags app
// @Success 204 "No Content"
// @Router /alert [delete]
func (h *AppHandler) DismissAlert(c *gin.Context) {
	h.notifier.Dismiss()
	c.Status(http.StatusNoContent)
}

// @Summary Available display currencies
// @Tags app
// @Produce json
// @Success 200 {object} resdto.CurrenciesResponse
// @Router /currencies [get]
func (h *AppHandler) Currencies(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CurrenciesResponse{
		Currencies: h.fx.Currencies(),
		Selected:   h.fx.Selected(),
	})
}

// @Summary Select the display currency
// @Description Presentation only; stored amounts stay in euros
// @Tags app
// @Accept json
// @Produce json
// @Param request body reqdto.SelectCurrencyRequest true "Currency selection"
// @Success 200 {object} resdto.CurrenciesResponse
// @Failure 400 {object} map[string]string
// @Router /currencies [put]
func (h *AppHandler) SelectCurrency(c *gin.Context) {
	var req reqdto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.fx.SelectCurrency(req.Currency); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown currency",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.CurrenciesResponse{
		Currencies: h.fx.Currencies(),
		Selected:   h.fx.Selected(),
	})
}

// @Summary Refresh exchange rates
// @Tags app
// @Produce json
// @Success 200 {object} resdto.CurrenciesResponse
// @Failure 502 {object} map[string]string
// @Router /currencies/refresh [post]
func (h *AppHandler) RefreshRates(c *gin.Context) {
	if err := h.fx.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CurrenciesResponse{
		Currencies: h.fx.Currencies(),
		Selected:   h.fx.Selected(),
	})
}
