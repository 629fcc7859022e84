package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "eiffel-bike-client/internal/handler/dto/request"
	resdto "eiffel-bike-client/internal/handler/dto/response"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MarketplaceHandler struct {
	market usecase.MarketplaceWorkflow
	fx     *usecase.FxService
}

func NewMarketplaceHandler(market usecase.MarketplaceWorkflow, fx *usecase.FxService) *MarketplaceHandler {
	return &MarketplaceHandler{
		market: market,
		fx:     fx,
	}
}

// @Summary Sale offers
// @Description Active marketplace listings, optionally filtered by a search query
// @Tags sales
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} resdto.SaleOfferResponse
// @Router /sales [get]
func (h *MarketplaceHandler) Offers(c *gin.Context) {
	offers, err := h.market.Offers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSaleOffers(offers))
}

// @Summary Basket
// @Description Current basket with its total in euros and in the display currency
// @Tags sales
// @Produce json
// @Success 200 {object} resdto.BasketResponse
// @Router /basket [get]
func (h *MarketplaceHandler) Basket(c *gin.Context) {
	b, err := h.market.Basket(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBasket(b, h.fx.Selected(), h.fx.Convert))
}

// @Summary Add a sale offer to the basket
// @Tags sales
// @Accept json
// @Produce json
// @Param request body reqdto.BasketItemRequest true "Basket item request"
// @Success 200 {object} resdto.BasketResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /basket/items [post]
func (h *MarketplaceHandler) AddToBasket(c *gin.Context) {
	var req reqdto.BasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	b, err := h.market.AddToBasket(c.Request.Context(), req.SaleOfferID)
	if err != nil {
		if errors.Is(err, usecase.ErrSelfPurchaseDenied) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "You cannot buy your own bike",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBasket(b, h.fx.Selected(), h.fx.Convert))
}

// @Summary Remove a sale offer from the basket
// @Tags sales
// @Produce json
// @Success 200 {object} resdto.BasketResponse
// @Failure 400 {object} map[string]string
// @Router /basket/items/{saleOfferId} [delete]
func (h *MarketplaceHandler) RemoveFromBasket(c *gin.Context) {
	saleOfferID, err := strconv.ParseInt(c.Param("saleOfferId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sale offer id",
		})
		return
	}

	b, err := h.market.RemoveFromBasket(c.Request.Context(), saleOfferID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBasket(b, h.fx.Selected(), h.fx.Convert))
}

// @Summary Checkout
// @Description Turn the basket into a pending purchase; the basket stays intact until payment
// @Tags sales
// @Produce json
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Router /basket/checkout [post]
func (h *MarketplaceHandler) Checkout(c *gin.Context) {
	purchase, err := h.market.Checkout(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchase(purchase))
}

// @Summary Pay a pending purchase
// @Description Pays the EUR total fixed at checkout; success clears the basket
// @Tags sales
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /basket/payment [post]
func (h *MarketplaceHandler) PayPurchase(c *gin.Context) {
	var req reqdto.PayPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	card, err := req.ToCard()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := h.market.PayPurchase(c.Request.Context(), req.PurchaseID, card); err != nil {
		if errors.Is(err, errs.ErrNoPendingPurchase) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "No purchase is awaiting payment",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Pending purchase
// @Description The checked-out purchase awaiting payment, if any
// @Tags sales
// @Produce json
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 404 {object} map[string]string
// @Router /basket/pending [get]
func (h *MarketplaceHandler) PendingPurchase(c *gin.Context) {
	pending := h.market.PendingPurchase()
	if pending == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No purchase is awaiting payment",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchase(*pending))
}
