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

type OfferHandler struct {
	offers usecase.OfferWorkflow
}

func NewOfferHandler(offers usecase.OfferWorkflow) *OfferHandler {
	return &OfferHandler{
		offers: offers,
	}
}

// @Summary Bikes offered by the current provider
// @Tags offers
// @Produce json
// @Success 200 {array} resdto.BikeResponse
// @Router /offer/bikes [get]
func (h *OfferHandler) MyBikes(c *gin.Context) {
	bikes, err := h.offers.MyBikes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBikes(bikes))
}

// @Summary List a bike for rent
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.ListForRentRequest true "Rental listing request"
// @Success 201 {object} resdto.BikeResponse
// @Failure 400 {object} map[string]string
// @Router /offer/bikes [post]
func (h *OfferHandler) ListForRent(c *gin.Context) {
	var req reqdto.ListForRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	listed, err := h.offers.ListForRent(c.Request.Context(), req.Description, req.BikeType(), req.DailyRateEur)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBike(listed))
}

// @Summary List a bike for sale
// @Description Create a marketplace sale offer; an optional note is attached best-effort
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.ListForSaleRequest true "Sale listing request"
// @Success 201 {object} resdto.SaleOfferResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offer/sales [post]
func (h *OfferHandler) ListForSale(c *gin.Context) {
	var req reqdto.ListForSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	offer, err := h.offers.ListForSale(c.Request.Context(), req.BikeID, req.AskingPriceEur, req.GetNote())
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateSaleOffer) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "This bike already has an active sale offer",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSaleOffer(offer))
}

// @Summary Return notes for a bike
// @Description Condition reports collected from completed returns
// @Tags offers
// @Produce json
// @Success 200 {array} resdto.ReturnNoteResponse
// @Failure 400 {object} map[string]string
// @Router /offer/bikes/{id}/return-notes [get]
func (h *OfferHandler) ReturnNotes(c *gin.Context) {
	bikeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bike id",
		})
		return
	}

	notes, err := h.offers.ReturnNotes(c.Request.Context(), bikeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReturnNotes(notes))
}
