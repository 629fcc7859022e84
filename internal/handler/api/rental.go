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

type RentalHandler struct {
	rentals usecase.RentalWorkflow
}

func NewRentalHandler(rentals usecase.RentalWorkflow) *RentalHandler {
	return &RentalHandler{
		rentals: rentals,
	}
}

// @Summary Dashboard
// @Description Catalog with per-viewer flags, active rentals, and notifications
// @Tags rentals
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Router /dashboard [get]
func (h *RentalHandler) Dashboard(c *gin.Context) {
	view, err := h.rentals.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboard(view))
}

// @Summary Request a rental
// @Description Drive the rent decision for a bike; may stop at payment, join the waitlist, or no-op
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.RentRequest true "Rent request"
// @Success 200 {object} resdto.RentStepResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) Rent(c *gin.Context) {
	var req reqdto.RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	step, err := h.rentals.RequestRent(c.Request.Context(), req.BikeID, req.Days)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfRentalDenied):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You cannot rent your own bike",
			})
		case errors.Is(err, usecase.ErrInvalidDays):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": usecase.ErrInvalidDays.Error(),
			})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentStep(step))
}

// @Summary Confirm a pending rental payment
// @Description Pay for the rent attempt that stopped at the payment step
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentRequest true "Payment request"
// @Success 200 {object} resdto.RentStepResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/payment [post]
func (h *RentalHandler) ConfirmPayment(c *gin.Context) {
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	card, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	step, err := h.rentals.ConfirmPayment(c.Request.Context(), card)
	if err != nil {
		if errors.Is(err, errs.ErrNoPendingPayment) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "No rental is awaiting payment",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentStep(step))
}

// @Summary Cancel a pending rental payment
// @Tags rentals
// @Success 204 "No Content"
// @Router /rentals/payment [delete]
func (h *RentalHandler) CancelPayment(c *gin.Context) {
	h.rentals.CancelPayment()
	c.Status(http.StatusNoContent)
}

// @Summary Return a rented bike
// @Description Close an active rental with a condition report
// @Tags rentals
// @Accept json
// @Param request body reqdto.ReturnRequest true "Return request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /rentals/{id}/return [post]
func (h *RentalHandler) Return(c *gin.Context) {
	rentalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental id",
		})
		return
	}

	var req reqdto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	condition, err := req.ToCondition()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := h.rentals.ReturnBike(c.Request.Context(), rentalID, condition, req.GetComment()); err != nil {
		if errors.Is(err, usecase.ErrNotYourRental) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "This rental is not yours to return",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Waitlist entries
// @Description Pending waitlist entries for the current user
// @Tags rentals
// @Produce json
// @Success 200 {array} resdto.WaitlistEntryResponse
// @Router /waitlist [get]
func (h *RentalHandler) Waitlist(c *gin.Context) {
	entries, err := h.rentals.Waitlist(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWaitlist(entries))
}
