package api

import (
	"errors"
	"net/http"

	reqdto "eiffel-bike-client/internal/handler/dto/request"
	resdto "eiffel-bike-client/internal/handler/dto/response"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
	"eiffel-bike-client/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth usecase.AuthWorkflow
}

func NewAuthHandler(auth usecase.AuthWorkflow) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// @Summary Register a new customer
// @Description Create a backend account; the user still logs in afterwards
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	registration, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := h.auth.Register(c.Request.Context(), registration); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"redirect": session.LoginPath,
	})
}

// @Summary User login
// @Description Login with email and password; establishes the local session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	claim, err := h.auth.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			respondError(c, err)
		}
		return
	}

	user, err := h.auth.CurrentUser()
	if err != nil {
		respondError(c, err)
		return
	}

	response := resdto.LoginResponse{
		User:     resdto.FromCurrentUser(user),
		Redirect: session.LandingPath(claim.Role()),
	}
	c.JSON(http.StatusOK, response)
}

// @Summary User logout
// @Description Clear the local session and the persisted credential
// @Tags auth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout()
	c.JSON(http.StatusOK, gin.H{
		"redirect": session.LoginPath,
	})
}

// @Summary Get current user
// @Description Current session identity with its landing route
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.CurrentUserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser()
	if err != nil {
		if errors.Is(err, errs.ErrNoSession) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Not logged in",
				"redirect": session.LoginPath,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCurrentUser(user))
}
