package auth

import (
	"errors"
	"net/http"

	"expohall/internal/shared/response"
	"expohall/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Login handles POST /api/auth/login
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "invalid login payload")
		return
	}

	res, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.GetDefault().LogAuthFailure(ctx.Request.Context(), "invalid credentials", ctx.ClientIP())
			response.Error(ctx, http.StatusUnauthorized, "invalid email or password")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "login failed")
		return
	}

	logger.GetDefault().LogAuthSuccess(ctx.Request.Context(), req.Email)
	ctx.JSON(http.StatusOK, res)
}

// Register handles POST /api/auth/register
func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "invalid registration payload")
		return
	}

	res, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(ctx, http.StatusConflict, "email is already registered")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "registration failed")
		return
	}

	ctx.JSON(http.StatusCreated, res)
}
