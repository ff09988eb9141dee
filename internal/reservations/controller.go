package reservations

import (
	"errors"
	"net/http"

	"expohall/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateReservation handles POST /api/reservations. On success the created
// reservation is echoed back with its server id and creation timestamp; all
// failures carry plain-text bodies.
func (c *Controller) CreateReservation(ctx *gin.Context) {
	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "invalid reservation payload")
		return
	}

	reservation, err := c.service.CreateReservation(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBoothNotFound):
			response.Error(ctx, http.StatusNotFound, "booth not found")
		case errors.Is(err, ErrBoothConflict):
			response.Error(ctx, http.StatusConflict, "booth is no longer available")
		case errors.Is(err, ErrConsentMissing):
			response.Error(ctx, http.StatusBadRequest, "all agreements must be accepted")
		case errors.Is(err, ErrTotalMismatch), errors.Is(err, ErrUnknownService):
			response.Error(ctx, http.StatusBadRequest, err.Error())
		default:
			response.Error(ctx, http.StatusInternalServerError, "failed to create reservation")
		}
		return
	}

	ctx.JSON(http.StatusCreated, reservation)
}

// ListReservations handles GET /api/reservations for the authenticated user.
func (c *Controller) ListReservations(ctx *gin.Context) {
	email, _ := ctx.Get("user_email")
	emailStr, ok := email.(string)
	if !ok || emailStr == "" {
		response.Error(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	list, err := c.service.ListReservations(ctx.Request.Context(), emailStr)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "failed to load reservations")
		return
	}
	if list == nil {
		list = []Reservation{}
	}
	ctx.JSON(http.StatusOK, list)
}

// CancelReservation handles DELETE /api/reservations/:id. Cancellation is
// out of scope; the endpoint exists so clients get a stable answer.
func (c *Controller) CancelReservation(ctx *gin.Context) {
	response.Error(ctx, http.StatusNotImplemented, "reservation cancellation is not implemented")
}
