package booths

import (
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

// ListBooths handles GET /api/booths. The contract is a bare JSON array.
func (c *Controller) ListBooths(ctx *gin.Context) {
	list, err := c.service.ListBooths(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "failed to load booths")
		return
	}
	if list == nil {
		list = []Booth{}
	}
	ctx.JSON(http.StatusOK, list)
}
