package catalog

import (
	"net/http"

	"expohall/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalog Catalog
}

func NewController(catalog Catalog) *Controller {
	return &Controller{catalog: catalog}
}

// ListServices handles GET /api/services. The contract is a bare JSON array.
func (c *Controller) ListServices(ctx *gin.Context) {
	list, err := c.catalog.ListServices(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "failed to load services")
		return
	}
	if list == nil {
		list = []Service{}
	}
	ctx.JSON(http.StatusOK, list)
}
