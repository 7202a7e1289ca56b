package handler

import (
	"github.com/gin-gonic/gin"
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/hacom/backend/internal/domain/shipping"
)

// ProvinceHandler lists the province table used for distance estimates
type ProvinceHandler struct {
	BaseHandler
	provinces *shipping.ProvinceDirectory
}

// NewProvinceHandler creates a new ProvinceHandler
func NewProvinceHandler(provinces *shipping.ProvinceDirectory) *ProvinceHandler {
	return &ProvinceHandler{provinces: provinces}
}

// List godoc
// @ID           listProvinces
// @Summary      List provinces
// @Description  Lists provinces ordered by id. The search ignores case and diacritics.
// @Tags         shipping
// @Produce      json
// @Param        search query    string false "Name filter, e.g. ha noi"
// @Success      200    {object} APIResponse[[]ProvinceResponse]
// @Router       /shipping/provinces [get]
func (h *ProvinceHandler) List(c *gin.Context) {
	h.Success(c, shippingapp.ToProvinceResponses(h.provinces.Search(c.Query("search"))))
}
