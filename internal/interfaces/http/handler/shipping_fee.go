package handler

import (
	"github.com/gin-gonic/gin"
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/shopspring/decimal"
)

// ShippingFeeHandler serves storefront shipping quotes
type ShippingFeeHandler struct {
	BaseHandler
	feeService *shippingapp.FeeService
}

// NewShippingFeeHandler creates a new ShippingFeeHandler
func NewShippingFeeHandler(feeService *shippingapp.FeeService) *ShippingFeeHandler {
	return &ShippingFeeHandler{feeService: feeService}
}

// CalculateShippingFeeRequest is the body of a quote request
// @Description Destination and order total to quote
type CalculateShippingFeeRequest struct {
	DestinationProvinceID int             `json:"destination_province_id" binding:"required,gt=0" example:"79"`
	DestinationDistrictID *int            `json:"destination_district_id" example:"760"`
	OrderAmount           decimal.Decimal `json:"order_amount" binding:"decimal_gte0" swaggertype:"number" example:"450000"`
}

// Calculate godoc
// @ID           calculateShippingFee
// @Summary      Calculate shipping fee
// @Description  Quotes the delivery fee from the origin warehouse to a destination province
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request body     CalculateShippingFeeRequest true "Quote request"
// @Success      200     {object} APIResponse[ShippingFeeResponse]
// @Failure      400     {object} ErrorResponse
// @Failure      404     {object} ErrorResponse
// @Failure      429     {object} ErrorResponse
// @Failure      500     {object} ErrorResponse
// @Router       /shipping/calculate [post]
func (h *ShippingFeeHandler) Calculate(c *gin.Context) {
	var req CalculateShippingFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	quote, err := h.feeService.Calculate(c.Request.Context(), shippingapp.CalculateFeeRequest{
		DestinationProvinceID: req.DestinationProvinceID,
		DestinationDistrictID: req.DestinationDistrictID,
		OrderAmount:           req.OrderAmount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}
