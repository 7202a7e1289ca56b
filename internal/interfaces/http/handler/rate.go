package handler

import (
	"github.com/gin-gonic/gin"
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/shopspring/decimal"
)

// RateHandler handles rate band administration endpoints
type RateHandler struct {
	BaseHandler
	rateService *shippingapp.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rateService *shippingapp.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// RateRequest is the tariff of a rate band. Amounts accept JSON numbers or
// decimal strings. A null max_distance leaves the band open-ended.
// @Description Rate band tariff
type RateRequest struct {
	MinDistance    decimal.Decimal  `json:"min_distance" binding:"decimal_gte0" swaggertype:"string" example:"0"`
	MaxDistance    *decimal.Decimal `json:"max_distance" binding:"omitempty,decimal_gte0" swaggertype:"string" example:"30"`
	BaseRate       decimal.Decimal  `json:"base_rate" binding:"decimal_gte0" swaggertype:"string" example:"20000"`
	PerKmRate      decimal.Decimal  `json:"per_km_rate" binding:"decimal_gte0" swaggertype:"string" example:"1500"`
	MinOrderAmount decimal.Decimal  `json:"min_order_amount" binding:"decimal_gte0" swaggertype:"string" example:"2000000"`
	IsActive       *bool            `json:"is_active" example:"true"`
}

func (r RateRequest) toApp() shippingapp.RateRequest {
	return shippingapp.RateRequest{
		MinDistance:    r.MinDistance,
		MaxDistance:    r.MaxDistance,
		BaseRate:       r.BaseRate,
		PerKmRate:      r.PerKmRate,
		MinOrderAmount: r.MinOrderAmount,
		IsActive:       r.IsActive,
	}
}

// ListByZone godoc
// @ID           listZoneRates
// @Summary      List the rate bands of a zone
// @Tags         rates
// @Produce      json
// @Param        id  path     string true "Zone ID" format(uuid)
// @Success      200 {object} APIResponse[[]RateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /shipping/zones/{id}/rates [get]
func (h *RateHandler) ListByZone(c *gin.Context) {
	zoneID, ok := h.parseID(c, "id", "zone")
	if !ok {
		return
	}

	rates, err := h.rateService.ListByZone(c.Request.Context(), zoneID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rates)
}

// Create godoc
// @ID           createZoneRate
// @Summary      Add a rate band to a zone
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        id      path     string      true "Zone ID" format(uuid)
// @Param        request body     RateRequest true "Tariff"
// @Success      201     {object} APIResponse[RateResponse]
// @Failure      400     {object} ErrorResponse
// @Failure      404     {object} ErrorResponse
// @Router       /shipping/zones/{id}/rates [post]
func (h *RateHandler) Create(c *gin.Context) {
	zoneID, ok := h.parseID(c, "id", "zone")
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	rate, err := h.rateService.Create(c.Request.Context(), zoneID, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, rate)
}

// Update godoc
// @ID           updateRate
// @Summary      Replace the tariff of a rate band
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        id      path     string      true "Rate ID" format(uuid)
// @Param        request body     RateRequest true "Tariff"
// @Success      200     {object} APIResponse[RateResponse]
// @Failure      400     {object} ErrorResponse
// @Failure      404     {object} ErrorResponse
// @Router       /shipping/rates/{id} [put]
func (h *RateHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "rate")
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	rate, err := h.rateService.Update(c.Request.Context(), id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rate)
}

// Delete godoc
// @ID           deleteRate
// @Summary      Delete a rate band
// @Tags         rates
// @Param        id path string true "Rate ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /shipping/rates/{id} [delete]
func (h *RateHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "rate")
	if !ok {
		return
	}

	if err := h.rateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
