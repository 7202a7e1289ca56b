package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/hacom/backend/internal/interfaces/http/dto"
)

// ZoneHandler handles shipping zone administration endpoints
type ZoneHandler struct {
	BaseHandler
	zoneService *shippingapp.ZoneService
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(zoneService *shippingapp.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService}
}

// CreateZoneRequest represents a request to create a shipping zone
// @Description Empty id lists match every province or district
type CreateZoneRequest struct {
	WarehouseID string `json:"warehouse_id" binding:"required,uuid" example:"9b2f1c1e-6a0c-4f43-9a55-2b1f8c3d4e5f"`
	Name        string `json:"name" binding:"required,min=1,max=200" example:"Noi thanh Ha Noi"`
	ProvinceIDs []int  `json:"province_ids" example:"1"`
	DistrictIDs []int  `json:"district_ids" example:"1,2,3"`
}

// UpdateZoneRequest represents a partial zone update. Omitted lists are
// kept, empty lists turn the zone into a wildcard.
// @Description Request body for updating a shipping zone
type UpdateZoneRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200" example:"Ngoai thanh Ha Noi"`
	ProvinceIDs []int   `json:"province_ids" example:"1"`
	DistrictIDs []int   `json:"district_ids" example:"17,18"`
	IsActive    *bool   `json:"is_active" example:"true"`
}

// Create godoc
// @ID           createZone
// @Summary      Create a shipping zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        request body     CreateZoneRequest true "Zone"
// @Success      201     {object} APIResponse[ZoneResponse]
// @Failure      400     {object} ErrorResponse
// @Failure      404     {object} ErrorResponse
// @Router       /shipping/zones [post]
func (h *ZoneHandler) Create(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	zone, err := h.zoneService.Create(c.Request.Context(), shippingapp.CreateZoneRequest{
		WarehouseID: uuid.MustParse(req.WarehouseID),
		Name:        req.Name,
		ProvinceIDs: req.ProvinceIDs,
		DistrictIDs: req.DistrictIDs,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, zone)
}

// GetByID godoc
// @ID           getZoneById
// @Summary      Get a shipping zone
// @Tags         zones
// @Produce      json
// @Param        id  path     string true "Zone ID" format(uuid)
// @Success      200 {object} APIResponse[ZoneResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /shipping/zones/{id} [get]
func (h *ZoneHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id", "zone")
	if !ok {
		return
	}

	zone, err := h.zoneService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, zone)
}

// List godoc
// @ID           listZones
// @Summary      List shipping zones
// @Description  Zones are listed in matching order, oldest first
// @Tags         zones
// @Produce      json
// @Param        warehouse_id query    string false "Owning warehouse" format(uuid)
// @Param        search       query    string false "Name filter"
// @Param        is_active    query    bool   false "Active filter"
// @Param        page         query    int    false "Page number" default(1)
// @Param        page_size    query    int    false "Page size" default(20)
// @Success      200          {object} APIResponse[[]ZoneResponse]
// @Failure      400          {object} ErrorResponse
// @Router       /shipping/zones [get]
func (h *ZoneHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.Normalize()

	warehouseID, ok := queryUUID(c, "warehouse_id")
	if !ok {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}
	isActive, ok := queryBool(c, "is_active")
	if !ok {
		h.BadRequest(c, "is_active must be a boolean")
		return
	}

	zones, total, err := h.zoneService.List(c.Request.Context(), shippingapp.ZoneListFilter{
		WarehouseID: warehouseID,
		Search:      req.Search,
		IsActive:    isActive,
		Page:        req.Page,
		PageSize:    req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, zones, total, req.Page, req.PageSize)
}

// Update godoc
// @ID           updateZone
// @Summary      Update a shipping zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        id      path     string            true "Zone ID" format(uuid)
// @Param        request body     UpdateZoneRequest true "Fields to change"
// @Success      200     {object} APIResponse[ZoneResponse]
// @Failure      400     {object} ErrorResponse
// @Failure      404     {object} ErrorResponse
// @Router       /shipping/zones/{id} [put]
func (h *ZoneHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "zone")
	if !ok {
		return
	}

	var req UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	zone, err := h.zoneService.Update(c.Request.Context(), id, shippingapp.UpdateZoneRequest{
		Name:        req.Name,
		ProvinceIDs: req.ProvinceIDs,
		DistrictIDs: req.DistrictIDs,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, zone)
}

// Delete godoc
// @ID           deleteZone
// @Summary      Delete a shipping zone and its rates
// @Tags         zones
// @Param        id path string true "Zone ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /shipping/zones/{id} [delete]
func (h *ZoneHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "zone")
	if !ok {
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
