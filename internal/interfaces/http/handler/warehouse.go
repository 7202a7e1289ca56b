package handler

import (
	"github.com/gin-gonic/gin"
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/hacom/backend/internal/interfaces/http/dto"
)

// WarehouseHandler handles warehouse administration endpoints
type WarehouseHandler struct {
	BaseHandler
	warehouseService *shippingapp.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(warehouseService *shippingapp.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// CreateWarehouseRequest represents a request to create a new warehouse
// @Description Request body for creating a new warehouse
type CreateWarehouseRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=200" example:"HACOM Hai Ba Trung"`
	Address   string   `json:"address" binding:"max=500" example:"131 Le Thanh Nghi, Ha Noi"`
	Latitude  *float64 `json:"latitude" binding:"required,latitude" example:"21.0285"`
	Longitude *float64 `json:"longitude" binding:"required,longitude" example:"105.8542"`
	IsDefault bool     `json:"is_default" example:"true"`
}

// UpdateWarehouseRequest represents a partial warehouse update
// @Description Request body for updating a warehouse
type UpdateWarehouseRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=200" example:"HACOM Dong Da"`
	Address   *string  `json:"address" binding:"omitempty,max=500" example:"43 Thai Ha, Ha Noi"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude" example:"21.0122"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude" example:"105.8215"`
	IsActive  *bool    `json:"is_active" example:"true"`
}

// Create godoc
// @ID           createWarehouse
// @Summary      Create a warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        request body     CreateWarehouseRequest true "Warehouse"
// @Success      201     {object} APIResponse[WarehouseResponse]
// @Failure      400     {object} ErrorResponse
// @Failure      500     {object} ErrorResponse
// @Router       /shipping/warehouses [post]
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	warehouse, err := h.warehouseService.Create(c.Request.Context(), shippingapp.CreateWarehouseRequest{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, warehouse)
}

// GetByID godoc
// @ID           getWarehouseById
// @Summary      Get a warehouse
// @Tags         warehouses
// @Produce      json
// @Param        id  path     string true "Warehouse ID" format(uuid)
// @Success      200 {object} APIResponse[WarehouseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /shipping/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id", "warehouse")
	if !ok {
		return
	}

	warehouse, err := h.warehouseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// List godoc
// @ID           listWarehouses
// @Summary      List warehouses
// @Tags         warehouses
// @Produce      json
// @Param        search    query    string false "Name or address filter"
// @Param        is_active query    bool   false "Active filter"
// @Param        page      query    int    false "Page number" default(1)
// @Param        page_size query    int    false "Page size" default(20)
// @Param        order_by  query    string false "Sort field" default(created_at)
// @Param        order_dir query    string false "Sort direction" Enums(asc, desc)
// @Success      200       {object} APIResponse[[]WarehouseResponse]
// @Failure      400       {object} ErrorResponse
// @Router       /shipping/warehouses [get]
func (h *WarehouseHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.Normalize()

	isActive, ok := queryBool(c, "is_active")
	if !ok {
		h.BadRequest(c, "is_active must be a boolean")
		return
	}

	warehouses, total, err := h.warehouseService.List(c.Request.Context(), shippingapp.WarehouseListFilter{
		Search:   req.Search,
		IsActive: isActive,
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, warehouses, total, req.Page, req.PageSize)
}

// Update godoc
// @ID           updateWarehouse
// @Summary      Update a warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id      path     string                 true "Warehouse ID" format(uuid)
// @Param        request body     UpdateWarehouseRequest true "Fields to change"
// @Success      200     {object} APIResponse[WarehouseResponse]
// @Failure      400     {object} ErrorResponse
// @Failure      404     {object} ErrorResponse
// @Router       /shipping/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "warehouse")
	if !ok {
		return
	}

	var req UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	warehouse, err := h.warehouseService.Update(c.Request.Context(), id, shippingapp.UpdateWarehouseRequest{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// SetDefault godoc
// @ID           setDefaultWarehouse
// @Summary      Make a warehouse the shipping origin
// @Description  Flags the warehouse as default and clears the flag on every other warehouse
// @Tags         warehouses
// @Produce      json
// @Param        id  path     string true "Warehouse ID" format(uuid)
// @Success      200 {object} APIResponse[WarehouseResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /shipping/warehouses/{id}/default [post]
func (h *WarehouseHandler) SetDefault(c *gin.Context) {
	id, ok := h.parseID(c, "id", "warehouse")
	if !ok {
		return
	}

	warehouse, err := h.warehouseService.SetDefault(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// Delete godoc
// @ID           deleteWarehouse
// @Summary      Delete a warehouse
// @Description  Fails with 409 while the warehouse still owns zones
// @Tags         warehouses
// @Param        id path string true "Warehouse ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /shipping/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "warehouse")
	if !ok {
		return
	}

	if err := h.warehouseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
