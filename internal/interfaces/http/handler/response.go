package handler

import (
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/hacom/backend/internal/interfaces/http/dto"
)

// APIResponse represents a generic API response for OpenAPI documentation
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Message string         `json:"message" example:"Request validation failed"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// Named aliases keep the generated schema names readable
type (
	// ShippingFeeResponse is a shipping quote
	ShippingFeeResponse = shippingapp.ShippingFeeResponse
	// ProvinceResponse is one entry of the province table
	ProvinceResponse = shippingapp.ProvinceResponse
	// WarehouseResponse is a warehouse
	WarehouseResponse = shippingapp.WarehouseResponse
	// ZoneResponse is a shipping zone
	ZoneResponse = shippingapp.ZoneResponse
	// RateResponse is a rate band
	RateResponse = shippingapp.RateResponse
)
