// Package docs holds the generated OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "HACOM Platform Team",
            "url": "https://hacom.vn"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/shipping/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shipping"],
                "summary": "Calculate a shipping fee",
                "parameters": [
                    {
                        "description": "Destination and order amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CalculateShippingFeeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ShippingFeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shipping/provinces": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shipping"],
                "summary": "List provinces",
                "parameters": [
                    {"type": "string", "description": "Accent-insensitive name filter", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/shipping/warehouses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["warehouses"],
                "summary": "List warehouses",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"},
                    {"type": "boolean", "name": "is_active", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["warehouses"],
                "summary": "Create a warehouse",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shipping/zones": {
            "get": {
                "produces": ["application/json"],
                "tags": ["zones"],
                "summary": "List shipping zones",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "warehouse_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["zones"],
                "summary": "Create a shipping zone",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shipping/zones/{id}/rates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "List the rate bands of a zone",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "handler.CalculateShippingFeeRequest": {
            "type": "object",
            "required": ["destination_province_id"],
            "properties": {
                "destination_province_id": {"type": "integer", "example": 1},
                "destination_district_id": {"type": "integer"},
                "order_amount": {"type": "number", "example": 250000}
            }
        },
        "handler.ShippingFeeResponse": {
            "type": "object",
            "properties": {
                "shipping_fee": {"type": "integer"},
                "distance": {"type": "number"},
                "zone_name": {"type": "string"},
                "warehouse_name": {"type": "string"},
                "warehouse_address": {"type": "string"},
                "is_free_shipping": {"type": "boolean"},
                "free_shipping_threshold": {"type": "number"},
                "rate_details": {
                    "type": "object",
                    "properties": {
                        "base_rate": {"type": "number"},
                        "per_km_rate": {"type": "number"},
                        "min_distance": {"type": "number"},
                        "max_distance": {"type": "number"}
                    }
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "request_id": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "HACOM Shipping API",
	Description:      "Shipping fee quotes and the warehouse, zone and rate tables behind them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
