// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/api/v1/catalog": {
            "get": {
                "description": "Materials, heater models, fuels and the accepted input ranges",
                "produces": ["application/json"],
                "tags": ["sizing"],
                "summary": "Catalog",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CatalogView"}}}
            }
        },
        "/api/v1/evaluate": {
            "post": {
                "description": "Computes heat loss, compares every catalog model and projects fuel use for the cheapest adequate one",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sizing"],
                "summary": "Evaluate heater models",
                "parameters": [{"description": "Form payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EvaluateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Evaluation"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/report/pdf": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/pdf"],
                "tags": ["reports"],
                "summary": "PDF report",
                "parameters": [{"description": "Form payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EvaluateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/api/v1/report/xlsx": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["reports"],
                "summary": "XLSX export",
                "parameters": [{"description": "Form payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EvaluateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/ws": {
            "get": {
                "description": "Send a form payload per text message, receive evaluation or error envelopes. The first message is the catalog.",
                "tags": ["sizing"],
                "summary": "Live evaluation",
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        }
    },
    "definitions": {
        "handlers.EvaluateRequest": {
            "type": "object",
            "required": ["area_m2", "height_m", "material", "wall_thickness_cm", "indoor_temp_c", "outdoor_temp_c", "fuel", "wood_price_per_m3", "fill_percent", "efficiency_percent", "burn_hours", "working_day_hours"],
            "properties": {
                "area_m2": {"type": "number", "minimum": 20, "maximum": 500, "example": 100},
                "height_m": {"type": "number", "minimum": 2, "maximum": 5, "example": 3},
                "material": {"type": "string", "example": "кирпич"},
                "wall_thickness_cm": {"type": "number", "minimum": 10, "maximum": 100, "example": 50},
                "windows_m2": {"type": "number", "minimum": 0, "maximum": 50, "example": 10},
                "doors_m2": {"type": "number", "minimum": 0, "maximum": 10, "example": 2},
                "roof_insulated": {"type": "boolean", "example": true},
                "indoor_temp_c": {"type": "number", "minimum": -50, "maximum": 30, "example": 20},
                "outdoor_temp_c": {"type": "number", "minimum": -50, "maximum": 30, "example": -15},
                "fuel": {"type": "string", "example": "берёза"},
                "wood_price_per_m3": {"type": "number", "minimum": 1000, "maximum": 50000, "example": 3500},
                "fill_percent": {"type": "number", "minimum": 50, "maximum": 100, "example": 85},
                "efficiency_percent": {"type": "number", "minimum": 70, "maximum": 95, "example": 88},
                "burn_hours": {"type": "integer", "enum": [2, 4, 6, 8, 10], "example": 6},
                "working_day_hours": {"type": "integer", "enum": [6, 8, 10, 12, 14, 16], "example": 10}
            }
        },
        "models.CatalogView": {
            "type": "object",
            "properties": {
                "materials": {"type": "array", "items": {"type": "object"}},
                "models": {"type": "array", "items": {"type": "object"}},
                "fuels": {"type": "array", "items": {"type": "object"}},
                "ranges": {"type": "object"}
            }
        },
        "models.Evaluation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "evaluated_at": {"type": "string"},
                "building": {"type": "object"},
                "fuel": {"type": "object"},
                "result": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Heater sizing API",
	Description:      "Heat loss estimate, heater model comparison and fuel cost projection.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
