// Package swagger registers the OpenAPI document served at /swagger.
// Regenerate with `make swagger` after changing handler annotations.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "email": "support@asms.example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/booking": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "List bookings",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BookingListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Submit booking",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/BookingResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/booking/{bookingID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Get booking",
                "parameters": [
                    {"type": "string", "name": "bookingID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BookingResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/booking/selection": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Get selection draft",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SelectionView"}}
                }
            }
        },
        "/booking/selection/{offeringID}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Toggle offering",
                "parameters": [
                    {"type": "string", "name": "offeringID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SelectionView"}}
                }
            }
        },
        "/booking/selection/{offeringID}/quantity": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Change quantity",
                "parameters": [
                    {"type": "string", "name": "offeringID", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeQuantityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SelectionView"}}
                }
            }
        },
        "/booking/selection/{offeringID}/goods-categories": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Set goods categories",
                "parameters": [
                    {"type": "string", "name": "offeringID", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetGoodsCategoriesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SelectionView"}}
                }
            }
        },
        "/catalog/offerings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List offerings",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/OfferingResponse"}}}
                }
            }
        },
        "/catalog/goods-categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List goods categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/GoodsCategoryResponse"}}}
                }
            }
        },
        "/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "List notifications",
                "parameters": [
                    {"type": "boolean", "name": "unread", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NotificationListResponse"}}
                }
            },
            "delete": {
                "tags": ["notifications"],
                "summary": "Clear notifications",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/notifications/unread-count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Unread count",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UnreadCountResponse"}}
                }
            }
        },
        "/notifications/read-all": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark all read",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UnreadCountResponse"}}
                }
            }
        },
        "/notifications/{notificationID}/read": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark notification read",
                "parameters": [
                    {"type": "string", "name": "notificationID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UnreadCountResponse"}}
                }
            }
        },
        "/notifications/stream": {
            "get": {
                "tags": ["notifications"],
                "summary": "Notification stream",
                "responses": {
                    "101": {"description": "Switching Protocols"}
                }
            }
        }
    },
    "definitions": {
        "BookingLineResponse": {
            "type": "object",
            "properties": {
                "offering_id": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "integer"},
                "goods_category_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "BookingResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "order_code": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/BookingLineResponse"}},
                "total": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "BookingListResponse": {
            "type": "object",
            "properties": {
                "bookings": {"type": "array", "items": {"$ref": "#/definitions/BookingResponse"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "ChangeQuantityRequest": {
            "type": "object",
            "properties": {
                "delta": {"type": "integer"}
            }
        },
        "SetGoodsCategoriesRequest": {
            "type": "object",
            "properties": {
                "category_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "SelectionView": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/Selection"}},
                "total": {"type": "integer"}
            }
        },
        "Selection": {
            "type": "object",
            "properties": {
                "offering_id": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "integer"},
                "goods_category_ids": {"type": "array", "items": {"type": "string"}},
                "goods_category_names": {"type": "array", "items": {"type": "string"}}
            }
        },
        "OfferingResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "unit_price": {"type": "integer"},
                "preview_url": {"type": "string"}
            }
        },
        "GoodsCategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "fragile": {"type": "boolean"},
                "stackable": {"type": "boolean"}
            }
        },
        "NotificationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "order_code": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "created_at": {"type": "string"},
                "read": {"type": "boolean"}
            }
        },
        "NotificationListResponse": {
            "type": "object",
            "properties": {
                "notifications": {"type": "array", "items": {"$ref": "#/definitions/NotificationResponse"}},
                "unread_count": {"type": "integer"}
            }
        },
        "UnreadCountResponse": {
            "type": "object",
            "properties": {
                "unread_count": {"type": "integer"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "ASMS Booking API",
	Description:      "Self-storage booking and notification API built with DDD and Clean Architecture.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
