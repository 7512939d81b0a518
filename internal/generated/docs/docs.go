// Package docs holds the Swagger 2.0 description of the HTTP API, in the form produced by
// swaggo/swag from the annotations of the http adapter. It is served under /swagger.
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
        "/delivery/airports": {
            "get": {
                "description": "Airports where pickup orders can be collected.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "delivery"
                ],
                "summary": "List pickup airports",
                "operationId": "GetAirports",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/servers.Airport"
                            }
                        }
                    }
                }
            }
        },
        "/delivery/allowed-quantities/{delivery_method}": {
            "get": {
                "description": "Box totals accepted for a delivery method.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "delivery"
                ],
                "summary": "Allowed box totals",
                "operationId": "GetAllowedQuantities",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "pickup",
                            "doorstep"
                        ],
                        "description": "Delivery method",
                        "name": "delivery_method",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/servers.AllowedQuantities"
                        }
                    },
                    "400": {
                        "description": "Unknown delivery method",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        },
        "/delivery/item-types": {
            "get": {
                "description": "Item types that can be ordered.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "delivery"
                ],
                "summary": "List mango varieties",
                "operationId": "GetItemTypes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/delivery/price": {
            "get": {
                "description": "Pickup prices depend on the item type, doorstep prices on the region.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "delivery"
                ],
                "summary": "Price of a box total",
                "operationId": "GetPrice",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Delivery method",
                        "name": "delivery_method",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Total number of boxes",
                        "name": "quantity",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Item type, required for pickup",
                        "name": "item_type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Region, required for doorstep",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/servers.Price"
                        }
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        },
        "/delivery/quote": {
            "post": {
                "description": "Applies the delivery rules and returns a verdict with a price. Invalid orders are reported in the body, not as errors.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "delivery"
                ],
                "summary": "Validate and price a proposed order",
                "operationId": "QuoteOrder",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Proposed order",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/servers.QuoteRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/servers.Quote"
                        }
                    },
                    "400": {
                        "description": "Malformed body",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        },
        "/delivery/regions": {
            "get": {
                "description": "Regions covered by doorstep delivery, in reference data order.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "delivery"
                ],
                "summary": "List doorstep regions",
                "operationId": "GetRegions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/delivery/validate-zipcode": {
            "get": {
                "description": "Reports whether the ZIP code belongs to the region.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "delivery"
                ],
                "summary": "Check a ZIP code against a region",
                "operationId": "ValidateZipcode",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ZIP code",
                        "name": "zipcode",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Region name",
                        "name": "region",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/servers.ZipcodeValidation"
                        }
                    },
                    "400": {
                        "description": "Missing parameters",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        },
        "/orders": {
            "get": {
                "description": "Unknown filters are ignored. Results are sorted newest first unless sort parameters say otherwise.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "List a customer's orders",
                "operationId": "GetOrders",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Customer id",
                        "name": "customer_id",
                        "in": "query",
                        "required": true,
                        "format": "uuid"
                    },
                    {
                        "type": "string",
                        "description": "Order status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Item type contained in the order",
                        "name": "item_type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Earliest creation date, YYYY-MM-DD or RFC 3339",
                        "name": "start_date",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Latest creation date, YYYY-MM-DD or RFC 3339",
                        "name": "end_date",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "created_at, total_amount or status",
                        "name": "sort_by",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Sort descending, default true",
                        "name": "sort_desc",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Orders to skip",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size, at most 100",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/servers.Order"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            },
            "post": {
                "description": "Validates the order with the delivery rules, charges the card and stores the order.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Pay for and place an order",
                "operationId": "PlaceOrder",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Order with payment card",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/servers.NewOrder"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/servers.Order"
                        }
                    },
                    "400": {
                        "description": "Order rejected",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    },
                    "402": {
                        "description": "Payment declined",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        },
        "/orders/backlog": {
            "get": {
                "description": "Orders paid for and not yet shipped.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Processing orders per delivery method",
                "operationId": "GetOrderBacklog",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/servers.OrderBacklog"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        },
        "/orders/{order_id}": {
            "delete": {
                "description": "Only the customer who placed the order can cancel it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Cancel a processing order",
                "operationId": "CancelOrder",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Order id",
                        "name": "order_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Customer id",
                        "name": "customer_id",
                        "in": "query",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/servers.Order"
                        }
                    },
                    "403": {
                        "description": "Not the owner",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    },
                    "409": {
                        "description": "Order is past processing",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        },
        "/orders/{order_id}/status": {
            "put": {
                "description": "processing to shipped or cancelled, shipped to delivered.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Change the status of an order",
                "operationId": "UpdateOrderStatus",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Order id",
                        "name": "order_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target status",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/servers.OrderStatusUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/servers.Order"
                        }
                    },
                    "400": {
                        "description": "Unknown status",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    },
                    "409": {
                        "description": "Transition not allowed",
                        "schema": {
                            "$ref": "#/definitions/servers.Error"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "servers.Airport": {
            "type": "object",
            "required": [
                "code",
                "name",
                "zip"
            ],
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "zip": {
                    "type": "string"
                }
            }
        },
        "servers.AllowedQuantities": {
            "type": "object",
            "required": [
                "delivery_method",
                "quantities"
            ],
            "properties": {
                "delivery_method": {
                    "type": "string"
                },
                "quantities": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "servers.BacklogEntry": {
            "type": "object",
            "required": [
                "count",
                "delivery_method"
            ],
            "properties": {
                "count": {
                    "type": "integer"
                },
                "delivery_method": {
                    "type": "string"
                }
            }
        },
        "servers.Error": {
            "type": "object",
            "required": [
                "code",
                "message"
            ],
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "servers.NewOrder": {
            "type": "object",
            "required": [
                "customer_id",
                "delivery_method",
                "items",
                "payment"
            ],
            "properties": {
                "airport_code": {
                    "type": "string"
                },
                "customer_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "delivery_address": {
                    "type": "string"
                },
                "delivery_method": {
                    "type": "string",
                    "enum": [
                        "pickup",
                        "doorstep"
                    ]
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/servers.QuoteItem"
                    }
                },
                "payment": {
                    "$ref": "#/definitions/servers.PaymentCard"
                },
                "region": {
                    "type": "string"
                },
                "zipcode": {
                    "type": "string"
                }
            }
        },
        "servers.Order": {
            "type": "object",
            "required": [
                "created_at",
                "delivery_method",
                "id",
                "items",
                "number",
                "status",
                "total_amount",
                "updated_at"
            ],
            "properties": {
                "airport_code": {
                    "type": "string"
                },
                "airport_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "customer_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "delivery_address": {
                    "type": "string"
                },
                "delivery_method": {
                    "type": "string"
                },
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/servers.OrderItem"
                    }
                },
                "number": {
                    "type": "string"
                },
                "payment_transaction_id": {
                    "type": "string"
                },
                "region": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "processing",
                        "shipped",
                        "delivered",
                        "cancelled"
                    ]
                },
                "total_amount": {
                    "type": "number"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "zipcode": {
                    "type": "string"
                }
            }
        },
        "servers.OrderBacklog": {
            "type": "object",
            "required": [
                "entries",
                "total"
            ],
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/servers.BacklogEntry"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "servers.OrderItem": {
            "type": "object",
            "required": [
                "item_type",
                "line_total",
                "quantity",
                "unit_price"
            ],
            "properties": {
                "item_type": {
                    "type": "string"
                },
                "line_total": {
                    "type": "number"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "number"
                }
            }
        },
        "servers.OrderStatusUpdate": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "processing",
                        "shipped",
                        "delivered",
                        "cancelled"
                    ]
                }
            }
        },
        "servers.PaymentCard": {
            "type": "object",
            "required": [
                "cvc",
                "exp_month",
                "exp_year",
                "number"
            ],
            "properties": {
                "cvc": {
                    "type": "string"
                },
                "exp_month": {
                    "type": "integer"
                },
                "exp_year": {
                    "type": "integer"
                },
                "holder": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                }
            }
        },
        "servers.Price": {
            "type": "object",
            "required": [
                "delivery_method",
                "price",
                "quantity"
            ],
            "properties": {
                "delivery_method": {
                    "type": "string"
                },
                "item_type": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "quantity": {
                    "type": "integer"
                },
                "region": {
                    "type": "string"
                }
            }
        },
        "servers.Quote": {
            "type": "object",
            "required": [
                "price",
                "total_boxes",
                "valid"
            ],
            "properties": {
                "message": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "total_boxes": {
                    "type": "integer"
                },
                "valid": {
                    "type": "boolean"
                }
            }
        },
        "servers.QuoteItem": {
            "type": "object",
            "required": [
                "item_type",
                "quantity"
            ],
            "properties": {
                "item_type": {
                    "type": "string",
                    "enum": [
                        "Sindhri",
                        "Langhra",
                        "Chaunsa",
                        "Ratol"
                    ]
                },
                "quantity": {
                    "type": "integer"
                }
            }
        },
        "servers.QuoteRequest": {
            "type": "object",
            "required": [
                "delivery_method",
                "items"
            ],
            "properties": {
                "airport_code": {
                    "type": "string"
                },
                "delivery_method": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/servers.QuoteItem"
                    }
                },
                "region": {
                    "type": "string"
                },
                "zipcode": {
                    "type": "string"
                }
            }
        },
        "servers.ZipcodeValidation": {
            "type": "object",
            "required": [
                "valid"
            ],
            "properties": {
                "message": {
                    "type": "string"
                },
                "valid": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Mangoshop API",
	Description:      "Mango catalog, delivery quotes and order placement.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
