// Package docs registers the swagger specification served at /swagger.
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
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List unsettled orders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/OrderSummary"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place a new shipment order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller identity, becomes the order's customer",
                        "name": "X-Party-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Order parameters",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/PlaceOrderRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/PlaceOrderResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/Error"}
                    }
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get one order",
                "parameters": [
                    {
                        "type": "integer",
                        "name": "orderId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/OrderDetails"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/Error"}
                    }
                }
            }
        },
        "/orders/{orderId}/accept": {
            "post": {
                "tags": ["orders"],
                "summary": "Accept an order as its provider, staking a bond",
                "parameters": [
                    {
                        "type": "string",
                        "name": "X-Party-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "name": "orderId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "402": {
                        "description": "Payment Required",
                        "schema": {"$ref": "#/definitions/Error"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/Error"}
                    }
                }
            }
        },
        "/orders/{orderId}/arrival": {
            "post": {
                "tags": ["orders"],
                "summary": "Confirm shipment arrival as the order's customer",
                "parameters": [
                    {
                        "type": "string",
                        "name": "X-Party-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "name": "orderId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {
                        "description": "Forbidden",
                        "schema": {"$ref": "#/definitions/Error"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/Error"}
                    }
                }
            }
        },
        "/orders/{orderId}/payout": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["orders"],
                "summary": "Report the measured outcome and settle the order",
                "parameters": [
                    {
                        "type": "string",
                        "name": "X-Party-ID",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "name": "orderId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Measured outcome",
                        "name": "outcome",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/PayoutRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {
                        "description": "Forbidden",
                        "schema": {"$ref": "#/definitions/Error"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/Error"}
                    }
                }
            }
        },
        "/withdrawals": {
            "post": {
                "produces": ["application/json"],
                "tags": ["escrow"],
                "summary": "Withdraw the caller's full escrow balance",
                "parameters": [
                    {
                        "type": "string",
                        "name": "X-Party-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/WithdrawResponse"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/Error"}
                    }
                }
            }
        },
        "/balances/{party}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["escrow"],
                "summary": "Read a party's withdrawable balance",
                "parameters": [
                    {
                        "type": "string",
                        "name": "party",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/BalanceResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "PlaceOrderRequest": {
            "type": "object",
            "properties": {
                "oracle": {"type": "string", "format": "uuid"},
                "temperatureLimit": {"type": "integer"},
                "deadline": {"type": "string", "format": "date-time"},
                "paymentAmount": {"type": "string"},
                "temperaturePenaltyRate": {"type": "string"},
                "overtimePenaltyRate": {"type": "string"}
            }
        },
        "PlaceOrderResponse": {
            "type": "object",
            "properties": {
                "orderId": {"type": "integer"}
            }
        },
        "PayoutRequest": {
            "type": "object",
            "properties": {
                "reportedOverages": {"type": "integer"}
            }
        },
        "WithdrawResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"}
            }
        },
        "OrderSummary": {
            "type": "object",
            "properties": {
                "orderId": {"type": "integer"},
                "customer": {"type": "string", "format": "uuid"},
                "provider": {"type": "string", "format": "uuid"},
                "oracle": {"type": "string", "format": "uuid"},
                "status": {"type": "string"},
                "deadline": {"type": "string", "format": "date-time"},
                "paymentAmount": {"type": "string"},
                "stakeAmount": {"type": "string"}
            }
        },
        "OrderDetails": {
            "type": "object",
            "properties": {
                "orderId": {"type": "integer"},
                "customer": {"type": "string", "format": "uuid"},
                "provider": {"type": "string", "format": "uuid"},
                "oracle": {"type": "string", "format": "uuid"},
                "temperatureLimit": {"type": "integer"},
                "deadline": {"type": "string", "format": "date-time"},
                "paymentAmount": {"type": "string"},
                "temperaturePenaltyRate": {"type": "string"},
                "overtimePenaltyRate": {"type": "string"},
                "stakeAmount": {"type": "string"},
                "status": {"type": "string"},
                "arrivalAt": {"type": "string", "format": "date-time"}
            }
        },
        "BalanceResponse": {
            "type": "object",
            "properties": {
                "party": {"type": "string", "format": "uuid"},
                "balance": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Coldchain Escrow API",
	Description:      "Escrowed shipment orders with temperature and deadline penalties.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
