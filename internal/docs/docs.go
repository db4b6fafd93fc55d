// Package docs registers the OpenAPI document served under /swagger.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in and receive a bearer token",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/settings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["settings"],
                "summary": "Get the caller's settings",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Settings"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["settings"],
                "summary": "Update the caller's settings",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateSettingsRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Settings"}}}
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "List transactions, newest first",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Transaction"}}}
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Get a transaction",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Transaction"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Update a transaction",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateTransactionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Transaction"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.OKResponse"}}}
            }
        },
        "/debts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["debts"],
                "summary": "List debts with running balances",
                "parameters": [
                    {"type": "string", "name": "employee", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["debts"],
                "summary": "Record an advance or repayment",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateDebtRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Debt"}}}
            }
        },
        "/debts/balances": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["debts"],
                "summary": "Outstanding balance per employee",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/debts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["debts"],
                "summary": "Get a debt entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Debt"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["debts"],
                "summary": "Update a debt entry",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateDebtRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Debt"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["debts"],
                "summary": "Delete a debt entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.OKResponse"}}}
            }
        },
        "/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["summary"],
                "summary": "Monthly totals against the expense cap",
                "parameters": [{"type": "string", "name": "month", "in": "query", "description": "YYYY-MM"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/backup/json": {
            "get": {
                "security": [{"AdminToken": []}],
                "tags": ["admin"],
                "summary": "Export every table as JSON",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/backup/sqlite": {
            "get": {
                "security": [{"AdminToken": []}],
                "tags": ["admin"],
                "summary": "Download a consistent SQLite snapshot",
                "produces": ["application/octet-stream"],
                "responses": {"200": {"description": "OK"}, "501": {"description": "Not Implemented"}}
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "handlers.OKResponse": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}}
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "company_name": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "email": {"type": "string"},
                        "company_name": {"type": "string"}
                    }
                }
            }
        },
        "handlers.UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "tax_income": {"type": "number"},
                "tax_expense": {"type": "number"},
                "monthly_expense_cap": {"type": "number"}
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["date", "type", "category", "base"],
            "properties": {
                "date": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "category": {"type": "string"},
                "base": {"type": "number", "minimum": 0, "maximum": 1000000000000},
                "employee": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "handlers.UpdateTransactionRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "category": {"type": "string"},
                "base": {"type": "number", "minimum": 0, "maximum": 1000000000000},
                "employee": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "handlers.CreateDebtRequest": {
            "type": "object",
            "required": ["date", "employee", "kind", "amount"],
            "properties": {
                "date": {"type": "string"},
                "employee": {"type": "string"},
                "kind": {"type": "string", "enum": ["advance", "repay"]},
                "amount": {"type": "number", "exclusiveMinimum": true, "minimum": 0, "maximum": 1000000000000},
                "notes": {"type": "string"}
            }
        },
        "handlers.UpdateDebtRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "employee": {"type": "string"},
                "kind": {"type": "string", "enum": ["advance", "repay"]},
                "amount": {"type": "number", "exclusiveMinimum": true, "minimum": 0, "maximum": 1000000000000},
                "notes": {"type": "string"}
            }
        },
        "models.Settings": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "currency": {"type": "string"},
                "tax_income": {"type": "number"},
                "tax_expense": {"type": "number"},
                "monthly_expense_cap": {"type": "number"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "type": {"type": "string"},
                "category": {"type": "string"},
                "base": {"type": "number"},
                "tax": {"type": "number"},
                "total": {"type": "number"},
                "employee": {"type": "string"},
                "notes": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.Debt": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "employee": {"type": "string"},
                "kind": {"type": "string"},
                "amount": {"type": "number"},
                "delta": {"type": "number"},
                "notes": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "AdminToken": {
            "type": "apiKey",
            "name": "X-Admin-Token",
            "in": "header"
        },
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookkeeper API",
	Description:      "Bookkeeper records a small company's income and expenses with derived tax, tracks employee advances and repayments, and reports monthly totals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
