// Package docs holds the OpenAPI document served at /swagger/doc.json.
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
                "tags": ["Health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/.well-known/jwks.json": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Token verification keys",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.JWKS"}}
                }
            }
        },
        "/api/v1/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Registration form", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RegisterUserInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/api/v1/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "List active accounts",
                "parameters": [
                    {"type": "string", "description": "Owner reference ID", "name": "referenceid", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "400": {"description": "Missing reference ID.", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "404": {"description": "No accounts found with the provided reference ID.", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/api/v1/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get a user profile",
                "parameters": [
                    {"type": "string", "description": "User ObjectID (hex)", "name": "id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/api/v1/activities": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Activities"],
                "summary": "List logged activities",
                "parameters": [
                    {"type": "string", "description": "Owner reference ID", "name": "referenceid", "in": "query", "required": true},
                    {"type": "integer", "description": "Maximum rows (default 50, max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Activities"],
                "summary": "Log an activity",
                "parameters": [
                    {"description": "Activity", "name": "activity", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ActivityPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/api/v1/reports/pending-so": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Pending sales orders",
                "parameters": [
                    {"type": "string", "description": "Owner reference ID", "name": "referenceid", "in": "query", "required": true},
                    {"type": "string", "description": "Inclusive lower date bound", "name": "start", "in": "query"},
                    {"type": "string", "description": "Inclusive upper date bound", "name": "end", "in": "query"},
                    {"type": "integer", "description": "10, 25, 50 or 100", "name": "pageSize", "in": "query"},
                    {"type": "integer", "description": "1-based page, clamped", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/api/v1/reports/pending-so/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Reports"],
                "summary": "Export pending sales orders",
                "parameters": [
                    {"type": "string", "description": "Owner reference ID", "name": "referenceid", "in": "query", "required": true},
                    {"type": "string", "description": "Inclusive lower date bound", "name": "start", "in": "query"},
                    {"type": "string", "description": "Inclusive upper date bound", "name": "end", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "handlers.HealthCheck": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "latency": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handlers.HealthCheck"}}
            }
        },
        "utils.JWK": {
            "type": "object",
            "properties": {
                "kty": {"type": "string"},
                "use": {"type": "string"},
                "kid": {"type": "string"},
                "alg": {"type": "string"},
                "n": {"type": "string"},
                "e": {"type": "string"}
            }
        },
        "utils.JWKS": {
            "type": "object",
            "properties": {
                "keys": {"type": "array", "items": {"$ref": "#/definitions/utils.JWK"}}
            }
        },
        "models.RegisterUserInput": {
            "type": "object",
            "properties": {
                "Email": {"type": "string"},
                "Password": {"type": "string"},
                "Role": {"type": "string"},
                "Department": {"type": "string"},
                "Firstname": {"type": "string"},
                "Lastname": {"type": "string"},
                "ReferenceID": {"type": "string"}
            }
        },
        "models.LoginInput": {
            "type": "object",
            "properties": {
                "Email": {"type": "string"},
                "Password": {"type": "string"},
                "Department": {"type": "string"}
            }
        },
        "models.ActivityPayload": {
            "type": "object",
            "properties": {
                "referenceid": {"type": "string"},
                "manager": {"type": "string"},
                "tsm": {"type": "string"},
                "activitystatus": {"type": "string"},
                "activityremarks": {"type": "string"},
                "startdate": {"type": "string"},
                "enddate": {"type": "string"},
                "selfieUrl": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fluxx Sales API",
	Description:      "Activity logging, account lookup and pending sales order reports for field sales agents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
