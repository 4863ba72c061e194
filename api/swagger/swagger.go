package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Storefront Hours API",
        "description": "Store schedule, bookable slots and timezone presentation",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Storefront", "description": "Open/closed status, next opening, greetings"},
        {"name": "Slots", "description": "Bookable slot grid and exports"},
        {"name": "Hours", "description": "Weekly hours and date overrides"},
        {"name": "Preferences", "description": "Per-device timezone toggle"},
        {"name": "Auth", "description": "Admin authentication"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/status": {
            "get": {
                "tags": ["Storefront"],
                "summary": "Current open/closed status and greeting",
                "parameters": [
                    {"name": "tz", "in": "query", "type": "string", "description": "Viewer IANA timezone"},
                    {"name": "lat", "in": "query", "type": "number"},
                    {"name": "lng", "in": "query", "type": "number"},
                    {"name": "device", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Status", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/days/{date}": {
            "get": {
                "tags": ["Storefront"],
                "summary": "Resolved open/closed decision for one date",
                "parameters": [
                    {"name": "date", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Resolved day", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/slots": {
            "get": {
                "tags": ["Slots"],
                "summary": "Bookable slots for a date",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true},
                    {"name": "tz", "in": "query", "type": "string"},
                    {"name": "selected", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Slots", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad date", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/slots/export": {
            "get": {
                "tags": ["Slots"],
                "summary": "Slot sheet download",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true},
                    {"name": "tz", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/api/v1/next-opening": {
            "get": {
                "tags": ["Storefront"],
                "summary": "Next open window and reminder instant",
                "responses": {
                    "200": {"description": "Next opening", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedule": {
            "get": {
                "tags": ["Hours"],
                "summary": "Current schedule snapshot",
                "responses": {
                    "200": {"description": "Schedule", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/preferences/{device}": {
            "get": {
                "tags": ["Preferences"],
                "summary": "Read the device timezone preference",
                "parameters": [
                    {"name": "device", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Preference", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Preferences"],
                "summary": "Update the device timezone preference",
                "parameters": [
                    {"name": "device", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Preference", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange the admin credential for a bearer token",
                "responses": {
                    "200": {"description": "Token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credential", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/hours": {
            "put": {
                "tags": ["Hours"],
                "summary": "Replace the weekly hours table",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Replaced"},
                    "422": {"description": "Invalid schedule", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/overrides": {
            "put": {
                "tags": ["Hours"],
                "summary": "Create or replace a date override",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Stored"},
                    "422": {"description": "Invalid override", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/overrides/{date}": {
            "delete": {
                "tags": ["Hours"],
                "summary": "Remove a date override",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "date", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "No override", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/refresh": {
            "post": {
                "tags": ["Hours"],
                "summary": "Rebuild the schedule snapshot from storage",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Refreshed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
