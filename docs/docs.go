// Package docs registers the Swagger 2.0 document served at /swagger/.
// It is maintained by hand; keep it in step with the @Router annotations
// on the handlers.
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
        "/events": {
            "get": {
                "description": "Upgrade to a WebSocket that receives media.created, media.updated and media.deleted events",
                "tags": ["events"],
                "summary": "Subscribe to media events",
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "400": {"description": "Not a WebSocket handshake"}
                }
            }
        },
        "/generate-media/{n}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Generate random media",
                "parameters": [
                    {"type": "integer", "description": "Number of entries to create", "name": "n", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Created media", "schema": {"$ref": "#/definitions/response.MediaListResponse"}},
                    "400": {"description": "Invalid count", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Report that the server is running and its uptime in seconds",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Server is running", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            }
        },
        "/media": {
            "get": {
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "List media",
                "parameters": [
                    {"type": "integer", "description": "Page number (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 10, max: 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Sort field: title, rating, status, type or _id", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "1 for ascending, -1 for descending", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Media list", "schema": {"$ref": "#/definitions/response.MediaListResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "404": {"description": "No media found", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            },
            "post": {
                "description": "Create a media entry; the identifier is assigned by the server",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Create media",
                "parameters": [
                    {"description": "Media to create", "name": "media", "in": "body", "required": true, "schema": {"$ref": "#/definitions/media.CreateMediaRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created media", "schema": {"$ref": "#/definitions/response.SingleMediaResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "409": {"description": "Title already exists", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            }
        },
        "/media/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Get media by ID",
                "parameters": [
                    {"type": "string", "description": "Media ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Media", "schema": {"$ref": "#/definitions/media.Media"}},
                    "400": {"description": "Invalid media ID", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "404": {"description": "Media not found", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Delete media",
                "parameters": [
                    {"type": "string", "description": "Media ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Media deleted", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "400": {"description": "Invalid media ID", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "404": {"description": "Media not found", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            },
            "patch": {
                "description": "Only the fields present in the body are changed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Update media",
                "parameters": [
                    {"type": "string", "description": "Media ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "media", "in": "body", "required": true, "schema": {"$ref": "#/definitions/media.UpdateMediaRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated media", "schema": {"$ref": "#/definitions/response.SingleMediaResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "404": {"description": "Media not found", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "409": {"description": "Title already exists", "schema": {"$ref": "#/definitions/response.GenericResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            }
        },
        "/rate-limit": {
            "get": {
                "description": "Remaining tokens for the calling client, per limited action",
                "produces": ["application/json"],
                "tags": ["rate-limit"],
                "summary": "Rate limit status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ratelimit.StatusResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.GenericResponse"}}
                }
            }
        }
    },
    "definitions": {
        "media.CreateMediaRequest": {
            "type": "object",
            "required": ["status", "title", "type"],
            "properties": {
                "description": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "rating": {"type": "number", "maximum": 5, "minimum": 0},
                "status": {"$ref": "#/definitions/media.MediaStatus"},
                "title": {"type": "string"},
                "type": {"$ref": "#/definitions/media.MediaType"}
            }
        },
        "media.Media": {
            "type": "object",
            "required": ["status", "title", "type"],
            "properties": {
                "_id": {"type": "string"},
                "description": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "rating": {"type": "number", "maximum": 5, "minimum": 0},
                "status": {"$ref": "#/definitions/media.MediaStatus"},
                "title": {"type": "string"},
                "type": {"$ref": "#/definitions/media.MediaType"}
            }
        },
        "media.MediaStatus": {
            "type": "string",
            "enum": ["Watching", "Watched", "Dropped", "OnHold", "PlanToWatch"]
        },
        "media.MediaType": {
            "type": "string",
            "enum": ["Movie", "Show"]
        },
        "media.UpdateMediaRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "rating": {"type": "number", "maximum": 5, "minimum": 0},
                "status": {"$ref": "#/definitions/media.MediaStatus"},
                "title": {"type": "string", "minLength": 1}
            }
        },
        "middleware.ActionStatus": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "remaining": {"type": "integer"},
                "window_seconds": {"type": "integer"}
            }
        },
        "ratelimit.StatusResponse": {
            "type": "object",
            "properties": {
                "actions": {"type": "object", "additionalProperties": {"$ref": "#/definitions/middleware.ActionStatus"}},
                "client": {"type": "string"},
                "enabled": {"type": "boolean"},
                "status": {"type": "string"}
            }
        },
        "response.GenericResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "response.MediaData": {
            "type": "object",
            "properties": {
                "media": {"$ref": "#/definitions/media.Media"}
            }
        },
        "response.MediaListResponse": {
            "type": "object",
            "properties": {
                "media": {"type": "array", "items": {"$ref": "#/definitions/media.Media"}},
                "results": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "response.SingleMediaResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/response.MediaData"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Media Service API",
	Description:      "Track movies and shows: CRUD over a MongoDB collection plus random demo data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
