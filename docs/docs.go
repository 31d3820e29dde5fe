// Package docs registers the OpenAPI description of the JSON API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT License",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/countries": {
            "get": {
                "description": "Search and paginate the country collection. Responds 202 while the collection is loading.",
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "List countries",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the common name", "name": "q", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"enum": [8, 12, 16, 24], "type": "integer", "description": "Page size", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/countries/{id}": {
            "get": {
                "description": "Get detailed information about a country by numeric, alpha-2 or alpha-3 code",
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Get country",
                "parameters": [
                    {"type": "string", "description": "Country code", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.Response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/themes": {
            "get": {
                "description": "Get the available themes, their styles and the caller's current theme",
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "List themes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/theme": {
            "put": {
                "description": "Select the caller's theme for the rest of the session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "Set theme",
                "parameters": [
                    {"description": "Theme", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/theme.SetThemeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Check if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorInfo": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"}
            }
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.ErrorInfo"},
                "message": {"type": "string"},
                "meta": {},
                "success": {"type": "boolean"}
            }
        },
        "theme.SetThemeRequest": {
            "type": "object",
            "required": ["theme"],
            "properties": {
                "theme": {"type": "string", "enum": ["light", "dark", "green", "blue"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Atlas API",
	Description:      "Country explorer: searchable, paginated country list, country profiles and visitor themes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
