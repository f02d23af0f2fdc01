// Package api holds the OpenAPI document served at /docs. It follows the
// swag annotations of the controllers.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/root.Response"}}
                }
            },
            "delete": {
                "description": "Permanently deletes all records",
                "tags": ["General"],
                "produces": ["application/json"],
                "summary": "Delete everything",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Confirmation to delete all records. Must have the value 'yes-please-delete-everything'",
                        "name": "confirm",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/expenses": {
            "get": {
                "description": "Returns all records in the order they were created",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Get records",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Record"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            },
            "post": {
                "description": "Creates a new record. The ID and date are set by the server.",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Create record",
                "parameters": [
                    {
                        "description": "Record",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.RecordCreate"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/expenses/{id}": {
            "get": {
                "description": "Returns a specific record",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Get record",
                "parameters": [
                    {"type": "integer", "description": "ID of the record", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            },
            "put": {
                "description": "Updates the fields of a record that are set in the request body. Fields that are not set are kept.",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Update record",
                "parameters": [
                    {"type": "integer", "description": "ID of the record", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to update",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.RecordUpdate"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            },
            "delete": {
                "description": "Deletes a record",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Delete record",
                "parameters": [
                    {"type": "integer", "description": "ID of the record", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/export": {
            "get": {
                "description": "Exports all records as a JSON file that can be imported again",
                "produces": ["application/json"],
                "tags": ["Import & Export"],
                "summary": "Export",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ExportFile"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/import": {
            "post": {
                "description": "Imports a file created by the export. Records that already exist are skipped. If any record is invalid, nothing is imported.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Import & Export"],
                "summary": "Import",
                "parameters": [
                    {"type": "file", "description": "File to import", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ImportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/summary": {
            "get": {
                "description": "Returns the balance and statistics for the current month. If any filter is set, the number and sum of the matching records are included.",
                "produces": ["application/json"],
                "tags": ["Summary"],
                "summary": "Get summary",
                "parameters": [
                    {"type": "string", "description": "Search for this text in the description", "name": "q", "in": "query"},
                    {"type": "string", "description": "Filter by category. 'all' matches all categories", "name": "category", "in": "query"},
                    {"type": "string", "description": "Time window: all, today or week", "name": "window", "in": "query"},
                    {"type": "string", "description": "IANA time zone, e.g. Asia/Tokyo. Defaults to the server's time zone", "name": "tz", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SummaryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API and the Go release it was built with",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/version.Response"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.ExportFile": {
            "type": "object",
            "properties": {
                "creationTime": {"type": "string", "example": "2024-05-01T12:30:00Z"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Record"}},
                "version": {"type": "string", "example": "1.4.0"}
            }
        },
        "controllers.FilteredTotal": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 4},
                "total": {"type": "integer", "example": 6800}
            }
        },
        "controllers.ImportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "created": {"type": "integer", "example": 12},
                        "skipped": {"type": "integer", "example": 3}
                    }
                }
            }
        },
        "controllers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "支出を削除しました"}
            }
        },
        "controllers.SummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "balance": {"$ref": "#/definitions/stats.Summary"},
                        "filtered": {"$ref": "#/definitions/controllers.FilteredTotal"},
                        "monthly": {"$ref": "#/definitions/stats.MonthlyStats"}
                    }
                }
            }
        },
        "httputil.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "amount"},
                "message": {"type": "string", "example": "金額は1円以上である必要があります"}
            }
        },
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "無効なIDです"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/httputil.FieldError"}}
            }
        },
        "models.Record": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "example": 1200},
                "category": {"type": "string", "example": "食費"},
                "date": {"type": "string", "example": "2024-05-01T12:30:00Z"},
                "description": {"type": "string", "example": "ランチ"},
                "id": {"type": "integer", "example": 17},
                "type": {"type": "string", "enum": ["expense", "income"], "example": "expense"}
            }
        },
        "models.RecordCreate": {
            "type": "object",
            "required": ["amount", "category", "description", "type"],
            "properties": {
                "amount": {"type": "integer", "minimum": 1, "example": 1200},
                "category": {"type": "string", "example": "食費"},
                "description": {"type": "string", "example": "ランチ"},
                "type": {"type": "string", "enum": ["expense", "income"], "example": "expense"}
            }
        },
        "models.RecordUpdate": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "minimum": 1, "example": 1500},
                "category": {"type": "string", "example": "娯楽"},
                "description": {"type": "string", "example": "ディナー"},
                "type": {"type": "string", "enum": ["expense", "income"], "example": "income"}
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "type": "object",
                    "additionalProperties": {"type": "string"}
                }
            }
        },
        "stats.CategoryTotal": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "example": 32000},
                "category": {"type": "string", "example": "食費"},
                "emoji": {"type": "string", "example": "🍽️"},
                "percentage": {"type": "string", "example": "45.71"}
            }
        },
        "stats.MonthlyStats": {
            "type": "object",
            "properties": {
                "averageDaily": {"type": "string", "example": "4666.67"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/stats.CategoryTotal"}},
                "count": {"type": "integer", "example": 23},
                "max": {"type": "integer", "example": 12000},
                "month": {"type": "string", "example": "2024-05"},
                "total": {"type": "integer", "example": 70000}
            }
        },
        "stats.Summary": {
            "type": "object",
            "properties": {
                "expense": {"type": "integer", "example": 70000},
                "income": {"type": "integer", "example": 250000},
                "month": {"type": "string", "example": "2024-05"},
                "net": {"type": "integer", "example": 180000}
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "version": {"type": "string", "example": "1.1.0"},
                        "goVersion": {"type": "string", "example": "go1.25.5"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
