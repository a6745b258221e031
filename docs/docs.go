// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/rooms": {
            "get": {"tags": ["rooms"], "summary": "List rooms", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["rooms"], "summary": "Create a room", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/rooms/available": {
            "get": {"tags": ["rooms"], "summary": "Rooms that can take a new booking", "responses": {"200": {"description": "OK"}}}
        },
        "/rooms/{id}": {
            "delete": {"tags": ["rooms"], "summary": "Delete a room without active bookings", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/bookings": {
            "get": {"tags": ["bookings"], "summary": "List bookings", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bookings"], "summary": "Create an upcoming booking", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/bookings/{id}/checkin": {
            "post": {"tags": ["bookings"], "summary": "Check a guest in", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/bookings/{id}/checkout": {
            "post": {"tags": ["bookings"], "summary": "Check a guest out and settle the bill", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/guests": {
            "get": {"tags": ["guests"], "summary": "Guest directory derived from bookings", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses": {
            "get": {"tags": ["ledger"], "summary": "List expenses", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/daily": {
            "get": {"tags": ["reports"], "summary": "Daily financial reports for a date range", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/reports/monthly": {
            "get": {"tags": ["reports"], "summary": "Monthly financial reports with occupancy", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Front Desk API",
	Description:      "Rooms, bookings, billing and financial reports for a hotel front desk.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
