package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tutor Market",
        "description": "Server rendered tutoring marketplace: teacher listings, trial lesson booking and tutor matching requests.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Pages", "description": "Teacher listings and profiles"},
        {"name": "Booking", "description": "Trial lesson booking"},
        {"name": "Requests", "description": "Tutor matching requests"},
        {"name": "Ops", "description": "Health and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Ops"],
                "summary": "Liveness check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Ops"],
                "summary": "Readiness check, pings the database",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Ops"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Metrics in Prometheus text format"}
                }
            }
        },
        "/": {
            "get": {
                "tags": ["Pages"],
                "summary": "Landing page with goals and random teachers",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "HTML page"}
                }
            }
        },
        "/all/": {
            "get": {
                "tags": ["Pages"],
                "summary": "Every teacher in the requested order",
                "produces": ["text/html"],
                "parameters": [
                    {"name": "sort", "in": "query", "type": "string", "enum": ["random", "by_rating", "expensive_first", "cheap_first"]}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "302": {"description": "Redirect to /all/ for unknown query parameters"}
                }
            }
        },
        "/goals/{goal}/": {
            "get": {
                "tags": ["Pages"],
                "summary": "Teachers for one learning goal",
                "produces": ["text/html"],
                "parameters": [
                    {"name": "goal", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "404": {"description": "Unknown goal"}
                }
            }
        },
        "/profiles/{id}/": {
            "get": {
                "tags": ["Pages"],
                "summary": "Teacher profile with weekly availability",
                "produces": ["text/html"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "404": {"description": "Unknown teacher"}
                }
            }
        },
        "/booking/{id}/{day}/{time}/": {
            "get": {
                "tags": ["Booking"],
                "summary": "Booking form for an open slot",
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/TeacherID"},
                    {"$ref": "#/parameters/Day"},
                    {"$ref": "#/parameters/Hour"}
                ],
                "responses": {
                    "200": {"description": "HTML form"},
                    "404": {"description": "Slot not open"}
                }
            },
            "post": {
                "tags": ["Booking"],
                "summary": "Book an open slot",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/TeacherID"},
                    {"$ref": "#/parameters/Day"},
                    {"$ref": "#/parameters/Hour"},
                    {"name": "weekday", "in": "formData", "required": true, "type": "string"},
                    {"name": "time", "in": "formData", "required": true, "type": "string"},
                    {"name": "teacher", "in": "formData", "required": true, "type": "string"},
                    {"name": "client_name", "in": "formData", "required": true, "type": "string"},
                    {"name": "client_phone", "in": "formData", "required": true, "type": "string"},
                    {"$ref": "#/parameters/CSRFToken"}
                ],
                "responses": {
                    "200": {"description": "Form re-rendered with field errors"},
                    "302": {"description": "Redirect to /booking_done/?token="},
                    "400": {"description": "CSRF token missing"},
                    "404": {"description": "Slot not open or hidden fields altered"},
                    "409": {"description": "Slot already booked"}
                }
            }
        },
        "/booking_done/": {
            "get": {
                "tags": ["Booking"],
                "summary": "Booking confirmation",
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/ConfirmationToken"}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "404": {"description": "Unknown or expired token"}
                }
            }
        },
        "/request/": {
            "get": {
                "tags": ["Requests"],
                "summary": "Tutor matching request form",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "HTML form"}
                }
            },
            "post": {
                "tags": ["Requests"],
                "summary": "Submit a tutor matching request",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "parameters": [
                    {"name": "goal", "in": "formData", "required": true, "type": "string", "enum": ["travel", "study", "work", "relocate"]},
                    {"name": "time", "in": "formData", "required": true, "type": "string", "enum": ["1-2", "3-5", "5-7", "7-10"]},
                    {"name": "client_name", "in": "formData", "required": true, "type": "string"},
                    {"name": "client_phone", "in": "formData", "required": true, "type": "string"},
                    {"$ref": "#/parameters/CSRFToken"}
                ],
                "responses": {
                    "200": {"description": "Form re-rendered with field errors"},
                    "302": {"description": "Redirect to /request_done/?token="},
                    "400": {"description": "CSRF token missing"}
                }
            }
        },
        "/request_done/": {
            "get": {
                "tags": ["Requests"],
                "summary": "Request confirmation",
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/ConfirmationToken"}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "404": {"description": "Unknown or expired token"}
                }
            }
        }
    },
    "parameters": {
        "TeacherID": {"name": "id", "in": "path", "required": true, "type": "integer"},
        "Day": {"name": "day", "in": "path", "required": true, "type": "string", "description": "Day code or name, truncated to three letters"},
        "Hour": {"name": "time", "in": "path", "required": true, "type": "string", "description": "Hour without minutes, e.g. 14"},
        "ConfirmationToken": {"name": "token", "in": "query", "required": true, "type": "string"},
        "CSRFToken": {"name": "gorilla.csrf.Token", "in": "formData", "required": true, "type": "string"}
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
