// Package docs holds the OpenAPI description served at /swagger.
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
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/equipment": {
            "get": {
                "produces": ["application/json"],
                "tags": ["troubleshooting"],
                "summary": "List equipment types",
                "responses": {
                    "200": {"description": "equipment", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}}
                }
            }
        },
        "/search": {
            "post": {
                "description": "Sends the query to the text-completion service and returns the reply split into sections.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["troubleshooting"],
                "summary": "Troubleshoot equipment",
                "parameters": [
                    {"description": "Troubleshooting query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/vcra/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Analyze control room incident",
                "parameters": [
                    {"description": "Control room logs", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.IncidentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.IncidentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/safety/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Assess job task safety",
                "parameters": [
                    {"description": "Job task", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SafetyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SafetyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/corrosion/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Assess corrosion risk",
                "parameters": [
                    {"description": "Process conditions", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CorrosionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CorrosionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.SearchRequest": {
            "type": "object",
            "required": ["equipment", "problem"],
            "properties": {
                "equipment": {"type": "string", "example": "Control Valve"},
                "problem": {"type": "string", "example": "Valve not responding to 4-20mA signal"},
                "error_code": {"type": "string", "example": "E-104"}
            }
        },
        "models.ResponseSections": {
            "type": "object",
            "properties": {
                "analysis": {"type": "string"},
                "causes": {"type": "array", "items": {"type": "string"}},
                "steps": {"type": "array", "items": {"type": "string"}},
                "safety_warnings": {"type": "array", "items": {"type": "string"}},
                "equipment_notes": {"type": "string"}
            }
        },
        "models.SearchResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "equipment": {"type": "string"},
                "response": {"$ref": "#/definitions/models.ResponseSections"}
            }
        },
        "models.IncidentRequest": {
            "type": "object",
            "required": ["logs"],
            "properties": {"logs": {"type": "string"}}
        },
        "models.IncidentDetails": {
            "type": "object",
            "properties": {
                "rootCause": {"type": "string"},
                "riskLevel": {"type": "string"},
                "confidence": {"type": "number"},
                "actions": {"type": "array", "items": {"type": "string"}},
                "timeline": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.IncidentResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "response": {"$ref": "#/definitions/models.IncidentDetails"}
            }
        },
        "models.SafetyRequest": {
            "type": "object",
            "required": ["task"],
            "properties": {"task": {"type": "string"}}
        },
        "models.Hazard": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "severity": {"type": "string"},
                "probability": {"type": "string"}
            }
        },
        "models.SafetyDetails": {
            "type": "object",
            "properties": {
                "hazardLevel": {"type": "string"},
                "hazards": {"type": "array", "items": {"$ref": "#/definitions/models.Hazard"}},
                "mitigations": {"type": "array", "items": {"type": "string"}},
                "standards": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.SafetyResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "response": {"$ref": "#/definitions/models.SafetyDetails"}
            }
        },
        "models.CorrosionRequest": {
            "type": "object",
            "required": ["material", "temperature", "ph", "pressure", "velocity"],
            "properties": {
                "material": {"type": "string"},
                "temperature": {"type": "number"},
                "ph": {"type": "number"},
                "pressure": {"type": "number"},
                "velocity": {"type": "number"}
            }
        },
        "models.CorrosionDetails": {
            "type": "object",
            "properties": {
                "riskLevel": {"type": "string"},
                "corrosionRate": {"type": "number"},
                "mechanisms": {"type": "array", "items": {"type": "string"}},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "estimatedLife": {"type": "string"}
            }
        },
        "models.CorrosionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "response": {"$ref": "#/definitions/models.CorrosionDetails"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Process Control Troubleshooting API",
	Description:      "Relays troubleshooting queries to a text-completion service and returns sectioned answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
