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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/guest": {
            "post": {
                "tags": ["auth"],
                "summary": "Issue a guest player token",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/weeks": {
            "get": {
                "tags": ["catalog"],
                "summary": "List the weeks available for weekly practice",
                "responses": {"200": {"description": "OK"}, "503": {"description": "No question bank"}}
            }
        },
        "/session": {
            "get": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Current question snapshot",
                "responses": {"200": {"description": "OK"}, "404": {"description": "No active session"}}
            },
            "post": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Start a quiz session",
                "parameters": [{
                    "in": "body", "name": "body", "required": true,
                    "schema": {"type": "object", "properties": {
                        "mode": {"type": "string", "enum": ["full", "weekly"]},
                        "week": {"type": "integer"}
                    }}
                }],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Discard the current session",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/session/answer": {
            "post": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Select an option for the current question",
                "parameters": [{
                    "in": "body", "name": "body", "required": true,
                    "schema": {"type": "object", "properties": {"option": {"type": "integer"}}}
                }],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Session finished"}}
            }
        },
        "/session/next": {
            "post": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Advance, finishing on the last question",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/session/previous": {
            "post": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Go back one question",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Session finished"}}
            }
        },
        "/session/result": {
            "get": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Score, percentage and grade",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/session/review": {
            "get": {
                "tags": ["session"],
                "security": [{"BearerAuth": []}],
                "summary": "Per-question review",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ai-quiz": {
            "post": {
                "tags": ["ai-quiz"],
                "security": [{"BearerAuth": []}],
                "summary": "Generate practice questions with Gemini",
                "responses": {"201": {"description": "Created"}, "503": {"description": "Generator not configured"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Chronos Quiz API",
	Description:      "Weekly and full-series multiple-choice practice sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
