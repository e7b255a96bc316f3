package http

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPIDocument []byte

// SwaggerInfo describes the API served under /swagger.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Rate Calculator API",
	Description:      "Validation of shipping rate form data and billable weight calculation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(openAPIDocument),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
