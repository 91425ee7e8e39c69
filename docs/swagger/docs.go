// Package swagger provides API documentation
package swagger

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &struct {
	Version     string
	Host        string
	BasePath    string
	Schemes     []string
	Title       string
	Description string
}{
	Version:     "0.1.0",
	Host:        "",
	BasePath:    "/",
	Schemes:     []string{},
	Title:       "Pixie AI Service",
	Description: "AI productivity assistant backend for task and event management",
}

// Placeholder for swagger documentation
// Run 'swag init' to generate complete API documentation
