package responses

// ServiceStatus is the root endpoint body.
type ServiceStatus struct {
	Service string `json:"service" example:"pixie-ai"`
	Status  string `json:"status" example:"running"`
}

// Health is the health endpoint body.
type Health struct {
	Status      string `json:"status" example:"healthy"`
	Version     string `json:"version" example:"0.1.0"`
	Environment string `json:"environment" example:"development"`
}

// Dependency is one collaborator's reachability inside a readiness report.
type Dependency struct {
	Name      string  `json:"name" example:"redis"`
	Status    string  `json:"status" example:"up"`
	LatencyMS float64 `json:"latency_ms" example:"3.2"`
}

// Readiness is the readiness endpoint body.
type Readiness struct {
	Status       string       `json:"status" example:"ready"`
	Dependencies []Dependency `json:"dependencies"`
}

// ErrorResponse is the uniform failure body for any uncaught fault. Field
// names and values are fixed; no internal detail is ever included.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"internal_error"`
	Message string `json:"message" example:"An unexpected error occurred. Please try again."`
}

// NewInternalError returns the fixed body for unexpected faults.
func NewInternalError() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   "internal_error",
		Message: "An unexpected error occurred. Please try again.",
	}
}
