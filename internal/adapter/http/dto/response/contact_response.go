package response

import "coatingshop/internal/usecase"

type ContactSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ContactValidationResponse struct {
	Message string               `json:"message"`
	Errors  []usecase.FieldError `json:"errors"`
}

// ContactErrorResponse carries Error only outside production.
type ContactErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
