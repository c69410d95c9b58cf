package models

// ErrorResponse defines the API error response format
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
