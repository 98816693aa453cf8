package server

import (
	"github.com/faktura/invoice-creator/internal/validate"
)

// ValidationResponse carries the outcome of the validation gate. Errors
// maps field paths to messages, one entry per invalid field.
type ValidationResponse struct {
	Valid  bool            `json:"valid"`
	Errors validate.Report `json:"errors,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
