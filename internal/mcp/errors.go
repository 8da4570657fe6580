package mcp

import (
	"errors"
	"fmt"

	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/repository"
)

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var errAdminRequired = errors.New("admin session required")

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, errAdminRequired):
		return &APIError{Code: "UNAUTHORIZED", Message: "admin session required", RecoveryHint: "Log in via POST /api/admin/login and send the token as a bearer header"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects for valid IDs"}
	case errors.Is(err, presentation.ErrPresentationNotFound):
		return &APIError{Code: "PRESENTATION_NOT_FOUND", Message: "presentation not found", RecoveryHint: "Call list_presentations for valid IDs"}
	case errors.Is(err, presentation.ErrSlideNotFound):
		return &APIError{Code: "SLIDE_NOT_FOUND", Message: "slide not found"}
	case errors.Is(err, project.ErrIDMismatch), errors.Is(err, presentation.ErrIDMismatch):
		return &APIError{Code: "ID_MISMATCH", Message: "id in payload does not match target id"}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, presentation.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "title, description, category and status are required"}
	case errors.Is(err, repository.ErrStorage):
		return &APIError{Code: "STORAGE_UNAVAILABLE", Message: "storage unavailable", RecoveryHint: "Retry later; the change was not saved"}
	default:
		return &APIError{Code: "INTERNAL", Message: "internal error"}
	}
}
