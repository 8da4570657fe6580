package transport

import (
	"errors"
	"net/http"

	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/repository"
)

// writeServiceError maps domain errors to HTTP responses. Unknown errors are
// logged and reported without detail.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errMalformedBody):
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
	case errors.Is(err, project.ErrIDMismatch):
		writeError(w, http.StatusBadRequest, "Project ID mismatch")
	case errors.Is(err, presentation.ErrIDMismatch):
		writeError(w, http.StatusBadRequest, "Presentation ID mismatch")
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, presentation.ErrInvalidInput),
		errors.Is(err, presentation.ErrLastSlide):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, project.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, presentation.ErrPresentationNotFound):
		writeError(w, http.StatusNotFound, "Presentation not found")
	case errors.Is(err, presentation.ErrSlideNotFound):
		writeError(w, http.StatusNotFound, "Slide not found")
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, "Record already exists")
	case errors.Is(err, repository.ErrStorage):
		s.logger.Error("storage fault", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
