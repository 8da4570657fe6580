package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/memad/portfolio/internal/domain/presentation"
)

type presentationsResponse struct {
	Presentations []presentation.Presentation `json:"presentations"`
}

type presentationResponse struct {
	Presentation *presentation.Presentation `json:"presentation"`
}

type createPresentationRequest struct {
	Title        presentation.Text    `json:"title"`
	Description  *presentation.Text   `json:"description"`
	Type         presentation.Type    `json:"type"`
	Slides       []presentation.Slide `json:"slides"`
	PDFURL       string               `json:"pdfUrl"`
	ExternalLink string               `json:"externalLink"`
	Date         string               `json:"date"`
	ThumbnailURL string               `json:"thumbnailUrl"`
}

type reorderRequest struct {
	Order []int `json:"order"`
}

func (s *Server) listPresentations(w http.ResponseWriter, r *http.Request) {
	items, err := s.svcs.Presentations.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presentationsResponse{Presentations: items})
}

func (s *Server) createPresentation(w http.ResponseWriter, r *http.Request) {
	var req createPresentationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	pres, err := s.svcs.Presentations.Create(r.Context(), presentation.CreateRequest{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Slides:       req.Slides,
		PDFURL:       req.PDFURL,
		ExternalLink: req.ExternalLink,
		Date:         req.Date,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, presentationResponse{Presentation: pres})
}

func (s *Server) getPresentation(w http.ResponseWriter, r *http.Request) {
	pres, err := s.svcs.Presentations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presentationResponse{Presentation: pres})
}

func (s *Server) replacePresentation(w http.ResponseWriter, r *http.Request) {
	var pres presentation.Presentation
	if err := decodeJSON(w, r, &pres); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	updated, err := s.svcs.Presentations.Replace(r.Context(), chi.URLParam(r, "id"), pres)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presentationResponse{Presentation: updated})
}

func (s *Server) deletePresentation(w http.ResponseWriter, r *http.Request) {
	if err := s.svcs.Presentations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) addSlide(w http.ResponseWriter, r *http.Request) {
	var slide presentation.Slide
	if err := decodeJSON(w, r, &slide); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSlideResult(w, r)(s.svcs.Presentations.AddSlide(r.Context(), chi.URLParam(r, "id"), slide))
}

func (s *Server) updateSlide(w http.ResponseWriter, r *http.Request) {
	index, err := slideIndex(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	var slide presentation.Slide
	if err := decodeJSON(w, r, &slide); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSlideResult(w, r)(s.svcs.Presentations.UpdateSlide(r.Context(), chi.URLParam(r, "id"), index, slide))
}

func (s *Server) deleteSlide(w http.ResponseWriter, r *http.Request) {
	index, err := slideIndex(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSlideResult(w, r)(s.svcs.Presentations.DeleteSlide(r.Context(), chi.URLParam(r, "id"), index))
}

func (s *Server) reorderSlides(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSlideResult(w, r)(s.svcs.Presentations.ReorderSlides(r.Context(), chi.URLParam(r, "id"), req.Order))
}

func (s *Server) writeSlideResult(w http.ResponseWriter, r *http.Request) func(*presentation.Presentation, error) {
	return func(pres *presentation.Presentation, err error) {
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, presentationResponse{Presentation: pres})
	}
}

func slideIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, fmt.Errorf("%w: slide index must be an integer", presentation.ErrInvalidInput)
	}
	return index, nil
}
