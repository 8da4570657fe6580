package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/memad/portfolio/internal/domain/project"
)

type projectsResponse struct {
	Projects []project.Project `json:"projects"`
}

type projectResponse struct {
	Project *project.Project `json:"project"`
}

// createProjectRequest is the POST body. Any id sent by the client is ignored.
type createProjectRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Status       project.Status `json:"status"`
	Technologies []string       `json:"technologies"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Team         []string       `json:"team"`
	ImageURL     string         `json:"imageUrl"`
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svcs.Projects.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectsResponse{Projects: projects})
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	proj, err := s.svcs.Projects.Create(r.Context(), project.CreateRequest{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Status:       req.Status,
		Technologies: req.Technologies,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Team:         req.Team,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectResponse{Project: proj})
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.svcs.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectResponse{Project: proj})
}

func (s *Server) replaceProject(w http.ResponseWriter, r *http.Request) {
	var proj project.Project
	if err := decodeJSON(w, r, &proj); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	updated, err := s.svcs.Projects.Replace(r.Context(), chi.URLParam(r, "id"), proj)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectResponse{Project: updated})
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.svcs.Projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w)
}
