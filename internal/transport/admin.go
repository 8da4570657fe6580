package transport

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/session"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type loginErrorResponse struct {
	Error             string `json:"error"`
	RemainingAttempts *int   `json:"remainingAttempts,omitempty"`
	RetryAfterSeconds *int   `json:"retryAfterSeconds,omitempty"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	GateEnabled   bool       `json:"gateEnabled"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

type activityResponse struct {
	Activity []activity.ActivityEntry `json:"activity"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if s.svcs.Sessions == nil || !s.svcs.Sessions.Enabled() {
		writeError(w, http.StatusNotFound, "admin login is not configured")
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	sess, err := s.svcs.Sessions.Login(r.Context(), ClientKey(r), req.Password)
	if err != nil {
		s.writeLoginError(w, r, err)
		return
	}

	s.setSessionCookie(w, sess.Token, sess.ExpiresAt)
	writeJSON(w, http.StatusOK, loginResponse{Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

func (s *Server) writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var loginErr *session.LoginError
	if !errors.As(err, &loginErr) {
		s.writeServiceError(w, r, err)
		return
	}

	if errors.Is(err, session.ErrLockedOut) {
		seconds := int(math.Ceil(loginErr.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		writeJSON(w, http.StatusTooManyRequests, loginErrorResponse{
			Error:             "Too many failed attempts",
			RetryAfterSeconds: &seconds,
		})
		return
	}

	remaining := loginErr.RemainingAttempts
	writeJSON(w, http.StatusUnauthorized, loginErrorResponse{
		Error:             "Invalid password",
		RemainingAttempts: &remaining,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	if s.svcs.Sessions == nil || !s.svcs.Sessions.Enabled() {
		writeSuccess(w)
		return
	}

	if err := s.svcs.Sessions.Logout(r.Context(), TokenFromRequest(r)); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid or expired admin session")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) {
	if s.svcs.Sessions == nil || !s.svcs.Sessions.Enabled() {
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true})
		return
	}

	sess, err := s.svcs.Sessions.Validate(r.Context(), TokenFromRequest(r))
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			writeJSON(w, http.StatusUnauthorized, sessionResponse{GateEnabled: true})
			return
		}
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, GateEnabled: true, ExpiresAt: &sess.ExpiresAt})
}

func (s *Server) listActivity(w http.ResponseWriter, r *http.Request) {
	if s.svcs.Activity == nil {
		writeJSON(w, http.StatusOK, activityResponse{Activity: []activity.ActivityEntry{}})
		return
	}

	var opts activity.ListActivityOptions
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		opts.Limit = n
	}
	if typ := r.URL.Query().Get("type"); typ != "" {
		t := activity.ActivityType(typ)
		opts.ActivityType = &t
	}

	entries, err := s.svcs.Activity.GetRecentActivity(r.Context(), opts)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if entries == nil {
		entries = []activity.ActivityEntry{}
	}
	writeJSON(w, http.StatusOK, activityResponse{Activity: entries})
}
