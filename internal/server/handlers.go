package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jonathan/leadscore/internal/db"
	"github.com/jonathan/leadscore/internal/ingestion"
	"github.com/jonathan/leadscore/internal/pricing"
	"github.com/jonathan/leadscore/internal/recommend"
	"github.com/jonathan/leadscore/internal/types"
)

// scoreResponse pairs a scored posting with its recommendation decision.
type scoreResponse struct {
	Job      *types.JobPosting  `json:"job"`
	Decision recommend.Decision `json:"decision"`
}

// handleScore scores an ad-hoc posting from the request body without
// persisting it. Useful for trying a posting before importing a batch.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var job types.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job posting JSON")
		return
	}
	if job.ID == "" {
		s.errorResponse(w, http.StatusBadRequest, "job posting requires an id")
		return
	}

	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ingestion.Normalize(&job)
	s.engine.Score(r.Context(), &job, settings)
	decision := recommend.Apply(&job, settings)

	s.jsonResponse(w, http.StatusOK, scoreResponse{Job: &job, Decision: decision})
}

// handleListJobs lists stored postings, best score first. Supports
// ?classification=, ?min_score=, and ?limit= filters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	filters := db.JobFilters{
		Classification: types.Classification(r.URL.Query().Get("classification")),
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		minScore, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid min_score")
			return
		}
		filters.MinScore = minScore
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	jobs, err := s.store.ListJobs(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if jobs == nil {
		jobs = []*types.JobPosting{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJob returns one stored posting.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleRescoreJob rescores a stored posting with the current settings and
// persists the result.
func (s *Server) handleRescoreJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.engine.Score(r.Context(), job, settings)
	decision := recommend.Apply(job, settings)

	if err := s.store.UpsertJob(r.Context(), job); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, scoreResponse{Job: job, Decision: decision})
}

// handleJobProposal returns the pricing proposal for a scored posting.
func (s *Server) handleJobProposal(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	proposal, err := pricing.BuildProposal(job, pricing.DefaultConfig())
	if err != nil {
		if errors.Is(err, pricing.ErrNotScored) {
			s.errorResponse(w, http.StatusConflict, "job has not been scored yet")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, proposal)
}

// handleSetOverride force-recommends a posting.
func (s *Server) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	if err := s.store.SetManualOverride(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "overridden"})
}

// handleClearOverride removes a posting's manual override.
func (s *Server) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearManualOverride(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleGetSettings returns the current scoring settings.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, settings)
}

// handleUpdateSettings validates and stores new scoring settings.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings types.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid settings JSON")
		return
	}
	if err := settings.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SaveSettings(r.Context(), &settings); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, &settings)
}
