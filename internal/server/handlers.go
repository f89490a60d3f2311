package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/Aanishnithin07/FitForge/internal/leaderboard"
	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/rendering"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LeaderboardRequest represents the request body for /leaderboard
type LeaderboardRequest struct {
	JDText     string            `json:"jd_text" validate:"required"`
	Candidates []types.Candidate `json:"candidates" validate:"required,min=1,max=200,dive"`
}

// CompareRequest represents the request body for /compare. A and B are
// candidate IDs or names from Candidates.
type CompareRequest struct {
	LeaderboardRequest
	A string `json:"a" validate:"required"`
	B string `json:"b" validate:"required"`
}

// CompareResponse represents the response for /compare
type CompareResponse struct {
	Comparison types.Comparison       `json:"comparison"`
	A          types.LeaderboardEntry `json:"a"`
	B          types.LeaderboardEntry `json:"b"`
}

// AnnotateRequest represents the request body for /annotate. When Highlights
// is empty and JDText is set, the matched terms of an analysis are used.
type AnnotateRequest struct {
	Text       string   `json:"text" validate:"required"`
	Highlights []string `json:"highlights,omitempty"`
	JDText     string   `json:"jd_text,omitempty"`
}

// AnnotateResponse represents the response for /annotate
type AnnotateResponse struct {
	HTML       string   `json:"html"`
	Highlights []string `json:"highlights"`
}

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status     string `json:"status"`
	Vocabulary string `json:"vocabulary"`
	Cache      string `json:"cache"`
}

// handleAnalyze scores one resume against one job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalysisInput
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	result, hit := s.memo.Analyze(r.Context(), req)
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	s.collector.TrackOutput("json")
	s.jsonResponse(w, http.StatusOK, result)
}

// handleLeaderboard ranks several resumes against one job description
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	var req LeaderboardRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	lb, err := s.rank(r, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.collector.TrackOutput("leaderboard")
	s.jsonResponse(w, http.StatusOK, lb)
}

// handleCompare ranks the candidates and compares two of them
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	lb, err := s.rank(r, req.LeaderboardRequest)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	a, ok := leaderboard.Lookup(lb, req.A)
	if !ok {
		s.fail(w, r, &ErrValidation{Field: "a", Message: fmt.Sprintf("no candidate %q", req.A)})
		return
	}
	b, ok := leaderboard.Lookup(lb, req.B)
	if !ok {
		s.fail(w, r, &ErrValidation{Field: "b", Message: fmt.Sprintf("no candidate %q", req.B)})
		return
	}

	s.collector.TrackOutput("comparison")
	s.jsonResponse(w, http.StatusOK, CompareResponse{
		Comparison: leaderboard.Compare(a, b),
		A:          a,
		B:          b,
	})
}

func (s *Server) rank(r *http.Request, req LeaderboardRequest) (*types.Leaderboard, error) {
	return leaderboard.Rank(r.Context(), s.engine, req.JDText, req.Candidates, leaderboard.Options{
		Concurrency: s.concurrency,
		Logger:      s.log,
	})
}

// handleAnnotate renders text as HTML with the given terms marked
func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	var req AnnotateRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	highlights := req.Highlights
	if len(highlights) == 0 && req.JDText != "" {
		result, _ := s.memo.Analyze(r.Context(), types.AnalysisInput{JDText: req.JDText, ResumeText: req.Text})
		highlights = result.Highlights()
	}
	if highlights == nil {
		highlights = []string{}
	}

	s.collector.TrackOutput("html")
	s.jsonResponse(w, http.StatusOK, AnnotateResponse{
		HTML:       rendering.Annotate(req.Text, highlights),
		Highlights: highlights,
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		Vocabulary: s.analyzer.VocabularyVersion(),
		Cache:      s.cacheName,
	})
}

// handleStats returns the session report
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.collector.Report())
}

// decodeJSON reads a size-limited JSON body into dst and validates it
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return &ErrPayloadTooLarge{Limit: tooLarge.Limit}
		case errors.Is(err, io.EOF):
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		default:
			return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ErrValidation{Field: validationField(fe), Message: fmt.Sprintf("failed on '%s'", fe.Tag())}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// validationField strips the struct name from a validator namespace,
// e.g. "LeaderboardRequest.candidates[1].name" becomes "candidates[1].name".
func validationField(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// fail records err and writes it as an error response
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	s.collector.TrackError(err)
	fields := logger.Fields{"path": r.URL.Path, "status": status, "request_id": RequestID(r.Context())}
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed", fields)
	} else {
		s.log.WithError(err).Debug("request rejected", fields)
	}
	s.errorResponse(w, status, err.Error())
}
