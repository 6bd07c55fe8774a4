package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/seqcalc/internal/errors"
	"github.com/agbru/seqcalc/internal/logging"
	"github.com/agbru/seqcalc/internal/sequence"
)

var tracer = otel.Tracer("seqcalc/server")

// jsonFloat marshals non-finite values as strings so overflowed terms survive
// the JSON transport, which rejects raw Infinity and NaN literals.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// sequenceRequest is the JSON body accepted by POST /api/v1/sequence.
type sequenceRequest struct {
	Kind      string   `json:"kind"`
	FirstTerm *float64 `json:"first_term"`
	Step      *float64 `json:"step"`
	NumTerms  int      `json:"num_terms"`
}

// sequenceResponse is the JSON payload returned for a successful generation.
type sequenceResponse struct {
	Kind        string      `json:"kind"`
	FirstTerm   jsonFloat   `json:"first_term"`
	Step        jsonFloat   `json:"step"`
	NumTerms    int         `json:"num_terms"`
	Terms       []jsonFloat `json:"terms"`
	LastTerm    jsonFloat   `json:"last_term"`
	Sum         jsonFloat   `json:"sum"`
	TermFormula string      `json:"term_formula"`
	SumFormula  string      `json:"sum_formula"`
	DurationMs  float64     `json:"duration_ms"`
}

// errorResponse is the JSON payload returned for failed requests.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// handleSequence serves GET and POST /api/v1/sequence.
func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "sequence.generate",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	s.metrics.IncrementActiveRequests()
	defer s.metrics.DecrementActiveRequests()
	start := time.Now()

	var (
		req sequence.Request
		err error
	)
	switch r.Method {
	case http.MethodGet:
		req, err = parseQueryRequest(r)
	case http.MethodPost:
		req, err = parseBodyRequest(r)
	default:
		w.Header().Set("Allow", "GET, POST, OPTIONS")
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	if err != nil {
		s.metrics.ObserveRequest("unknown", "error", time.Since(start))
		span.SetStatus(codes.Error, err.Error())
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	span.SetAttributes(
		attribute.String("sequence.kind", req.Kind.String()),
		attribute.Int("sequence.num_terms", req.NumTerms),
	)

	res, err := sequence.Evaluate(req)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveRequest(req.Kind.String(), "error", elapsed)
		span.SetStatus(codes.Error, err.Error())

		var vErr apperrors.ValidationError
		if errors.As(err, &vErr) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message, Field: vErr.Field})
			return
		}
		s.logger.Error("generation failed", logging.Err(err))
		s.writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	s.metrics.ObserveRequest(req.Kind.String(), "ok", elapsed)
	s.logger.Info("sequence generated",
		logging.String("kind", req.Kind.String()),
		logging.Int("num_terms", req.NumTerms),
		logging.Float64("sum", res.Summary.Sum),
	)

	terms := make([]jsonFloat, len(res.Terms))
	for i, term := range res.Terms {
		terms[i] = jsonFloat(term)
	}
	s.writeJSON(w, http.StatusOK, sequenceResponse{
		Kind:        req.Kind.String(),
		FirstTerm:   jsonFloat(req.FirstTerm),
		Step:        jsonFloat(req.Step),
		NumTerms:    req.NumTerms,
		Terms:       terms,
		LastTerm:    jsonFloat(res.Summary.LastTerm),
		Sum:         jsonFloat(res.Summary.Sum),
		TermFormula: req.TermFormula(),
		SumFormula:  req.SumFormula(),
		DurationMs:  float64(elapsed) / float64(time.Millisecond),
	})
}

// handleHealth serves /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseQueryRequest builds an engine request from URL query parameters.
// Missing parameters fall back to the engine defaults.
func parseQueryRequest(r *http.Request) (sequence.Request, error) {
	q := r.URL.Query()

	req := sequence.Request{
		Kind:      sequence.Arithmetic,
		FirstTerm: sequence.DefaultFirstTerm,
		Step:      sequence.DefaultDifference,
		NumTerms:  sequence.DefaultNumTerms,
	}

	stepSet := false
	if v := q.Get("kind"); v != "" {
		kind, err := sequence.ParseKind(v)
		if err != nil {
			return sequence.Request{}, err
		}
		req.Kind = kind
	}
	if v := q.Get("first"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sequence.Request{}, fmt.Errorf("invalid first term %q: %w", v, err)
		}
		req.FirstTerm = f
	}
	if v := q.Get("step"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sequence.Request{}, fmt.Errorf("invalid step %q: %w", v, err)
		}
		req.Step = f
		stepSet = true
	}
	if v := q.Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return sequence.Request{}, fmt.Errorf("invalid term count %q: %w", v, err)
		}
		req.NumTerms = n
	}

	if req.Kind == sequence.Geometric && !stepSet {
		req.Step = sequence.DefaultRatio
	}
	return req, nil
}

// parseBodyRequest builds an engine request from a JSON body.
func parseBodyRequest(r *http.Request) (sequence.Request, error) {
	var body sequenceRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return sequence.Request{}, fmt.Errorf("invalid request body: %w", err)
	}

	req := sequence.Request{
		Kind:      sequence.Arithmetic,
		FirstTerm: sequence.DefaultFirstTerm,
		Step:      sequence.DefaultDifference,
		NumTerms:  body.NumTerms,
	}
	if body.Kind != "" {
		kind, err := sequence.ParseKind(body.Kind)
		if err != nil {
			return sequence.Request{}, err
		}
		req.Kind = kind
	}
	if body.FirstTerm != nil {
		req.FirstTerm = *body.FirstTerm
	}
	if body.Step != nil {
		req.Step = *body.Step
	} else if req.Kind == sequence.Geometric {
		req.Step = sequence.DefaultRatio
	}
	return req, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", logging.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
