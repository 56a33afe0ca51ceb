package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/erraggy/oaspostman/converter"
	"github.com/erraggy/oaspostman/oaserrors"
	"github.com/erraggy/oaspostman/postman"
)

// requestSourceName labels documents read from a request body.
const requestSourceName = "<request>"

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	}
}

func (s *Server) handleConvert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() { s.metrics.duration.Observe(time.Since(start).Seconds()) }()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.fail(w, http.StatusRequestEntityTooLarge, outcomeTooLarge, err)
				return
			}
			s.fail(w, http.StatusBadRequest, outcomeBadRequest, err)
			return
		}

		result, err := converter.ConvertWithOptions(s.convertOptions(r, body)...)
		if err != nil {
			status, outcome := classify(err)
			s.fail(w, status, outcome, err)
			return
		}

		data, err := postman.Marshal(result.Collection)
		if err != nil {
			s.fail(w, http.StatusInternalServerError, outcomeServerError, err)
			return
		}

		s.metrics.conversions.WithLabelValues(outcomeOK).Inc()
		s.metrics.requests.Add(float64(result.RequestCount))
		for _, issue := range result.Issues {
			s.metrics.issues.WithLabelValues(issue.Severity.String()).Inc()
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Collection-Folders", strconv.Itoa(result.FolderCount))
		w.Header().Set("X-Collection-Requests", strconv.Itoa(result.RequestCount))
		w.Header().Set("X-Conversion-Warnings", strconv.Itoa(result.WarningCount))
		_, _ = w.Write(data)
	}
}

func (s *Server) convertOptions(r *http.Request, body []byte) []converter.Option {
	q := r.URL.Query()
	opts := []converter.Option{
		converter.WithBytes(body),
		converter.WithSourceName(requestSourceName),
		converter.WithMaxFileSize(s.cfg.MaxBodySize),
		converter.WithLogger(s.log),
	}
	if name := q.Get("name"); name != "" {
		opts = append(opts, converter.WithCollectionName(name))
	}
	if baseURL := firstNonEmpty(q.Get("base_url"), s.cfg.BaseURL); baseURL != "" {
		opts = append(opts, converter.WithBaseURL(baseURL))
	}
	if version := firstNonEmpty(q.Get("version"), s.cfg.APIVersion); version != "" {
		opts = append(opts, converter.WithAPIVersion(version))
	}
	if v, err := strconv.ParseBool(q.Get("validate")); err == nil && v {
		opts = append(opts, converter.WithValidate(true))
	}
	return opts
}

// classify maps a conversion error to an HTTP status and metrics outcome.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, oaserrors.ErrResourceLimit):
		return http.StatusRequestEntityTooLarge, outcomeTooLarge
	case errors.Is(err, oaserrors.ErrParse),
		errors.Is(err, oaserrors.ErrConfig),
		errors.Is(err, oaserrors.ErrValidation):
		return http.StatusBadRequest, outcomeBadRequest
	default:
		return http.StatusInternalServerError, outcomeServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, outcome string, err error) {
	s.metrics.conversions.WithLabelValues(outcome).Inc()
	s.log.Warn("conversion failed", "status", status, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
