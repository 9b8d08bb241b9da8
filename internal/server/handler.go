package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/survey"
)

// FootprintResponse is the body returned by POST /api/v1/footprint.
type FootprintResponse struct {
	Report      footprint.EmissionsReport  `json:"report"`
	Benchmarks  footprint.BenchmarkTable   `json:"benchmarks"`
	Tips        []string                   `json:"tips"`
	Equivalency greenops.EquivalencyOutput `json:"equivalency"`
}

// BenchmarksResponse is the body returned by GET /api/v1/benchmarks.
type BenchmarksResponse struct {
	Benchmarks []footprint.BenchmarkEntry `json:"benchmarks"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleFootprint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "invalid request method")
		return
	}

	body, err := readBody(w, r, maxBodyBytes)
	if err != nil {
		writeReadError(w, r, err)
		return
	}

	resp, err := survey.Decode(body, survey.FormatJSON)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Estimate(r.Context(), resp)
	if err != nil {
		if errors.Is(err, footprint.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logging.FromContext(r.Context()).Error().Err(err).Msg("estimate failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, FootprintResponse{
		Report:      result.Report,
		Benchmarks:  result.Benchmarks,
		Tips:        result.Tips,
		Equivalency: result.Equivalency,
	})
}

func (s *Server) handleFootprintBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "invalid request method")
		return
	}

	body, err := readBody(w, r, maxBatchBodyBytes)
	if err != nil {
		writeReadError(w, r, err)
		return
	}

	var raw []json.RawMessage
	if err = json.Unmarshal(body, &raw); err != nil {
		writeError(w, r, http.StatusBadRequest, "request body must be a JSON array of surveys")
		return
	}

	surveys := make([]footprint.SurveyResponse, len(raw))
	for i, item := range raw {
		if surveys[i], err = survey.DecodeUnvalidated(item, survey.FormatJSON); err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("survey %d: %v", i, err))
			return
		}
	}

	result, err := s.engine.EstimateBatch(r.Context(), surveys)
	if err != nil {
		if errors.Is(err, footprint.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logging.FromContext(r.Context()).Error().Err(err).Msg("batch estimate failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "invalid request method")
		return
	}
	writeJSON(w, r, http.StatusOK, BenchmarksResponse{Benchmarks: footprint.ReferenceBenchmarks()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
}

// writeReadError maps a body read failure to 413 when the size limit was hit
// and 400 otherwise.
func writeReadError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, r, http.StatusBadRequest, "failed to read request body")
}

// writeJSON encodes v before touching the response so an encoding failure
// can still be reported as a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Int("status", status).Msg("failed to encode response")
		data = []byte(`{"error":"internal server error"}`)
		status = http.StatusInternalServerError
	}

	w.WriteHeader(status)
	if _, err = w.Write(append(data, '\n')); err != nil {
		logging.FromContext(r.Context()).Debug().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, ErrorResponse{Error: msg})
}
