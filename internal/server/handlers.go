package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/kyp-analysis/internal/funds"
	"github.com/jonathan/kyp-analysis/internal/rendering"
	"github.com/jonathan/kyp-analysis/internal/schemas"
	"github.com/jonathan/kyp-analysis/internal/types"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps form and JSON request bodies.
const maxBodyBytes = 1 << 20

// ReportIDHeader carries the ID assigned to each exported report.
const ReportIDHeader = "X-Report-ID"

// FundResponse is one catalog entry in the funds API.
type FundResponse struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// FundsResponse is the body of GET /api/v1/funds.
type FundsResponse struct {
	Equities    []FundResponse `json:"equities"`
	FixedIncome []FundResponse `json:"fixed_income"`
}

// handleIndex renders the advisor form with default values
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	body, err := renderFormPage(newFormPage(s.catalog, types.DefaultFormState()))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleReport exports a report from a submitted HTML form
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.errorResponse(w, r, &ErrBadRequest{Message: "invalid form body", Cause: err})
		return
	}

	state, err := formStateFromValues(r.PostForm)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	s.exportReport(w, r, &state)
}

// handleAPIReport exports a report from a JSON FormState body
func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, r, &ErrBadRequest{Message: "failed to read request body", Cause: err})
		return
	}
	if len(body) == 0 {
		s.errorResponse(w, r, &ErrBadRequest{Message: "request body is empty"})
		return
	}

	state, err := schemas.DecodeFormState(body)
	if err != nil {
		s.errorResponse(w, r, asValidationError(err))
		return
	}

	s.exportReport(w, r, &state)
}

// exportReport assembles state, serializes it and streams the document as an
// attachment. Nothing is written until serialization has succeeded.
func (s *Server) exportReport(w http.ResponseWriter, r *http.Request, state *types.FormState) {
	reportID := uuid.New().String()
	logger := zerolog.Ctx(r.Context()).With().Str("report_id", reportID).Logger()
	r = r.WithContext(logger.WithContext(r.Context()))

	doc, missing := s.assembler.Assemble(state)
	for _, m := range missing {
		logger.Warn().
			Str("group", m.Group).
			Str("category", string(m.Category)).
			Str("fund", m.Name).
			Msg("fund description unavailable")
	}

	data, err := rendering.RenderDOCX(doc, s.docxOptions)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", rendering.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+rendering.ReportFilename)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set(ReportIDHeader, reportID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return
	}

	logger.Info().
		Int("blocks", len(doc.Blocks)).
		Int("bytes", len(data)).
		Int("missing_funds", len(missing)).
		Msg("report exported")
}

// handleListFunds returns the fund catalog
func (s *Server) handleListFunds(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, FundsResponse{
		Equities:    fundResponses(s.catalog.Funds(funds.Equities)),
		FixedIncome: fundResponses(s.catalog.Funds(funds.FixedIncome)),
	})
}

func fundResponses(entries []funds.Fund) []FundResponse {
	out := make([]FundResponse, 0, len(entries))
	for _, f := range entries {
		out = append(out, FundResponse{Name: f.Name, Text: f.Text})
	}
	return out
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
