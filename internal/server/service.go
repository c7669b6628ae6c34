package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/paperfold/invoice-intel/internal/analysis"
	"github.com/paperfold/invoice-intel/internal/cache"
	"github.com/paperfold/invoice-intel/internal/common"
	"github.com/paperfold/invoice-intel/internal/export"
	"github.com/paperfold/invoice-intel/internal/metrics"
)

const serviceName = "invintel"

// AnalyzeRequest is the upstream collaborator's contract: pre-extracted
// text plus file identity. Field names follow the OCR service's casing.
type AnalyzeRequest struct {
	FileName      string `json:"fileName"`
	FileType      string `json:"fileType"`
	ExtractedText string `json:"extractedText"`
	Jurisdiction  string `json:"jurisdiction,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
}

// AnalysisRecord wraps the scored envelope with transport identity. The
// timestamp lives here, never inside Result, so identical input produces
// an identical envelope.
type AnalysisRecord struct {
	AnalysisID string `json:"analysis_id"`
	FileName   string `json:"file_name"`
	FileType   string `json:"file_type"`
	AnalyzedAt string `json:"analyzed_at"`

	analysis.Result
}

// ExportRequest is a batch of documents to analyze and render as XLSX.
type ExportRequest struct {
	Documents []AnalyzeRequest `json:"documents"`
}

// Service is the HTTP surface over the analysis pipeline.
type Service struct {
	logger       *slog.Logger
	cfg          common.PipelineConfig
	rules        *analysis.Rules
	results      cache.Cache
	metrics      *metrics.Metrics
	exporter     *export.Service
	resultSchema map[string]any
}

func NewService(
	logger *slog.Logger,
	cfg common.PipelineConfig,
	rules *analysis.Rules,
	results cache.Cache,
	m *metrics.Metrics,
	exporter *export.Service,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if rules == nil {
		rules = analysis.DefaultRules()
	}
	return &Service{
		logger:       logger,
		cfg:          cfg,
		rules:        rules,
		results:      results,
		metrics:      m,
		exporter:     exporter,
		resultSchema: analysis.BuildResultJSONSchema(),
	}
}

// Handler wires routes and middleware.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.healthz)
	mux.HandleFunc("/v1/analyze", s.analyze)
	mux.HandleFunc("/v1/export", s.exportXLSX)
	mux.Handle("/metrics", s.metrics.Handler())

	var handler http.Handler = mux
	handler = s.metrics.Middleware(serviceName, handler)
	handler = accessLogMiddleware(s.logger, handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (s *Service) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := validateRequest(req); err != nil {
		writeJSON(w, common.HTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	record := s.runPipeline(req)
	writeJSON(w, http.StatusOK, record)
}

func (s *Service) exportXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if len(req.Documents) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "documents is required"})
		return
	}
	for _, doc := range req.Documents {
		if err := validateRequest(doc); err != nil {
			writeJSON(w, common.HTTPStatus(err), map[string]string{"error": err.Error()})
			return
		}
	}

	rows := make([]export.Row, 0, len(req.Documents))
	for _, doc := range req.Documents {
		record := s.runPipeline(doc)
		rows = append(rows, export.Row{FileName: doc.FileName, Result: record.Result})
	}

	workbook, err := s.exporter.WorkbookXLSX(rows)
	if err != nil {
		s.logger.Error("export failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed"})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="analyses.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

// runPipeline executes (or replays from cache) one analysis and wraps it
// in a transport record.
func (s *Service) runPipeline(req AnalyzeRequest) AnalysisRecord {
	jurisdiction := req.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = s.cfg.DefaultJurisdiction
	}

	key := cache.Key(req.ExtractedText, jurisdiction, req.CompanyName)
	start := time.Now()

	result, hit := s.lookupCache(key)
	if hit {
		s.metrics.RecordCacheHit()
	} else {
		result = analysis.Analyze(analysis.Document{
			FileName:     req.FileName,
			FileType:     req.FileType,
			Text:         req.ExtractedText,
			Jurisdiction: jurisdiction,
			CompanyName:  req.CompanyName,
		}, s.rules)
		s.storeCache(key, result)
		s.validateResult(result)
	}

	elapsed := time.Since(start)
	s.metrics.RecordAnalysis(serviceName, string(result.DocClass), string(result.Approval), result.IsFlagged, elapsed)
	s.logger.Info("analyze.ok",
		"file", req.FileName,
		"doc_class", result.DocClass,
		"decision", result.Approval,
		"risk", result.RiskScore,
		"flagged", result.IsFlagged,
		"cache_hit", hit,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return AnalysisRecord{
		AnalysisID: uuid.NewString(),
		FileName:   req.FileName,
		FileType:   req.FileType,
		AnalyzedAt: time.Now().UTC().Format(time.RFC3339),
		Result:     result,
	}
}

func (s *Service) lookupCache(key string) (analysis.Result, bool) {
	if !s.cfg.CacheEnabled || s.results == nil {
		return analysis.Result{}, false
	}
	return s.results.Get(key)
}

func (s *Service) storeCache(key string, result analysis.Result) {
	if s.cfg.CacheEnabled && s.results != nil {
		s.results.Put(key, result)
	}
}

// validateResult checks fresh envelopes against the record schema. A
// mismatch is logged, never surfaced: degradation inside the pipeline is
// best-effort by contract.
func (s *Service) validateResult(result analysis.Result) {
	if !s.cfg.ValidateOutput {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("result marshal failed", "err", err)
		return
	}
	if err := analysis.ValidateJSONAgainstSchema(s.resultSchema, data); err != nil {
		s.logger.Warn("result schema mismatch", "err", err)
	}
}

func validateRequest(req AnalyzeRequest) error {
	validator := common.NewValidator()
	validator.
		Field("fileName", req.FileName, common.Required, common.MaxLengthRule(512)).
		Field("fileType", req.FileType, common.Required).
		Field("extractedText", req.ExtractedText, common.Required)
	return validator.Error()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
