package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/analyzer"
	"github.com/petpsych/behavior-analysis-api/internal/config"
	"github.com/petpsych/behavior-analysis-api/internal/models"
	"github.com/petpsych/behavior-analysis-api/internal/services"
	"github.com/petpsych/behavior-analysis-api/internal/utils"
)

// multipartMemory caps how much of the parsed form is held in memory; larger
// file parts spill to disk and are cleaned up by net/http.
const multipartMemory = 32 << 20

type AnalysisHandler struct {
	service services.AnalysisService
	cfg     *config.Config
	logger  *utils.Logger
}

func NewAnalysisHandler(service services.AnalysisService, cfg *config.Config, logger *utils.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// AnalyzeBehavior handles POST /analyze_behavior: multipart form in, generated
// analysis out.
func (h *AnalysisHandler) AnalyzeBehavior(w http.ResponseWriter, r *http.Request) {
	// Reject oversized requests before reading the body
	if r.ContentLength > h.cfg.MaxUploadSize {
		h.respondError(w, h.tooLargeError())
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isBodyTooLarge(err) {
			h.respondError(w, h.tooLargeError())
			return
		}
		h.respondError(w, utils.NewBadRequestError("Invalid form data"))
		return
	}

	req := &models.AnalysisRequest{
		Record: models.PetRecord{
			Name:         r.FormValue("pet_name"),
			Species:      r.FormValue("pet_type"),
			Breed:        r.FormValue("pet_breed"),
			BehaviorDesc: r.FormValue("behavior_desc"),
			VocalCues:    r.FormValue("vocal_cues"),
			UserQuery:    r.FormValue("context"),
		},
		CapturedVideo: r.FormValue("captured_video"),
	}

	if file, header, err := r.FormFile("video_file"); err == nil {
		defer file.Close()
		req.Video = file
		req.VideoFilename = header.Filename
		req.VideoSize = header.Size
	}

	result, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.AnalyzeResponse{
		Success:        true,
		Analysis:       result.Analysis,
		Timestamp:      result.Timestamp.Format(models.TimestampFormat),
		ProcessingTime: result.ProcessingTime,
		PetName:        result.PetName,
		PetType:        result.PetType,
		AnalysisID:     result.AnalysisID,
	})
}

// Health handles GET /health.
func (h *AnalysisHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Health(r.Context()))
}

// Stats handles GET /api/stats.
func (h *AnalysisHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Stats())
}

// NotFound is the JSON 404 handler for unknown routes.
func (h *AnalysisHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, utils.NewNotFoundError("Endpoint not found."))
}

func (h *AnalysisHandler) tooLargeError() *utils.AppError {
	return utils.NewRequestTooLargeError(fmt.Sprintf(
		"File too large. Maximum size allowed is %dMB.", h.cfg.MaxUploadSize>>20))
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// userMessage maps a generation failure to the user-facing message, branching
// on keywords in the underlying error.
func userMessage(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return "Service temporarily at capacity. Please try again in a few minutes."
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection"):
		return "Network connectivity issue. Please check your connection and try again."
	case strings.Contains(msg, "invalid"):
		return "Invalid input provided. Please check your entries and try again."
	default:
		return "Analysis service temporarily unavailable. Please try again."
	}
}

func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *AnalysisHandler) respondError(w http.ResponseWriter, err error) {
	var appErr *utils.AppError

	switch {
	case errors.As(err, &appErr):
		// status, message, and code already shaped
	case errors.Is(err, analyzer.ErrUnavailable):
		appErr = utils.NewAnalysisError(userMessage(err))
	default:
		appErr = utils.NewInternalError("Internal server error. Please try again.")
	}

	h.logger.Error("Request error", "status", appErr.StatusCode, "error", appErr.Message)

	h.respondJSON(w, appErr.StatusCode, models.ErrorResponse{
		Success:   false,
		Error:     appErr.Message,
		ErrorCode: appErr.Code,
		Timestamp: time.Now().Format(models.TimestampFormat),
	})
}
