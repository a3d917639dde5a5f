package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/analyzer"
	"github.com/petpsych/behavior-analysis-api/internal/config"
	"github.com/petpsych/behavior-analysis-api/internal/models"
	"github.com/petpsych/behavior-analysis-api/internal/prompt"
	"github.com/petpsych/behavior-analysis-api/internal/utils"
	"github.com/petpsych/behavior-analysis-api/internal/validation"
	"github.com/petpsych/behavior-analysis-api/internal/video"
)

const version = "2.0.0"

type AnalysisService interface {
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error)
	Health(ctx context.Context) models.HealthResponse
	Stats() models.StatsResponse
}

type analysisService struct {
	gen    analyzer.TextGenerator
	cfg    *config.Config
	logger *utils.Logger
	stats  *Stats
	now    func() time.Time
}

func NewService(gen analyzer.TextGenerator, cfg *config.Config, logger *utils.Logger) AnalysisService {
	return &analysisService{
		gen:    gen,
		cfg:    cfg,
		logger: logger,
		stats:  NewStats(),
		now:    time.Now,
	}
}

// Analyze runs the request pipeline: validate, summarize any clip, build the
// prompt, call the generation service, shape the result. The generation client
// only ever sees the assembled prompt string.
func (s *analysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error) {
	start := s.now()

	rec, verr := validation.ValidateRecord(req.Record)
	if verr != nil {
		s.logger.Warn("Validation failed", "field", verr.Field, "error", verr.Message)
		return nil, utils.NewBadRequestError("Invalid input: " + verr.Message)
	}

	videoSummary := s.videoSummary(req)

	p := prompt.Build(rec, videoSummary, s.now())

	s.logger.Info("Analysis request", "species", rec.Species, "pet_name", rec.Name)

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	text, err := s.gen.Generate(genCtx, p)
	if err != nil {
		s.stats.Record(strings.ToLower(rec.Species), 0, false)
		return nil, err
	}

	elapsed := round2(s.now().Sub(start).Seconds())
	s.stats.Record(strings.ToLower(rec.Species), elapsed, true)
	s.logger.Info("Analysis completed", "species", rec.Species, "pet_name", rec.Name, "seconds", elapsed)

	ts := s.now()
	return &models.AnalysisResult{
		Analysis:       text,
		Timestamp:      ts,
		ProcessingTime: elapsed,
		AnalysisID:     analysisID(ts, rec.Name),
		PetName:        rec.Name,
		PetType:        rec.Species,
	}, nil
}

// videoSummary derives the optional video line for the prompt. Video handling
// is best-effort: every failure downgrades to a fallback sentence and the
// request continues.
func (s *analysisService) videoSummary(req *models.AnalysisRequest) string {
	if req.Video != nil && video.AllowedFilename(req.VideoFilename) {
		return s.summarizeUpload(req)
	}
	if strings.HasPrefix(req.CapturedVideo, "data:video") {
		return s.summarizeCaptured(req.CapturedVideo)
	}
	return ""
}

// summarizeUpload persists the clip long enough to measure it, then removes
// the temp file before returning on every path.
func (s *analysisService) summarizeUpload(req *models.AnalysisRequest) string {
	tf, err := video.SaveTemp(s.cfg.UploadDir, req.VideoFilename, req.Video)
	if err != nil {
		s.logger.Error("Video file processing error", "error", err)
		return video.UploadFallback
	}
	defer func() {
		if err := tf.Remove(); err != nil {
			s.logger.Error("Temp video cleanup failed", "path", tf.Path, "error", err)
		}
	}()

	s.logger.Info("Processed uploaded video", "bytes", tf.Size)
	return video.DescribeUpload(tf.Size)
}

func (s *analysisService) summarizeCaptured(uri string) string {
	data, err := video.DecodeDataURI(uri)
	if err != nil {
		s.logger.Error("Captured video processing error", "error", err)
		return video.CapturedFallback
	}

	s.logger.Info("Processed captured video", "bytes", len(data))
	return video.Summarize(data)
}

// Health probes the generation service with a trivial prompt and checks that
// the upload directory is usable.
func (s *analysisService) Health(ctx context.Context) models.HealthResponse {
	aiStatus := "healthy"
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := s.gen.Generate(probeCtx, "Test message"); err != nil {
		aiStatus = "unavailable"
	}

	uploadStatus := "healthy"
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		uploadStatus = "degraded"
	}

	return models.HealthResponse{
		Status:    "healthy",
		Timestamp: s.now().Format(time.RFC3339),
		Services: map[string]string{
			"ai_model":    aiStatus,
			"file_upload": uploadStatus,
			// no database behind this service yet
			"database": "healthy",
		},
		Version: version,
	}
}

func (s *analysisService) Stats() models.StatsResponse {
	return s.stats.Snapshot(s.now())
}

// analysisID builds the caller-facing reference: unix timestamp plus the first
// three characters of the pet's name, uppercased.
func analysisID(ts time.Time, petName string) string {
	short := petName
	if len(short) > 3 {
		short = short[:3]
	}
	return fmt.Sprintf("PA_%d_%s", ts.Unix(), strings.ToUpper(short))
}
