package models

import (
	"io"
	"time"
)

// TimestampFormat is the wall-clock format used in API responses.
const TimestampFormat = "2006-01-02 15:04:05"

// PetRecord holds the form fields describing one pet. Records live for a single
// request and are never persisted.
type PetRecord struct {
	Name         string
	Species      string
	Breed        string
	BehaviorDesc string
	VocalCues    string
	UserQuery    string
}

// AnalysisRequest is the parsed multipart submission handed to the service.
// Video is nil when no file was uploaded; CapturedVideo holds the raw
// data:video/...;base64 URI when the browser recorded a clip inline.
type AnalysisRequest struct {
	Record        PetRecord
	Video         io.Reader
	VideoFilename string
	VideoSize     int64
	CapturedVideo string
}

// AnalysisResult is the generated analysis before response shaping. PetName
// and PetType carry the validated (trimmed) values echoed back to the caller.
type AnalysisResult struct {
	Analysis       string
	Timestamp      time.Time
	ProcessingTime float64
	AnalysisID     string
	PetName        string
	PetType        string
}

type AnalyzeResponse struct {
	Success        bool    `json:"success"`
	Analysis       string  `json:"analysis"`
	Timestamp      string  `json:"timestamp"`
	ProcessingTime float64 `json:"processing_time"`
	PetName        string  `json:"pet_name"`
	PetType        string  `json:"pet_type"`
	AnalysisID     string  `json:"analysis_id"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
}

type StatsResponse struct {
	TotalAnalyses         int64            `json:"total_analyses"`
	SpeciesAnalyzed       map[string]int64 `json:"species_analyzed"`
	AverageProcessingTime float64          `json:"average_processing_time"`
	SuccessRate           float64          `json:"success_rate"`
	Timestamp             string           `json:"timestamp"`
}
