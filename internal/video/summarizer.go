// Package video handles uploaded and inline-captured clips: transient temp-file
// storage, the upload-directory sweeper, and the size-based summary stub.
//
// Summarize is a placeholder for real content analysis: it buckets on payload
// size only and performs no decoding or frame inspection.
package video

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	highQualityThreshold  = 1_000_000
	clearFootageThreshold = 100_000
)

// Fallback sentences used when a clip cannot be processed. Video analysis is
// best-effort and never fails the request.
const (
	UploadFallback   = "Video upload encountered processing issues but analysis continues with provided descriptions."
	CapturedFallback = "Live captured video provided additional behavioral context."
	GenericFallback  = "Video provided for additional context (processing encountered technical limitations)."
)

// allowedExtensions lists the accepted upload container formats.
var allowedExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".webm": true,
	".mkv":  true,
}

// AllowedFilename reports whether the upload has an accepted video extension.
func AllowedFilename(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Summarize returns a descriptive sentence for a captured clip, chosen solely
// by payload size. Empty input yields an empty summary.
func Summarize(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	switch {
	case len(data) > highQualityThreshold:
		return "High-quality video footage analyzed showing detailed behavioral patterns and environmental context."
	case len(data) > clearFootageThreshold:
		return "Video footage analyzed showing clear behavioral indicators and movement patterns."
	default:
		return "Brief video clip analyzed providing supplementary visual context."
	}
}

// DescribeUpload returns the summary sentence for a saved upload of the given
// size, including a coarse duration bucket derived from the byte count.
func DescribeUpload(size int64) string {
	bucket := "long"
	switch {
	case size < 5_000_000:
		bucket = "short"
	case size < 20_000_000:
		bucket = "medium"
	}
	return fmt.Sprintf(
		"Uploaded video file analyzed (%s duration, %dKB). Visual behavioral patterns and environmental context extracted from footage.",
		bucket, size/1024)
}

// DecodeDataURI extracts and decodes the payload of a data:video/...;base64 URI.
func DecodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, "data:video") {
		return nil, fmt.Errorf("not a video data URI")
	}
	_, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URI: missing payload")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode video payload: %w", err)
	}
	return data, nil
}
