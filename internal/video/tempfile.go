package video

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TempFile is a scoped upload artifact. The owner must call Remove on every
// exit path; the file never outlives the request that wrote it.
type TempFile struct {
	Path string
	Size int64
}

// SaveTemp writes an uploaded clip to dir under a collision-resistant name
// (nanosecond timestamp + sanitized original filename). The directory is
// created if missing.
func SaveTemp(dir, originalName string, r io.Reader) (*TempFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("video_%d_%s", time.Now().UnixNano(), sanitizeFilename(originalName))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create temp video: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write temp video: %w", err)
	}

	return &TempFile{Path: path, Size: size}, nil
}

// Remove deletes the artifact. Safe to call more than once.
func (t *TempFile) Remove() error {
	err := os.Remove(t.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// sanitizeFilename strips path components and any character outside a safe
// allowlist so user-supplied names cannot escape the upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
