package video

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/utils"
)

// Sweeper periodically deletes upload artifacts older than MaxAge. Requests
// delete their own temp files; the sweeper is a backstop for missed cleanup.
type Sweeper struct {
	Dir      string
	MaxAge   time.Duration
	Interval time.Duration
	Logger   *utils.Logger
}

func NewSweeper(dir string, logger *utils.Logger) *Sweeper {
	return &Sweeper{
		Dir:      dir,
		MaxAge:   time.Hour,
		Interval: time.Hour,
		Logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.SweepOnce()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce()
		}
	}
}

// SweepOnce removes files in Dir whose modification time exceeds MaxAge.
func (s *Sweeper) SweepOnce() {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Logger.Error("Upload sweep failed", "error", err)
		}
		return
	}

	cutoff := time.Now().Add(-s.MaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(s.Dir, entry.Name())
			if err := os.Remove(path); err != nil {
				s.Logger.Error("Failed to remove stale upload", "file", entry.Name(), "error", err)
				continue
			}
			s.Logger.Info("Cleaned up old file", "file", entry.Name())
		}
	}
}
