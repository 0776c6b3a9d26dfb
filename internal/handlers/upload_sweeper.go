package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finance-ledger/internal/config"

	"github.com/google/uuid"
)

const (
	uploadExt           = ".csv"
	uploadSweepInterval = 10 * time.Minute
)

// UploadSweeper deletes stored uploads that outlived the retention period.
// Successful imports delete their own upload, so only files from failed
// imports accumulate.
type UploadSweeper struct {
	dir       string
	retention time.Duration
}

func NewUploadSweeper(cfg config.ImportConfig) *UploadSweeper {
	return &UploadSweeper{dir: cfg.UploadDir, retention: cfg.UploadRetention}
}

// Run sweeps on a fixed interval until ctx is done. It returns at once when retention is disabled.
func (s *UploadSweeper) Run(ctx context.Context) {
	if s.retention <= 0 {
		return
	}

	ticker := time.NewTicker(uploadSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := s.Sweep(now)
			if err != nil {
				slog.WarnContext(ctx, "upload sweep failed", "dir", s.dir, "error", err)
				continue
			}
			if removed > 0 {
				slog.InfoContext(ctx, "expired uploads removed", "dir", s.dir, "count", removed)
			}
		}
	}
}

// Sweep removes uploads modified before now minus the retention period.
// Only files named like stored uploads are considered, since the upload
// directory may be shared.
func (s *UploadSweeper) Sweep(now time.Time) (int, error) {
	if s.retention <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read upload directory: %w", err)
	}

	cutoff := now.Add(-s.retention)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !isUploadFileName(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove expired upload", "path", path, "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}

func isUploadFileName(name string) bool {
	stem, ok := strings.CutSuffix(name, uploadExt)
	if !ok {
		return false
	}
	_, err := uuid.Parse(stem)
	return err == nil
}
