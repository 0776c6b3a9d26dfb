package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finance-ledger/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAgedFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("title,type,value,category\n"), 0o600))
	modified := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, modified, modified))
	return path
}

func TestUploadSweeper_RemovesOnlyExpiredUploads(t *testing.T) {
	dir := t.TempDir()
	expired := writeAgedFile(t, dir, uuid.New().String()+".csv", 48*time.Hour)
	fresh := writeAgedFile(t, dir, uuid.New().String()+".csv", time.Minute)
	foreign := writeAgedFile(t, dir, "report.csv", 48*time.Hour)
	other := writeAgedFile(t, dir, uuid.New().String()+".txt", 48*time.Hour)

	sweeper := NewUploadSweeper(config.ImportConfig{UploadDir: dir, UploadRetention: 24 * time.Hour})

	removed, err := sweeper.Sweep(time.Now())

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, expired)
	assert.FileExists(t, fresh)
	assert.FileExists(t, foreign)
	assert.FileExists(t, other)
}

func TestUploadSweeper_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, uuid.New().String()+".csv")
	require.NoError(t, os.Mkdir(nested, 0o750))

	removed, err := NewUploadSweeper(config.ImportConfig{UploadDir: dir, UploadRetention: time.Nanosecond}).
		Sweep(time.Now().Add(time.Hour))

	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.DirExists(t, nested)
}

func TestUploadSweeper_DisabledRetentionKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	path := writeAgedFile(t, dir, uuid.New().String()+".csv", 365*24*time.Hour)
	sweeper := NewUploadSweeper(config.ImportConfig{UploadDir: dir})

	removed, err := sweeper.Sweep(time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.FileExists(t, path)

	done := make(chan struct{})
	go func() {
		sweeper.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return immediately when retention is disabled")
	}
}

func TestUploadSweeper_MissingDirectory(t *testing.T) {
	sweeper := NewUploadSweeper(config.ImportConfig{
		UploadDir:       filepath.Join(t.TempDir(), "absent"),
		UploadRetention: time.Hour,
	})

	removed, err := sweeper.Sweep(time.Now())

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestUploadSweeper_RunStopsWithContext(t *testing.T) {
	sweeper := NewUploadSweeper(config.ImportConfig{UploadDir: t.TempDir(), UploadRetention: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should stop when the context is cancelled")
	}
}

func TestIsUploadFileName(t *testing.T) {
	assert.True(t, isUploadFileName(uuid.New().String()+".csv"))
	assert.False(t, isUploadFileName("statement.csv"))
	assert.False(t, isUploadFileName(uuid.New().String()))
	assert.False(t, isUploadFileName(uuid.New().String()+".csv.bak"))
}
