package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRotatingWriter_NoRotationBelowLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kudoticker.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}

	if _, err := rw.Write([]byte("small entry\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("backup file should not exist before the size limit is hit")
	}
}

func TestRotatingWriter_RotatesAtLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kudoticker.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 0, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}
	// MaxSizeMB 0 disables rotation; force a tiny limit directly so the
	// test does not have to write a megabyte.
	rw.maxSizeB = 64

	entry := bytes.Repeat([]byte("x"), 48)
	for i := 0; i < 3; i++ {
		if _, err := rw.Write(entry); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("expected backup file after rotation: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected fresh log file after rotation: %v", err)
	}
}

func TestRotatingWriter_DropsOldestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kudoticker.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 0, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}
	rw.maxSizeB = 16

	entry := bytes.Repeat([]byte("y"), 12)
	for i := 0; i < 6; i++ {
		if _, err := rw.Write(entry); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("expected .1 backup: %v", err)
	}
	if _, err := os.Stat(path + ".2"); !os.IsNotExist(err) {
		t.Error(".2 backup should have been dropped with MaxBackups=1")
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kudoticker.log")

	rw, err := NewRotatingWriter(path, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write() after Close() should fail")
	}
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got: %v", err)
	}
}

func TestDefaultRotationConfig(t *testing.T) {
	cfg := DefaultRotationConfig()
	if cfg.MaxSizeMB != 10 {
		t.Errorf("MaxSizeMB = %d, want 10", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("MaxBackups = %d, want 3", cfg.MaxBackups)
	}
}
