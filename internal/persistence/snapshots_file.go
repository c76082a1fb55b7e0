package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// FileSnapshots persists the trainee collection as a JSON document on local
// disk. Writes go to a temp file first and are renamed into place, so a crash
// mid-write never corrupts the committed snapshot.
type FileSnapshots struct {
	path string
}

// NewFileSnapshots builds a file-backed snapshot store.
func NewFileSnapshots(path string) *FileSnapshots {
	return &FileSnapshots{path: path}
}

// Load reads the snapshot document. A missing file is an empty collection.
func (f *FileSnapshots) Load(_ context.Context) ([]domain.Trainee, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var trainees []domain.Trainee
	if err := json.Unmarshal(data, &trainees); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return trainees, nil
}

// Save writes a complete replacement snapshot.
func (f *FileSnapshots) Save(_ context.Context, trainees []domain.Trainee) error {
	data, err := json.Marshal(trainees)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".trainees-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
