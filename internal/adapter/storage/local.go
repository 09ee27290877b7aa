package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/zenndi/zenndi-ops/internal/domain"
)

// LocalStorage is the backups directory that owns artifacts until upload.
type LocalStorage struct {
	basePath string
}

func NewLocal(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

// Create makes the backups directory if missing and opens a new artifact
// file for writing.
func (l *LocalStorage) Create(filename string) (*os.File, error) {
	if err := os.MkdirAll(l.basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	file, err := os.Create(l.GetPath(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create dest: %w", err)
	}
	return file, nil
}

// List returns the artifacts in the backups directory, newest first. Files
// without an embedded timestamp are skipped.
func (l *LocalStorage) List(ctx context.Context) ([]domain.Artifact, error) {
	entries, err := os.ReadDir(l.basePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var artifacts []domain.Artifact
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		createdAt, err := domain.ParseArtifactTime(entry.Name())
		if err != nil {
			continue
		}
		artifacts = append(artifacts, domain.Artifact{
			Name:      entry.Name(),
			Path:      l.GetPath(entry.Name()),
			CreatedAt: createdAt,
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].CreatedAt.After(artifacts[j].CreatedAt)
	})

	return artifacts, nil
}

func (l *LocalStorage) GetPath(filename string) string {
	return filepath.Join(l.basePath, filename)
}
