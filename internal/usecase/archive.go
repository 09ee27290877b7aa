package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/zenndi/zenndi-ops/internal/domain"
)

// Archive places a local artifact into the object store under its base name
// and announces it.
type Archive struct {
	storage  domain.Storage
	notifier domain.Notifier
	target   string
	logger   Logger
}

func NewArchive(storage domain.Storage, notifier domain.Notifier, target string, logger Logger) *Archive {
	return &Archive{
		storage:  storage,
		notifier: notifier,
		target:   target,
		logger:   logger,
	}
}

func (uc *Archive) Upload(ctx context.Context, path string) error {
	name := filepath.Base(path)

	uc.logger.Infof("Uploading %s to %s...", name, uc.target)
	if err := uc.storage.Upload(ctx, path, name); err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	uc.logger.Infof("Successfully uploaded %s to %s", name, uc.target)

	uc.notifier.Notify(fmt.Sprintf("📦 Backup uploaded to %s: %s", uc.target, name))
	return nil
}
