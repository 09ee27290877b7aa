package usecase

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/zenndi/zenndi-ops/internal/domain"
)

type Logger interface {
	Infof(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

type LocalStorage interface {
	Create(filename string) (*os.File, error)
}

type Uploader interface {
	Upload(ctx context.Context, path string) error
}

// Backup dumps every database of one container into a compressed artifact
// and hands it to the uploader. Each call makes exactly one attempt.
type Backup struct {
	db         domain.Database
	container  string
	runtime    domain.ContainerRuntime
	local      LocalStorage
	compressor domain.Compressor
	uploader   Uploader
	notifier   domain.Notifier
	console    Console
	logger     Logger
	prefix     string
	now        func() time.Time
}

func NewBackup(
	db domain.Database,
	container string,
	runtime domain.ContainerRuntime,
	local LocalStorage,
	compressor domain.Compressor,
	uploader Uploader,
	notifier domain.Notifier,
	console Console,
	logger Logger,
	prefix string,
) *Backup {
	return &Backup{
		db:         db,
		container:  container,
		runtime:    runtime,
		local:      local,
		compressor: compressor,
		uploader:   uploader,
		notifier:   notifier,
		console:    console,
		logger:     logger,
		prefix:     prefix,
		now:        time.Now,
	}
}

// Execute returns the artifact path and true on success. Any failure, from
// the dump through the upload, is sent to the notifier once and reported as
// ("", false). In silent mode the local "backup created" line is skipped.
func (uc *Backup) Execute(ctx context.Context, silent bool) (string, bool) {
	path, err := uc.run(ctx, silent)
	if err != nil {
		uc.logger.Errorf("[%s] Backup failed: %v", uc.container, err)
		uc.notifier.Notify(fmt.Sprintf("❌ Backup failed: %v", err))
		return "", false
	}
	return path, true
}

func (uc *Backup) run(ctx context.Context, silent bool) (string, error) {
	start := uc.now()
	filename := domain.ArtifactName(uc.prefix, start, uc.db.Extension())

	uc.logger.Infof("[%s] Starting %s backup via %s...", uc.container, uc.db.GetType(), uc.runtime.Name())

	path, err := uc.dump(ctx, filename)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(path); err == nil {
		uc.logger.Infof("[%s] Backup created in %s, size: %.2f MB",
			uc.container, time.Since(start).Round(time.Millisecond), float64(info.Size())/(1024*1024))
	}

	if !silent {
		uc.console.Success(fmt.Sprintf("✅ Backup created: %s", filename))
	}

	if err := uc.uploader.Upload(ctx, path); err != nil {
		return "", err
	}

	return path, nil
}

// dump streams the container's dump output through the compressor into a
// new artifact file. A truncated file is removed.
func (uc *Backup) dump(ctx context.Context, filename string) (string, error) {
	file, err := uc.local.Create(filename)
	if err != nil {
		return "", err
	}
	path := file.Name()

	src, err := uc.runtime.Exec(ctx, uc.container, uc.db.DumpCommand())
	if err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("start dump: %w", err)
	}

	_, copyErr := uc.compressor.Compress(file, src)
	waitErr := src.Close()
	closeErr := file.Close()

	// A failed write closes the pipe early, so the dump's own exit error is
	// usually a broken pipe; keep the write error first.
	switch {
	case copyErr != nil && waitErr != nil:
		err = fmt.Errorf("compression: %w; dump: %w", copyErr, waitErr)
	case waitErr != nil:
		err = fmt.Errorf("dump: %w", waitErr)
	case copyErr != nil:
		err = fmt.Errorf("compression: %w", copyErr)
	case closeErr != nil:
		err = fmt.Errorf("finalize artifact: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}
