package domain

import (
	"context"
	"io"
)

type Storage interface {
	Upload(ctx context.Context, localPath string, remoteName string) error
	Download(ctx context.Context, remoteName string, w io.Writer) error
}
