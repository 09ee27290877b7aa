package domain

import (
	"context"
	"io"
)

// ContainerRuntime starts a command inside a running container. The returned
// reader yields the command's stdout; Close waits for the command and reports
// a non-zero exit as an error.
type ContainerRuntime interface {
	Exec(ctx context.Context, container string, argv []string) (io.ReadCloser, error)
	Name() string
}
