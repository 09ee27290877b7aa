package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
)

const (
	inspectAttempts = 20
	inspectInterval = 100 * time.Millisecond
)

type execClient interface {
	ContainerExecCreate(ctx context.Context, container string, options container.ExecOptions) (types.IDResponse, error)
	ContainerExecAttach(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error)
	ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error)
}

// API runs commands in a container through the Docker Engine API, configured
// from DOCKER_HOST and related environment variables.
type API struct {
	client execClient
	closer io.Closer
}

func NewAPI() (*API, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &API{client: cli, closer: cli}, nil
}

func (a *API) Name() string {
	return "docker-api"
}

func (a *API) Exec(ctx context.Context, containerName string, argv []string) (io.ReadCloser, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command for container %s", containerName)
	}

	created, err := a.client.ContainerExecCreate(ctx, containerName, container.ExecOptions{
		Cmd:          argv,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exec in %s: %w", containerName, err)
	}

	attach, err := a.client.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to attach exec in %s: %w", containerName, err)
	}

	pr, pw := io.Pipe()
	s := &stream{pr: pr, done: make(chan error, 1)}

	go func() {
		defer attach.Close()

		var stderr bytes.Buffer
		_, err := stdcopy.StdCopy(pw, &stderr, attach.Reader)
		if err == nil {
			err = a.exitError(ctx, created.ID, argv[0], &stderr)
		}

		_ = pw.CloseWithError(err)
		s.done <- err
	}()

	return s, nil
}

func (a *API) exitError(ctx context.Context, execID, name string, stderr *bytes.Buffer) error {
	for i := 0; i < inspectAttempts; i++ {
		inspect, err := a.client.ContainerExecInspect(ctx, execID)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", name, err)
		}
		if !inspect.Running {
			if inspect.ExitCode != 0 {
				return fmt.Errorf("%s failed: exit code %d, output: %s",
					name, inspect.ExitCode, strings.TrimSpace(stderr.String()))
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(inspectInterval):
		}
	}
	return fmt.Errorf("%s still running after its output closed", name)
}

func (a *API) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

type stream struct {
	pr     *io.PipeReader
	done   chan error
	closed bool
	err    error
}

func (s *stream) Read(b []byte) (int, error) {
	return s.pr.Read(b)
}

// Close waits for the exec to finish and reports its exit status.
func (s *stream) Close() error {
	if s.closed {
		return s.err
	}
	s.closed = true

	_ = s.pr.Close()
	s.err = <-s.done
	return s.err
}
