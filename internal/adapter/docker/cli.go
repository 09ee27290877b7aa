package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CLI runs commands in a container through the docker binary.
type CLI struct {
	binary string
}

func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = "docker"
	}
	return &CLI{binary: binary}
}

func (c *CLI) Name() string {
	return "docker-cli"
}

func (c *CLI) Exec(ctx context.Context, containerName string, argv []string) (io.ReadCloser, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command for container %s", containerName)
	}

	args := append([]string{"exec", containerName}, argv...)
	cmd := exec.CommandContext(ctx, c.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s stdout: %w", argv[0], err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", c.binary, err)
	}

	return &process{
		stdout: stdout,
		cmd:    cmd,
		stderr: &stderr,
		name:   argv[0],
	}, nil
}

type process struct {
	stdout io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer
	name   string
	closed bool
	err    error
}

func (p *process) Read(b []byte) (int, error) {
	return p.stdout.Read(b)
}

// Close releases the read end first so a producer blocked on a full pipe
// exits, then waits for the process.
func (p *process) Close() error {
	if p.closed {
		return p.err
	}
	p.closed = true

	_ = p.stdout.Close()
	if err := p.cmd.Wait(); err != nil {
		p.err = fmt.Errorf("%s failed: %w, output: %s", p.name, err, strings.TrimSpace(p.stderr.String()))
	}
	return p.err
}
