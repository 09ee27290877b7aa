package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

type fakeLogger struct {
	errors []string
	warns  []string
}

func (l *fakeLogger) Infof(string, ...interface{}) {}

func (l *fakeLogger) Errorf(template string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(template, args...))
}

func (l *fakeLogger) Warnf(template string, args ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(template, args...))
}

type fakeConsole struct {
	infos     []string
	successes []string
	errors    []string
	plains    []string
}

func (c *fakeConsole) Info(message string)    { c.infos = append(c.infos, message) }
func (c *fakeConsole) Success(message string) { c.successes = append(c.successes, message) }
func (c *fakeConsole) Error(message string)   { c.errors = append(c.errors, message) }
func (c *fakeConsole) Plain(message string)   { c.plains = append(c.plains, message) }

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

type fakeSender struct {
	sent []string
	err  error
}

func (s *fakeSender) Send(message string) error {
	s.sent = append(s.sent, message)
	return s.err
}

type fakeDatabase struct{}

func (fakeDatabase) DumpCommand() []string { return []string{"pg_dumpall", "-U", "dev"} }
func (fakeDatabase) Extension() string     { return ".sql.gz" }
func (fakeDatabase) GetName() string       { return "zenndi-postgres" }
func (fakeDatabase) GetType() string       { return "postgresql" }

type fakeStream struct {
	io.Reader
	closeErr error
}

func (s *fakeStream) Close() error {
	return s.closeErr
}

type fakeRuntime struct {
	output   []byte
	execErr  error
	closeErr error

	container string
	argv      []string
	calls     int
}

func (r *fakeRuntime) Name() string { return "fake" }

func (r *fakeRuntime) Exec(_ context.Context, container string, argv []string) (io.ReadCloser, error) {
	r.calls++
	r.container = container
	r.argv = argv
	if r.execErr != nil {
		return nil, r.execErr
	}
	return &fakeStream{Reader: bytes.NewReader(r.output), closeErr: r.closeErr}, nil
}

// fakeCompressor reads one chunk and then fails as a full disk would.
type fakeCompressor struct {
	err error
}

func (c *fakeCompressor) Compress(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, 16)
	n, _ := src.Read(buf)
	written, _ := dst.Write(buf[:n])
	return int64(written), c.err
}

func (c *fakeCompressor) Decompress(dst io.Writer, src io.Reader) (int64, error) {
	return io.Copy(dst, src)
}

type fakeUploader struct {
	paths []string
	err   error
}

func (u *fakeUploader) Upload(_ context.Context, path string) error {
	u.paths = append(u.paths, path)
	return u.err
}

type fakeStorage struct {
	uploads map[string]string
	err     error
}

func (s *fakeStorage) Upload(_ context.Context, localPath, remoteName string) error {
	if s.err != nil {
		return s.err
	}
	if s.uploads == nil {
		s.uploads = map[string]string{}
	}
	s.uploads[remoteName] = localPath
	return nil
}

func (s *fakeStorage) Download(_ context.Context, remoteName string, w io.Writer) error {
	localPath, ok := s.uploads[remoteName]
	if !ok {
		return errors.New("not found")
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
