package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local writes attachments to a directory served as /uploads.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		dir = "uploads"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory, %w", err)
	}

	return &Local{dir: dir}, nil
}

func (l *Local) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	f, err := os.Create(filepath.Join(l.dir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file, %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload file, %w", err)
	}

	return "/uploads/" + key, nil
}

// Dir exposes the backing directory so the router can serve it statically.
func (l *Local) Dir() string {
	return l.dir
}
