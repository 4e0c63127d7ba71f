package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jobportal/portal/internal/core/domain"
)

// File stores the token in a single file readable only by the owner. With a
// Sealer the file holds the sealed token.
type File struct {
	path   string
	sealer *Sealer

	mu sync.Mutex
}

// NewFile returns a store writing to path. sealer may be nil.
func NewFile(path string, sealer *Sealer) *File {
	return &File{path: path, sealer: sealer}
}

// Path is the location of the token file.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", domain.ErrTokenNotFound
	}
	if f.sealer == nil {
		return token, nil
	}
	return f.sealer.Open(token)
}

// Set replaces the file atomically.
func (f *File) Set(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := token
	if f.sealer != nil {
		sealed, err := f.sealer.Seal(token)
		if err != nil {
			return err
		}
		data = sealed
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("create token file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod token file: %w", err)
	}
	if _, err := tmp.WriteString(data + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close token file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

func (f *File) Delete(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
