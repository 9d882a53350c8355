package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LocalStorage keeps files under a directory on the local disk.
type LocalStorage struct {
	root    string
	baseURL string
	logger  *logrus.Logger
}

func NewLocalStorage(root, baseURL string, logger *logrus.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}, nil
}

func (s *LocalStorage) StoreFile(ctx context.Context, data []byte, name, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := uniqueObjectPath(name, folder)
	full, err := s.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.WithField("path", rel).Debug("File stored on disk")
	return rel, nil
}

// DeleteFile treats an already missing file as deleted.
func (s *LocalStorage) DeleteFile(ctx context.Context, filePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filePath == "" {
		return nil
	}

	full, err := s.resolve(filePath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("path", filePath).Debug("File deleted from disk")
	return nil
}

func (s *LocalStorage) URLFor(filePath string) string {
	if filePath == "" {
		return ""
	}
	return s.baseURL + "/" + strings.TrimPrefix(path.Clean("/"+filePath), "/")
}

// resolve maps a stored relative path into the root and rejects escapes.
func (s *LocalStorage) resolve(rel string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(rel))
	full := filepath.Join(s.root, filepath.FromSlash(clean))
	root, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes uploads directory", rel)
	}
	return full, nil
}
