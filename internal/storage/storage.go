// Package storage holds the backends that keep uploaded photo files.
package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"mimarlik-backend/internal/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FileStorage stores and removes uploaded files. Paths returned by StoreFile are
// relative to the backend root and are what the photo rows persist.
type FileStorage interface {
	StoreFile(ctx context.Context, data []byte, name, folder string) (string, error)
	DeleteFile(ctx context.Context, filePath string) error
	URLFor(filePath string) string
}

// New builds the backend selected by cfg.Storage.Driver.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (FileStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMinIO:
		return NewMinIOStorage(ctx, &cfg.MinIO, logger)
	case config.StorageDriverLocal:
		return NewLocalStorage(cfg.Storage.UploadsPath, cfg.Storage.BaseURL, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// uniqueObjectPath keeps the original base name readable and appends a short
// random suffix so repeated uploads never collide.
func uniqueObjectPath(name, folder string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = sanitizeStem(stem)
	if stem == "" {
		stem = "file"
	}

	unique := fmt.Sprintf("%s_%s%s", stem, uuid.New().String()[:8], ext)
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return unique
	}
	return path.Join(folder, unique)
}

func sanitizeStem(stem string) string {
	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	return b.String()
}
