// Package storage provides the blob-backed implementation of photo storage.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"museum/config"
	"museum/internal/domain/service"
	"museum/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// photoStorage stores uploaded photos in a gocloud blob bucket backed by the
// local filesystem and serves them under the configured public path.
type photoStorage struct {
	bucket     *blob.Bucket
	publicPath string
	logger     *slog.Logger
}

// New opens the local photo bucket and registers its shutdown hook.
func New(params Params) (service.PhotoStorage, error) {
	dir := "./images"
	publicPath := "/images"
	if params.Config.Upload != nil {
		if params.Config.Upload.Dir != "" {
			dir = params.Config.Upload.Dir
		}
		if params.Config.Upload.PublicPath != "" {
			publicPath = params.Config.Upload.PublicPath
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create photo directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.Wrap(bucket.Close(), "failed to close photo bucket")
		},
	})

	return &photoStorage{
		bucket:     bucket,
		publicPath: publicPath,
		logger:     params.Logger,
	}, nil
}

// Save streams the photo into the bucket under a generated name and returns
// the public path. The original filename only contributes its extension.
func (s *photoStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := uuid.New().String() + sanitizeExtension(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: mime.TypeByExtension(filepath.Ext(key)),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open photo writer")
	}

	written, err := io.Copy(writer, r)
	if err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write photo")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize photo write")
	}

	s.logger.Debug("Stored photo",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(written)),
	)

	return path.Join(s.publicPath, key), nil
}

// sanitizeExtension keeps a short, lowercase extension from the uploaded
// filename and drops anything suspicious.
func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || len(ext) > 8 || strings.ContainsAny(ext, "/\\") {
		return ""
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
