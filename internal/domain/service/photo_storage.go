package service

import (
	"context"
	"io"
)

// PhotoStorage persists uploaded photo bytes and returns the public path the
// stored photo will be served from.
type PhotoStorage interface {
	// Save writes the photo under a generated name derived from the original
	// filename's extension and returns the public path.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
