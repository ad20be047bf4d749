package usecase

import (
	"context"
	"io"
)

// UploadPhotoInput carries one uploaded file. Size comes from the multipart
// header and is checked against the configured limit before any bytes are read.
type UploadPhotoInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadPhotoOutput returns the public path where the stored photo is served.
type UploadPhotoOutput struct {
	Path string
}

// PhotoUsecase defines the interface for photo upload operations.
type PhotoUsecase interface {
	Upload(ctx context.Context, input *UploadPhotoInput) (*UploadPhotoOutput, error)
}
