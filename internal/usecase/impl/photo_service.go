package impl

import (
	"context"
	"log/slog"

	"museum/config"
	deliverycontext "museum/internal/delivery/context"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/domain/service"
	"museum/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// photoService implements the PhotoUsecase interface.
type photoService struct {
	storage      service.PhotoStorage
	maxPhotoSize int64
	logger       *slog.Logger
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	Storage service.PhotoStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	var maxPhotoSize int64
	if params.Config != nil && params.Config.Upload != nil {
		maxPhotoSize = params.Config.Upload.MaxPhotoSize
	}

	return &photoService{
		storage:      params.Storage,
		maxPhotoSize: maxPhotoSize,
		logger:       params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores one photo and returns the path a catalog item can reference.
func (srv *photoService) Upload(ctx context.Context, input *usecase.UploadPhotoInput) (*usecase.UploadPhotoOutput, error) {
	if input.Content == nil || input.Size == 0 {
		return nil, errors.Wrap(domainerrors.ErrPhotoMissing, "photo upload rejected")
	}

	if srv.maxPhotoSize > 0 && input.Size > srv.maxPhotoSize {
		srv.log(ctx).Warn("Photo upload exceeds size limit",
			slog.String("filename", input.Filename),
			slog.Int64("size", input.Size),
			slog.Int64("limit", srv.maxPhotoSize))

		return nil, errors.Wrap(domainerrors.ErrPhotoTooLarge, "photo upload rejected")
	}

	path, err := srv.storage.Save(ctx, input.Filename, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store photo", slog.String("filename", input.Filename), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store photo")
	}

	srv.log(ctx).Debug("Photo stored", slog.String("path", path))

	return &usecase.UploadPhotoOutput{Path: path}, nil
}
