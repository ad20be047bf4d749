package handler

import (
	"log/slog"
	"net/http"

	"museum/internal/delivery/http/response"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// photoFormField is the multipart field name clients upload under.
const photoFormField = "photo"

// PhotoHandler holds dependencies for photo upload handlers.
type PhotoHandler struct {
	uc     usecase.PhotoUsecase
	logger *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.PhotoUsecase, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		uc:     uc,
		logger: logger,
	}
}

type uploadPhotoResponse struct {
	Path string `json:"path"`
}

// Upload stores one photo and returns the path a catalog item can reference.
func (h *PhotoHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrPhotoMissing.WithDetails("multipart field 'photo' is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	output, err := h.uc.Upload(c.Request().Context(), &usecase.UploadPhotoInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, uploadPhotoResponse{Path: output.Path})
}
