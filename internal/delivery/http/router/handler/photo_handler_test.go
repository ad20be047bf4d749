package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"museum/internal/delivery/http/middleware"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPhotoUsecase struct {
	uploadFn func(ctx context.Context, input *usecase.UploadPhotoInput) (*usecase.UploadPhotoOutput, error)
}

func (s *stubPhotoUsecase) Upload(ctx context.Context, input *usecase.UploadPhotoInput) (*usecase.UploadPhotoOutput, error) {
	return s.uploadFn(ctx, input)
}

func newPhotoTestServer(uc usecase.PhotoUsecase) *echo.Echo {
	e := echo.New()
	logger := newDiscardLogger()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/photos", NewPhotoHandler(uc, logger).Upload)

	return e
}

func multipartPhoto(t *testing.T, fieldName, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestPhotoHandler_Upload_Success(t *testing.T) {
	var got *usecase.UploadPhotoInput
	uc := &stubPhotoUsecase{
		uploadFn: func(_ context.Context, input *usecase.UploadPhotoInput) (*usecase.UploadPhotoOutput, error) {
			got = input

			return &usecase.UploadPhotoOutput{Path: "/images/stored.jpg"}, nil
		},
	}
	e := newPhotoTestServer(uc)

	body, contentType := multipartPhoto(t, "photo", "bust.jpg", "fake jpeg bytes")
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/images/stored.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "bust.jpg", got.Filename)
	assert.Equal(t, int64(len("fake jpeg bytes")), got.Size)
}

func TestPhotoHandler_Upload_MissingFile(t *testing.T) {
	e := newPhotoTestServer(&stubPhotoUsecase{})

	// Wrong field name: the handler must reject before touching the usecase.
	body, contentType := multipartPhoto(t, "attachment", "bust.jpg", "data")
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PHOTO_MISSING")
}

func TestPhotoHandler_Upload_TooLarge(t *testing.T) {
	uc := &stubPhotoUsecase{
		uploadFn: func(_ context.Context, _ *usecase.UploadPhotoInput) (*usecase.UploadPhotoOutput, error) {
			return nil, domainerrors.ErrPhotoTooLarge.WrapMessage("photo upload rejected")
		},
	}
	e := newPhotoTestServer(uc)

	body, contentType := multipartPhoto(t, "photo", "huge.jpg", "way too many bytes")
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PHOTO_TOO_LARGE")
}
