package handler

import (
	"context"
	"net/http"
	"testing"

	"museum/internal/delivery/http/middleware"
	"museum/internal/delivery/http/validator"
	"museum/internal/domain/entity"
	"museum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItemUsecase struct {
	createFn func(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error)
	listFn   func(ctx context.Context) ([]*entity.Item, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	updateFn func(ctx context.Context, input *usecase.UpdateItemInput) (*entity.Item, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubItemUsecase) Create(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
	return s.createFn(ctx, input)
}

func (s *stubItemUsecase) List(ctx context.Context) ([]*entity.Item, error) {
	return s.listFn(ctx)
}

func (s *stubItemUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemUsecase) Update(ctx context.Context, input *usecase.UpdateItemInput) (*entity.Item, error) {
	return s.updateFn(ctx, input)
}

func (s *stubItemUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func newItemTestServer(uc usecase.ItemUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := newDiscardLogger()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewItemHandler(uc, logger)
	e.POST("/items", h.Create)
	e.GET("/items", h.List)
	e.GET("/items/:id", h.Get)
	e.PUT("/items/:id", h.Update)
	e.DELETE("/items/:id", h.Delete)

	return e
}

func TestItemHandler_Create(t *testing.T) {
	uc := &stubItemUsecase{
		createFn: func(_ context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
			return &entity.Item{ID: uuid.New(), Path: input.Path, Part: input.Part}, nil
		},
	}
	e := newItemTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/items", `{"path":"/images/abc.jpg","part":"antiquities"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/images/abc.jpg")
	assert.Contains(t, rec.Body.String(), "antiquities")
}

func TestItemHandler_Get_MalformedID(t *testing.T) {
	e := newItemTestServer(&stubItemUsecase{})

	rec := doJSON(e, http.MethodGet, "/items/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ITEM_NOT_FOUND")
}

func TestItemHandler_Update_PartialBody(t *testing.T) {
	var got *usecase.UpdateItemInput
	id := uuid.New()
	uc := &stubItemUsecase{
		updateFn: func(_ context.Context, input *usecase.UpdateItemInput) (*entity.Item, error) {
			got = input

			return &entity.Item{ID: input.ID, Part: *input.Part}, nil
		},
	}
	e := newItemTestServer(uc)

	rec := doJSON(e, http.MethodPut, "/items/"+id.String(), `{"part":"sculpture"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	require.NotNil(t, got.Part)
	assert.Equal(t, "sculpture", *got.Part)
	assert.Nil(t, got.Path)
}

func TestItemHandler_Delete(t *testing.T) {
	var deleted uuid.UUID
	id := uuid.New()
	uc := &stubItemUsecase{
		deleteFn: func(_ context.Context, got uuid.UUID) error {
			deleted = got

			return nil
		},
	}
	e := newItemTestServer(uc)

	rec := doJSON(e, http.MethodDelete, "/items/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, deleted)
}
