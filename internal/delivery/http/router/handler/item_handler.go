package handler

import (
	"log/slog"
	"net/http"

	"museum/internal/delivery/http/response"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for catalog item handlers.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: logger,
	}
}

type createItemRequest struct {
	Path       string `json:"path"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Gender     string `json:"gender"`
	Membership string `json:"membership"`
	Part       string `json:"part"`
	Age        string `json:"age"`
}

type updateItemRequest struct {
	Path       *string `json:"path"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Gender     *string `json:"gender"`
	Membership *string `json:"membership"`
	Part       *string `json:"part"`
	Age        *string `json:"age"`
}

func itemID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrItemNotFound.WithDetails("malformed item id")
	}

	return id, nil
}

// Create catalogs a new item referencing a previously uploaded photo path.
func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid item input")
	}

	item, err := h.uc.Create(c.Request().Context(), &usecase.CreateItemInput{
		Path:       req.Path,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		Membership: req.Membership,
		Part:       req.Part,
		Age:        req.Age,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// List returns every cataloged item.
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Get returns a single item by ID.
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Update mutates an item's display fields.
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid item update input")
	}

	item, err := h.uc.Update(c.Request().Context(), &usecase.UpdateItemInput{
		ID:         id,
		Path:       req.Path,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		Membership: req.Membership,
		Part:       req.Part,
		Age:        req.Age,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Delete removes an item. Unknown IDs succeed.
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
