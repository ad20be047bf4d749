package impl

import (
	"context"
	"log/slog"

	deliverycontext "museum/internal/delivery/context"
	"museum/internal/domain/entity"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/domain/repository"
	"museum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	txManager repository.TransactionManager
	itemRepo  repository.ItemRepository
	logger    *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ItemRepo  repository.ItemRepository
	Logger    *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		txManager: params.TxManager,
		itemRepo:  params.ItemRepo,
		logger:    params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create catalogs a new item.
func (srv *itemService) Create(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
	newItem := &entity.Item{
		Path:       input.Path,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Gender:     input.Gender,
		Membership: input.Membership,
		Part:       input.Part,
		Age:        input.Age,
	}

	// Single write - use the direct repository instance.
	if err := srv.itemRepo.Create(ctx, newItem); err != nil {
		srv.log(ctx).Error("Failed to create item", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Debug("Item created", slog.Any("itemID", newItem.ID))

	return newItem, nil
}

// List returns every cataloged item in store order.
func (srv *itemService) List(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.itemRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// Get returns a single item by ID.
func (srv *itemService) Get(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// Update mutates an item's display fields. Load and save run in one
// transaction so concurrent updates cannot interleave.
func (srv *itemService) Update(ctx context.Context, input *usecase.UpdateItemInput) (*entity.Item, error) {
	var updatedItem *entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.ItemRepo()

		item, err := itemRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return errors.Wrap(domainerrors.ErrItemNotFound, "item update rejected")
			}

			return errors.Wrap(err, "failed to load item for update")
		}

		applyItemChanges(item, input)

		if err := itemRepo.Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update item")
		}

		updatedItem = item

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Item update failed", slog.Any("itemID", input.ID), slog.Any("error", err))

		return nil, err
	}

	return updatedItem, nil
}

// Delete removes an item. Deleting an absent item is a successful no-op.
func (srv *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.itemRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete item", slog.Any("itemID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete item")
	}

	return nil
}

func applyItemChanges(item *entity.Item, input *usecase.UpdateItemInput) {
	if input.Path != nil {
		item.Path = *input.Path
	}
	if input.FirstName != nil {
		item.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		item.LastName = *input.LastName
	}
	if input.Gender != nil {
		item.Gender = *input.Gender
	}
	if input.Membership != nil {
		item.Membership = *input.Membership
	}
	if input.Part != nil {
		item.Part = *input.Part
	}
	if input.Age != nil {
		item.Age = *input.Age
	}
}
