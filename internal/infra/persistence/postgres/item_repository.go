package postgres

import (
	"context"

	"museum/internal/domain/entity"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/domain/repository"
	"museum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the domain.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// FindByID retrieves a single item by its system-assigned ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return toItemDomain(&itemM), nil
}

// FindAll retrieves every item in store order.
func (repo *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	if err := repo.db.WithContext(ctx).Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, toItemDomain(&itemModels[i]))
	}

	return items, nil
}

// Create persists a new item entity to the database.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies an existing item entity in the database.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes the item with the given ID. Zero affected rows is not an error.
func (repo *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ItemModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete item")
	}

	return nil
}

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:         data.ID,
		Path:       data.Path,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Gender:     data.Gender,
		Membership: data.Membership,
		Part:       data.Part,
		Age:        data.Age,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:         data.ID,
		Path:       data.Path,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Gender:     data.Gender,
		Membership: data.Membership,
		Part:       data.Part,
		Age:        data.Age,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
