package repositories

import (
	"gin-crud-api/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	IRecordRepository[models.Item]
	CreateWithOwner(newItem models.Item, ownerID uint) (*models.Item, error)
}

type ItemRepository struct {
	RecordRepository[models.Item]
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{RecordRepository[models.Item]{db: db}}
}

// CreateWithOwner stamps the owner from the resolved identity, overriding
// anything the payload may have carried.
func (r *ItemRepository) CreateWithOwner(newItem models.Item, ownerID uint) (*models.Item, error) {
	newItem.OwnerID = ownerID
	return r.Create(newItem)
}
