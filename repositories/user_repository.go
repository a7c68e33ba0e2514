package repositories

import (
	"gin-crud-api/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	IRecordRepository[models.User]
	FindByEmail(email string) (*models.User, error)
}

type UserRepository struct {
	RecordRepository[models.User]
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{RecordRepository[models.User]{db: db}}
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}
