package services

import (
	"errors"

	"gin-crud-api/dto"
	"gin-crud-api/models"
	"gin-crud-api/repositories"

	"gorm.io/gorm"
)

type IItemService interface {
	FindAll(skip int, limit int) (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	Create(input dto.CreateItemInput, ownerID uint) (*models.Item, error)
	Update(itemID uint, actor *models.User, input dto.UpdateItemInput) (*models.Item, error)
	Delete(itemID uint, actor *models.User) (*models.Item, error)
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll(skip int, limit int) (*[]models.Item, error) {
	return s.repository.FindPage(skip, limit)
}

func (s *ItemService) FindById(itemID uint) (*models.Item, error) {
	item, err := s.repository.Find(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Create(input dto.CreateItemInput, ownerID uint) (*models.Item, error) {
	newItem := models.Item{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	}
	return s.repository.CreateWithOwner(newItem, ownerID)
}

func (s *ItemService) Update(itemID uint, actor *models.User, input dto.UpdateItemInput) (*models.Item, error) {
	targetItem, err := s.FindById(itemID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, targetItem) {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		targetItem.Title = *input.Title
	}
	if input.Description != nil {
		targetItem.Description = *input.Description
	}
	if input.Price != nil {
		targetItem.Price = *input.Price
	}
	return s.repository.Save(targetItem)
}

func (s *ItemService) Delete(itemID uint, actor *models.User) (*models.Item, error) {
	targetItem, err := s.FindById(itemID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, targetItem) {
		return nil, ErrForbidden
	}

	deleted, err := s.repository.Remove(targetItem.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return deleted, nil
}
