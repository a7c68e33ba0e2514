package services

import (
	"errors"

	"gin-crud-api/dto"
	"gin-crud-api/models"
	"gin-crud-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IUserService interface {
	FindAll(skip int, limit int) (*[]models.User, error)
	FindById(userID uint) (*models.User, error)
	Create(input dto.CreateUserInput) (*models.User, error)
	Update(userID uint, input dto.UpdateUserInput) (*models.User, error)
	Delete(userID uint) (*models.User, error)
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll(skip int, limit int) (*[]models.User, error) {
	return s.repository.FindPage(skip, limit)
}

func (s *UserService) FindById(userID uint) (*models.User, error) {
	user, err := s.repository.Find(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(input dto.CreateUserInput) (*models.User, error) {
	_, err := s.repository.FindByEmail(input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := models.User{
		Email:          input.Email,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
	}
	created, err := s.repository.Create(newUser)
	if err != nil {
		// 事前チェックをすり抜けた同時作成はDBの一意制約で止まる
		if isDuplicateKey(err) {
			return nil, ErrEmailConflict
		}
		return nil, err
	}
	return created, nil
}

func (s *UserService) Update(userID uint, input dto.UpdateUserInput) (*models.User, error) {
	targetUser, err := s.FindById(userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		targetUser.Email = *input.Email
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		targetUser.HashedPassword = string(hashedPassword)
	}
	if input.IsActive != nil {
		targetUser.IsActive = *input.IsActive
	}

	updated, err := s.repository.Save(targetUser)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailConflict
		}
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(userID uint) (*models.User, error) {
	deleted, err := s.repository.Remove(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return deleted, nil
}
