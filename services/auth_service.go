package services

import (
	"errors"
	"fmt"
	"time"

	"gin-crud-api/constants"
	"gin-crud-api/models"
	"gin-crud-api/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Login(email string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
	ResolveFixedIdentity() (*models.User, error)
}

type AuthService struct {
	userRepository  repositories.IUserRepository
	tokenRepository repositories.ITokenRepository
	secretKey       string
}

func NewAuthService(userRepository repositories.IUserRepository, tokenRepository repositories.ITokenRepository, secretKey string) IAuthService {
	return &AuthService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		secretKey:       secretKey,
	}
}

func (s *AuthService) Login(email string, password string) (*string, error) {
	foundUser, err := s.userRepository.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createToken(foundUser.ID, foundUser.Email)
}

func (s *AuthService) createToken(userID uint, email string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	var user *models.User
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if float64(time.Now().Unix()) > claims["exp"].(float64) {
			return nil, jwt.ErrTokenExpired
		}

		isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
		if err != nil {
			return nil, err
		}
		if isBlacklisted {
			return nil, fmt.Errorf("token is blacklisted")
		}

		user, err = s.userRepository.FindByEmail(claims["email"].(string))
		if err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *AuthService) Logout(tokenString string) error {
	token, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(time.Hour).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}

// ResolveFixedIdentity is the dev-mode identity resolver. It ignores any
// credential, returns user id 1, and provisions the fixed user on first use.
// Not a security boundary.
func (s *AuthService) ResolveFixedIdentity() (*models.User, error) {
	user, err := s.userRepository.Find(1)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// id 1が欠番でも固定ユーザーを二重作成しない
	user, err = s.userRepository.FindByEmail(constants.DevIdentityEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(constants.DevIdentityPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.userRepository.Create(models.User{
		Email:          constants.DevIdentityEmail,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
	})
}
