package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/artemkv/storefront/internal/hash"
	"github.com/artemkv/storefront/internal/models"
	"github.com/artemkv/storefront/internal/repo"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// Register creates a user with a bcrypt password hash and returns a
// signed bearer token for the new identity.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("email, password and name are required: %w", ErrValidation)
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}
	// no pre-check: the unique index on email is the authority, so two
	// concurrent signups cannot both get past a read.
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", fmt.Errorf("email %s already registered: %w", email, ErrConflict)
		}
		return nil, "", err
	}

	token, err := s.signToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and issues a token. A wrong email and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadLogin
		}
		return nil, "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrBadLogin
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}
