// Package auth issues the bearer tokens the access gate checks.
package auth

import (
	"errors"
	"fmt"
	"time"

	"library-services/internal/config"
	"library-services/internal/models"
	"library-services/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers unknown usernames and wrong passwords
// alike, so a login failure does not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	users *store.UserStore
	cfg   config.AuthConfig
}

func NewService(users *store.UserStore, cfg config.AuthConfig) *Service {
	return &Service{users: users, cfg: cfg}
}

func (s *Service) Register(username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	return s.users.Create(user)
}

// Login verifies the credentials and returns a signed access token
// carrying the user id and an expiry claim.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     time.Now().Add(s.cfg.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
