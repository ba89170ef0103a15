// Package auth provides demo credential authentication. The ledger core
// itself never sees credentials; it only receives the user id carried in the
// token claims.
package auth

import (
	"errors"
	"log"

	"finflow/internal/models"
	"finflow/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenGeneration    = errors.New("error generating tokens")
)

type Service interface {
	Login(email, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
}

type service struct {
	users map[string]models.User
}

// NewService creates an auth service over a fixed set of demo users.
func NewService(users []models.User) Service {
	byEmail := make(map[string]models.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return &service{users: byEmail}
}

func (s *service) Login(email, password string) (*models.User, string, string, error) {
	email = utils.Sanitize(email)

	user, ok := s.users[email]
	if !ok {
		log.Printf("login failed: no user for %q", email)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: bad password for user %s", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		log.Println("error generating tokens:", err)
		return nil, "", "", ErrTokenGeneration
	}

	return &user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	for _, u := range s.users {
		if u.ID == claims.UserID {
			return utils.GenerateTokens(&models.UserClaims{
				UserID: u.ID,
				Email:  u.Email,
				Name:   u.Name,
			})
		}
	}
	return "", "", errors.New("user not found")
}

// DemoUser builds the built-in demo account with a bcrypt-hashed password.
func DemoUser(email, name, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:       "1",
		Email:    email,
		Name:     name,
		Password: string(hash),
	}, nil
}
