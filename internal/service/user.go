package service

import (
	"context"
	"fmt"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser registers the user on first contact. Known users are left
// untouched, so the common path costs one existence check.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	exists, err := s.repository.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if exists {
		return nil
	}

	user := entities.NewUser(userID, chatID)
	if _, err := s.repository.Save(ctx, user); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}
