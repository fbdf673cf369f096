package services

import (
	"context"
	"errors"

	"local-market/models"
	"local-market/repositories"

	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) Update(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	u, err := s.repo.Update(ctx, id, req)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) SavePushToken(ctx context.Context, userID int, token string) error {
	saved, err := s.repo.SavePushToken(ctx, userID, token)
	if err != nil {
		return err
	}
	if !saved {
		return ErrUserNotFound
	}
	return nil
}
