package repository

import (
	"context"
	"velocity-shop/internal/model"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
}

type userRepoImpl struct {
	users []model.User
}

func NewUserRepository() UserRepository {
	return &userRepoImpl{
		users: seedUsers,
	}
}

// List returns the accounts in seed order; the first one is the primary account.
func (r *userRepoImpl) List(ctx context.Context) ([]model.User, error) {
	return append([]model.User(nil), r.users...), nil
}

// plaintext on purpose: this is a demo credential list
var seedUsers = []model.User{
	{ID: "user1", Username: "user1", Password: "user@1"},
	{ID: "user2", Username: "user2", Password: "user@2"},
	{ID: "user3", Username: "user3", Password: "user@3"},
	{ID: "user4", Username: "user4", Password: "user@4"},
	{ID: "user5", Username: "user5", Password: "user@5"},
}
