package service

import (
	"context"

	"userapi/internal/user/domain"
	userrepo "userapi/internal/user/repository"
)

type mockRepository struct {
	saveFunc              func(ctx context.Context, user domain.User) (domain.User, error)
	findByIDFunc          func(ctx context.Context, id domain.ID) (domain.User, error)
	findByCredentialsFunc func(ctx context.Context, username, password string) (domain.User, error)
}

func (m *mockRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, user)
	}
	saved := user
	saved.ID = "user-123"
	return saved, nil
}

func (m *mockRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.User{}, userrepo.ErrUserNotFound
}

func (m *mockRepository) FindByCredentials(ctx context.Context, username, password string) (domain.User, error) {
	if m.findByCredentialsFunc != nil {
		return m.findByCredentialsFunc(ctx, username, password)
	}
	return domain.User{}, userrepo.ErrUserNotFound
}
