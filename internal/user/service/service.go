package service

import (
	"context"
	"errors"
	"time"

	"userapi/internal/common/logger"
	"userapi/internal/common/mapper"
	"userapi/internal/common/response"
	"userapi/internal/user/domain"
	userrepo "userapi/internal/user/repository"
)

// UserService owns the validate-then-delegate-then-respond sequence for each
// operation. Success outcomes are returned as ready-to-write envelopes;
// failures come back as domain errors carrying their own status mapping.
type UserService struct {
	repo userrepo.Repository
	now  func() time.Time
	log  *logger.Logger
}

func NewUserService(repo userrepo.Repository, log *logger.Logger) *UserService {
	return &UserService{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

type CreateInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

func (s *UserService) CreateUser(ctx context.Context, input CreateInput) (response.Envelope, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "create_user_attempt",
	}).Info("create user attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_validation_failed",
		}).Warnf("create user validation failed: %v", err)
		return response.Envelope{}, ErrInvalidCredentials
	}

	user, err := s.repo.Save(ctx, domain.User{
		Username:  input.Username,
		Password:  input.Password,
		CreatedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "create_user_username_exists",
			}).Warn("create user failed: already exists")
			return response.Envelope{}, ErrUsernameTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_save_failed",
		}).Errorf("create user failed: %v", err)
		return response.Envelope{}, err
	}

	incrementUsersCreated()

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "create_user_success",
	}).Info("create user success")

	return response.New(201, "User created successfully").
		WithData("user", mapper.UserToDTO(user)), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (response.Envelope, error) {
	s.log.WithFields(ctx, logger.Fields{
		"user_id": id,
		"action":  "get_user_attempt",
	}).Debug("get user attempt")

	user, err := s.repo.FindByID(ctx, domain.ID(id))
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			recordUserFetch("not_found")
			s.log.WithFields(ctx, logger.Fields{
				"user_id": id,
				"action":  "get_user_not_found",
			}).Warn("get user failed: not found")
			return response.Envelope{}, ErrUserNotFound
		}
		recordUserFetch("error")
		s.log.WithFields(ctx, logger.Fields{
			"user_id": id,
			"action":  "get_user_fetch_failed",
		}).Errorf("get user failed: %v", err)
		return response.Envelope{}, err
	}

	recordUserFetch("success")

	return response.New(200, "User fetched successfully").
		WithData("user", mapper.UserToDTO(user)), nil
}

func (s *UserService) LoginUser(ctx context.Context, input LoginInput) (response.Envelope, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_validation_failed",
		}).Warnf("login validation failed: %v", err)
		return response.Envelope{}, ErrInvalidLoginInput
	}

	user, err := s.repo.FindByCredentials(ctx, input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userrepo.ErrUserNotFound):
			recordUserLogin("not_found")
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			return response.Envelope{}, ErrUserNotFound
		case errors.Is(err, userrepo.ErrPasswordMismatch):
			recordUserLogin("invalid_password")
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_invalid_password",
			}).Warn("login failed: invalid password")
			return response.Envelope{}, ErrPasswordMismatch
		}
		recordUserLogin("error")
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return response.Envelope{}, err
	}

	recordUserLogin("success")

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "login_success",
	}).Info("login success")

	return response.New(200, "Login successful").
		WithData("user", mapper.UserToDTO(user)), nil
}
