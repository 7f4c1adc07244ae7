package service

import (
	commonerrors "userapi/internal/common/errors"
)

var (
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryValidation,
		400,
		"Invalid credentials",
	)

	ErrInvalidLoginInput = commonerrors.NewDomainError(
		"INVALID_LOGIN_INPUT",
		commonerrors.CategoryValidation,
		400,
		"Invalid username or password",
	)

	ErrUserNotFound = commonerrors.NewDomainError(
		"USER_NOT_FOUND",
		commonerrors.CategoryNotFound,
		404,
		"User not found",
	)

	ErrPasswordMismatch = commonerrors.NewDomainError(
		"PASSWORD_MISMATCH",
		commonerrors.CategoryUnauthorized,
		401,
		"Invalid username or password",
	)

	ErrUsernameTaken = commonerrors.NewDomainError(
		"USERNAME_TAKEN",
		commonerrors.CategoryConflict,
		409,
		"Username already exists",
	)
)
