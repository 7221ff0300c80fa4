package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user created successfully"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "invalid credentials"

	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	SignupRequest struct {
		Username string `json:"username" validate:"required,min=3,max=32"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	SignupResponse struct {
		UserID string `json:"userId"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
)
