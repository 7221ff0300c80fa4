package user

import (
	"context"
	"errors"

	"DishCraft-Backend/domain"
	"DishCraft-Backend/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultBcryptCost matches the work factor the original service used.
const defaultBcryptCost = 10

type (
	UserService interface {
		Register(ctx context.Context, req domain.SignupRequest) (domain.SignupResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	userService struct {
		userRepository UserRepository
		bcryptCost     int
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     defaultBcryptCost,
	}
}

// NewUserServiceWithCost is for tests, where bcrypt.MinCost keeps hashing
// from dominating the run time.
func NewUserServiceWithCost(userRepository UserRepository, cost int) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cost,
	}
}

func (s *userService) Register(ctx context.Context, req domain.SignupRequest) (domain.SignupResponse, error) {
	exists, err := s.userRepository.IdentityExists(ctx, req.Username, req.Email)
	if err != nil {
		return domain.SignupResponse{}, err
	}
	if exists {
		return domain.SignupResponse{}, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return domain.SignupResponse{}, err
	}

	user := entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.SignupResponse{}, err
	}

	return domain.SignupResponse{UserID: user.ID.String()}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
