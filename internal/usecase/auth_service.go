package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/user"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthService is the prototype account flow: plain credential storage and an
// exact-match login check. Real hashing is deliberately out of scope.
type AuthService struct {
	userRepo user.Repository
	idGen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewAuthService(userRepo user.Repository, idGen idgen.Generator, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		userRepo: userRepo,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if input.Email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.Password == "" {
		return user.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	_, exists, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return user.User{}, fmt.Errorf("lookup email: %w", err)
	}
	if exists {
		return user.User{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, input.Email)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	account := user.User{
		ID:           userID,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.Password,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := account.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", account.ID)

	return account, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return user.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	account, exists, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return user.User{}, fmt.Errorf("lookup email: %w", err)
	}
	if !exists || account.PasswordHash != input.Password {
		return user.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return account, nil
}
