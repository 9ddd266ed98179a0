package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{userRepo: userRepo}
}

// Register creates an account. The role is always forced to the default, a
// promotion to creator or admin is a separate admin action.
func (s *UserServiceImpl) Register(ctx context.Context, user *models.User) error {
	user.Role = models.RoleUser

	if _, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("look up existing user: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the lookup; the unique
		// email index decides the race.
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	slog.Info("user registered", "email", user.Email)
	return nil
}

// GetAll lists every account
func (s *UserServiceImpl) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// GetRole resolves an email to its role. An unknown email answers the
// default role, the same answer a fresh account would get.
func (s *UserServiceImpl) GetRole(ctx context.Context, email string) (models.Role, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.RoleUser, nil
		}
		return "", fmt.Errorf("look up user role: %w", err)
	}
	return user.Role, nil
}

// UpdateRole sets the role of an existing account
func (s *UserServiceImpl) UpdateRole(ctx context.Context, email string, role models.Role) error {
	if err := s.userRepo.UpdateRole(ctx, email, role); err != nil {
		return err
	}
	slog.Info("user role updated", "email", email, "role", role)
	return nil
}
