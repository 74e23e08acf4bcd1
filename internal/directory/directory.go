package directory

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// RegisterUserInput represents the input for registering a supply-chain participant
type RegisterUserInput struct {
	Username string
	Name     string
	Email    string
	Role     domain.Role
}

// Directory manages the users that can hold custody of products
//
//go:generate mockgen -source=directory.go -destination=../mocks/directory.go -package=mocks -mock_names=Directory=MockDirectory
type Directory interface {
	// RegisterUser registers a new user
	RegisterUser(ctx context.Context, input RegisterUserInput) (*schema.User, error)
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*schema.User, error)
	// ListUsers retrieves users, optionally filtered by role
	ListUsers(ctx context.Context, role *domain.Role, limit int) ([]*schema.User, error)
}

type directory struct {
	store store.Store
	clock adapter.Clock
}

// NewDirectory creates a new user directory
func NewDirectory(st store.Store, clock adapter.Clock) Directory {
	return &directory{store: st, clock: clock}
}

func (d *directory) RegisterUser(ctx context.Context, input RegisterUserInput) (*schema.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Username == "" || input.Name == "" {
		return nil, domain.InvalidInput("username and name are required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, domain.InvalidInput("invalid email %q", input.Email)
	}
	if !domain.IsValidRole(input.Role) {
		return nil, domain.InvalidInput("unknown role %q", input.Role)
	}

	user, err := d.store.CreateUser(ctx, store.CreateUserInput{
		Username:  input.Username,
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: d.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Registered user", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (d *directory) GetUser(ctx context.Context, id string) (*schema.User, error) {
	user, err := d.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (d *directory) ListUsers(ctx context.Context, role *domain.Role, limit int) ([]*schema.User, error) {
	if role != nil && !domain.IsValidRole(*role) {
		return nil, domain.InvalidInput("unknown role %q", *role)
	}

	users, err := d.store.ListUsers(ctx, store.UserQueryFilter{Role: role, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []*schema.User{}
	}
	return users, nil
}
