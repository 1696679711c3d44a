package user

import (
	"context"
	"errors"

	"github.com/curaious/tasker/internal/api/authenticator"
)

// ErrInvalidCredentials deliberately covers both "unknown email" and "wrong
// password" so login failures never reveal whether an account exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	repo *UserRepo
	auth *authenticator.Authenticator
}

func NewUserService(repo *UserRepo, auth *authenticator.Authenticator) *UserService {
	return &UserService{repo: repo, auth: auth}
}

// Register creates a user along with their seeded default workspace.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*User, *WorkspaceRef, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	return s.repo.Register(ctx, req.Email, hash, req.Name)
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetDetail(ctx context.Context, id int64) (*UserDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
