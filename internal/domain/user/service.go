package user

import (
	"context"
	"strings"

	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, u *User) error {
	u.Id = pkg.GenerateULIDObject()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Role == "" {
		u.Role = RoleViewer
	}
	if !u.Role.IsValid() {
		return appErrors.NewValidationError("role", "invalid role")
	}

	now := pkg.SetTimestamps()
	u.CreatedAt = now
	u.UpdatedAt = now

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}
	u.Password = string(hashedPassword)

	return s.Repository.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := s.GetByID(ctx, userID)
	return err
}

func (s *Service) ListUsers(ctx context.Context, pagination *pkg.PaginationParams) ([]*User, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}
