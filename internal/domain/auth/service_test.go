package auth_test

import (
	"context"
	"testing"

	"github.com/IdrisAkintobi/altfolio/internal/domain/auth"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	createFn     func(ctx context.Context, u *user.User) error
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, _ ulid.ULID) error  { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	return &user.User{Id: id}, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) List(ctx context.Context, _ *pkg.PaginationParams) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func TestLogin(t *testing.T) {
	t.Parallel()

	password := "Sup3rSecret"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	stored := &user.User{
		Id:       ulid.Make(),
		Email:    "viewer@altfolio.com",
		Password: string(hash),
		Role:     user.RoleViewer,
	}

	repo := &fakeUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, appErrors.ErrUserNotFound
		},
	}
	svc := auth.Service{Repository: repo, UserService: user.NewService(repo)}

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		entity, err := svc.Login(ctx, auth.Login{Email: stored.Email, Password: password})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Id != stored.Id {
			t.Fatalf("expected stored user back")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.Login{Email: stored.Email, Password: "wrong"})
		assertCode(t, err, appErrors.ErrInvalidCredentials.Code)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.Login{Email: "nobody@altfolio.com", Password: password})
		assertCode(t, err, appErrors.ErrInvalidCredentials.Code)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Email: email}, nil
			},
		}
		svc := auth.Service{Repository: repo, UserService: user.NewService(repo)}

		err := svc.Register(ctx, &user.User{
			Name:     "Taken",
			Email:    "taken@altfolio.com",
			Password: "Password1",
		})
		assertCode(t, err, appErrors.ErrEmailAlreadyExists.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := auth.Service{Repository: repo, UserService: user.NewService(repo)}

		err := svc.Register(ctx, &user.User{
			Name:     "New User",
			Email:    "new@altfolio.com",
			Password: "alllowercase",
		})
		assertCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("success hashes the password", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		svc := auth.Service{Repository: repo, UserService: user.NewService(repo)}

		err := svc.Register(ctx, &user.User{
			Name:     "New User",
			Email:    "New@Altfolio.com",
			Password: "Password1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatalf("expected a create call")
		}
		if created.Email != "new@altfolio.com" {
			t.Fatalf("expected lowercased email, got %q", created.Email)
		}
		if created.Role != user.RoleViewer {
			t.Fatalf("expected default viewer role, got %q", created.Role)
		}
		if created.Password == "Password1" {
			t.Fatalf("expected hashed password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Password1")); err != nil {
			t.Fatalf("stored hash does not match password: %v", err)
		}
	})
}

func TestPasswordRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Password1", wantErr: false},
		{name: "too short", password: "Pw1", wantErr: true},
		{name: "no uppercase", password: "password1", wantErr: true},
		{name: "no digit", password: "Passwordd", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := auth.PasswordRequirements(tt.password)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, appErr.Code)
	}
}
