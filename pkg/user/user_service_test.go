package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/jwt"
)

func newUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:user-test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newUserTestService(t *testing.T) UserService {
	t.Helper()
	db := newUserTestDB(t)
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

func TestRegisterAssignsUserRole(t *testing.T) {
	ctx := context.Background()
	svc := newUserTestService(t)

	res, err := svc.Register(ctx, domain.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, res.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserTestService(t)

	req := domain.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "supersecret",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newUserTestService(t)

	if _, err := svc.Register(ctx, domain.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "supersecret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	}); !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	}); !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid for unknown email, got %v", err)
	}
}
