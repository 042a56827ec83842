package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
}

const tokenTTL = 24 * time.Hour

var (
	ErrUserExists         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("email and password are required")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrUserNotFound       = errors.New("User not found")
)

type Service struct {
	userRepo   Repo
	hasher     auth.PasswordHasher
	jwtService auth.JWTServiceInterface
	now        func() time.Time
}

func New(repo Repo, hasher auth.PasswordHasher, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:   repo,
		hasher:     hasher,
		jwtService: jwtService,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if !strings.Contains(email, "@") || password == "" {
		return nil, ErrInvalidInput
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrUserExists
	}
	hashedPassword, err := s.hasher.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hashedPassword,
		CreatedAt:    s.now(),
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if errors.Is(err, domain.ErrEmailTaken) {
		return nil, ErrUserExists
	}
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("userID", newUser.ID))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hasher.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("userID", user.ID))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("userID", user.ID))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	user, err := s.userRepo.UpdateName(ctx, userID, name)
	if err != nil {
		zap.L().Error("can't update user name", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("user name updated", zap.String("userID", userID))
	return user, nil
}

func (s *Service) GenerateToken(userID string) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
