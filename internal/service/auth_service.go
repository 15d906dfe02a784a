package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"stockbook/internal/config"
	"stockbook/internal/dto"
	"stockbook/internal/middleware"
	"stockbook/internal/model"
	"stockbook/internal/store"
)

var (
	ErrEmailTaken         = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService manages local accounts. An account's only real purpose is to
// put a stable email behind the identity claim that scopes stored data.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	st  *store.Store
	cfg *config.Config
}

func NewAuthService(st *store.Store, cfg *config.Config) AuthService {
	return &authService{st: st, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	if _, err := s.st.FindAccount(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := model.Account{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.st.SaveAccount(ctx, acc); err != nil {
		return nil, err
	}
	return s.issue(acc)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, err := s.st.FindAccount(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(*acc)
}

func (s *authService) issue(acc model.Account) (*dto.LoginResponse, error) {
	ttl := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	claims := middleware.IdentityClaims{
		Email: acc.Email,
		Name:  acc.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Email:       acc.Email,
		Name:        acc.Name,
	}, nil
}
