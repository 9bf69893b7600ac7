package service

import (
	"context"
	"time"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/config"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same message for unknown e-mail and wrong password
		return nil, apierror.Validation("E-mail ou senha inválidos.")
	}
	if !user.IsActive {
		return nil, apierror.Validation("Este usuário está desativado.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Validation("E-mail ou senha inválidos.")
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)
	token, err := s.generateToken(user, expiresAt)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	return &dto.LoginResponse{
		Token:          token,
		TokenExpiresAt: expiresAt.UTC(),
		User:           *userToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
