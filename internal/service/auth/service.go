package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/peopleops-ph/hrops-backend-go/internal/domain/auth"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/user"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. Unknown emails and wrong passwords both
// map to ErrInvalidCredentials so the response does not reveal which failed.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
