package service

import (
	"context"

	"femee-arena-client/internal/apiclient"
	"femee-arena-client/internal/model"
)

// AuthService maps authentication operations to backend calls. It never
// touches session or cache state; that belongs to the calling layer.
type AuthService struct {
	client *apiclient.Client
}

// NewAuthService creates a new auth service.
func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token and profile.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	var resp model.LoginResponse
	err := s.client.Post(ctx, "/auth/login", req, &resp)
	return resp, err
}

// Register creates an account and returns the same shape as Login.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.LoginResponse, error) {
	var resp model.LoginResponse
	err := s.client.Post(ctx, "/auth/register", req, &resp)
	return resp, err
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context) (model.AuthUser, error) {
	var resp model.AuthUser
	err := s.client.Get(ctx, "/auth/me", nil, &resp)
	return resp, err
}
