package model

import "time"

// LoginRequest is the credential payload for auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// RegisterRequest is the payload for auth/register.
type RegisterRequest struct {
	Nome             string      `json:"nome"`
	Email            string      `json:"email"`
	Senha            string      `json:"senha"`
	ConfirmacaoSenha string      `json:"confirmacaoSenha"`
	Telefone         string      `json:"telefone,omitempty"`
	TipoUsuario      TipoUsuario `json:"tipoUsuario,omitempty"`
}

// LoginResponse is returned by both auth/login and auth/register.
type LoginResponse struct {
	Token       string      `json:"token"`
	UserID      int64       `json:"userId"`
	Email       string      `json:"email"`
	Nome        string      `json:"nome"`
	TipoUsuario TipoUsuario `json:"tipoUsuario"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}

// AuthUser is the public profile of the authenticated user.
type AuthUser struct {
	UserID      int64       `json:"userId"`
	Email       string      `json:"email"`
	Nome        string      `json:"nome"`
	TipoUsuario TipoUsuario `json:"tipoUsuario"`
}
