package model

import "time"

// UserResponse is the backend representation of a platform user.
type UserResponse struct {
	ID          int64       `json:"id"`
	Nome        string      `json:"nome"`
	Email       string      `json:"email"`
	Telefone    string      `json:"telefone,omitempty"`
	TipoUsuario TipoUsuario `json:"tipoUsuario"`
	DataCriacao time.Time   `json:"dataCriacao"`
}
