package mockapi

import (
	"net/http"
	"time"

	"femee-arena-client/internal/model"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.store.mu.RLock()
	u, ok := s.store.findUser(req.Email)
	s.store.mu.RUnlock()

	if !ok || u.Senha != req.Senha {
		writeError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s.respondWithSession(w, r, u)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		writeError(w, r, http.StatusBadRequest, "nome, email e senha são obrigatórios")
		return
	}
	if req.Senha != req.ConfirmacaoSenha {
		writeError(w, r, http.StatusBadRequest, "senhas não conferem")
		return
	}

	tipo := req.TipoUsuario
	if tipo == 0 {
		tipo = model.Jogador
	}

	s.store.mu.Lock()
	if _, exists := s.store.findUser(req.Email); exists {
		s.store.mu.Unlock()
		writeError(w, r, http.StatusConflict, "email já cadastrado")
		return
	}
	u := user{
		UserResponse: model.UserResponse{
			ID:          s.store.id(),
			Nome:        req.Nome,
			Email:       req.Email,
			Telefone:    req.Telefone,
			TipoUsuario: tipo,
			DataCriacao: time.Now(),
		},
		Senha: req.Senha,
	}
	s.store.users = append(s.store.users, u)
	s.store.mu.Unlock()

	s.respondWithSession(w, r, u)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	s.store.mu.RLock()
	u, ok := s.store.userByID(claims.UserID)
	s.store.mu.RUnlock()
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "usuário não encontrado")
		return
	}

	writeJSON(w, http.StatusOK, model.AuthUser{
		UserID:      u.ID,
		Email:       u.Email,
		Nome:        u.Nome,
		TipoUsuario: u.TipoUsuario,
	})
}

func (s *Server) respondWithSession(w http.ResponseWriter, r *http.Request, u user) {
	token, expires, err := newToken(s.secret, u)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "falha ao emitir token")
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Token:       token,
		UserID:      u.ID,
		Email:       u.Email,
		Nome:        u.Nome,
		TipoUsuario: u.TipoUsuario,
		ExpiresAt:   expires,
	})
}
