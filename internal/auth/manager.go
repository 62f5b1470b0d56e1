package auth

import (
	"context"
	"log"
	"sync"

	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/model"
	"femee-arena-client/internal/query"
	"femee-arena-client/internal/session"
	"femee-arena-client/pkg/apierror"
)

// State is the session lifecycle state. Unknown exists only before the
// persisted session has been checked; the transition out of it happens
// exactly once, synchronously, when the manager is constructed.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Service is the slice of the auth resource service the manager uses.
type Service interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.LoginResponse, error)
}

// Redirector is notified when a global 401 forces navigation to the
// login view.
type Redirector interface {
	RedirectToLogin()
}

// Manager owns every session transition and is the only writer of the
// session store: the HTTP layer reports 401s to it as an event rather
// than touching the store itself.
type Manager struct {
	svc     Service
	store   *session.Store
	queries *cache.Queries
	me      *query.Auth

	mu       sync.RWMutex
	state    State
	user     *model.AuthUser
	busy     bool
	redirect Redirector
}

// NewManager creates the manager and resolves the initial state from
// the persisted session.
func NewManager(svc Service, store *session.Store, queries *cache.Queries, me *query.Auth) *Manager {
	m := &Manager{
		svc:     svc,
		store:   store,
		queries: queries,
		me:      me,
		state:   StateUnknown,
	}

	if sess := store.Load(); sess != nil {
		m.state = StateAuthenticated
		user := sess.User
		m.user = &user
	} else {
		m.state = StateAnonymous
	}

	return m
}

// SetRedirector registers the navigation target for global 401 handling.
func (m *Manager) SetRedirector(r Redirector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.redirect = r
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser returns the authenticated profile, or nil.
func (m *Manager) CurrentUser() *model.AuthUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Role returns the current role and whether a session exists. Derived
// on every read, never cached separately.
func (m *Manager) Role() (model.TipoUsuario, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated || m.user == nil {
		return 0, false
	}
	return m.user.TipoUsuario, true
}

// IsAdmin reports whether the current user is an administrator.
func (m *Manager) IsAdmin() bool {
	role, ok := m.Role()
	return ok && role == model.Administrador
}

// IsCapitao reports whether the current user is a team captain.
func (m *Manager) IsCapitao() bool {
	role, ok := m.Role()
	return ok && role == model.Capitao
}

// Busy reports whether a login or registration call is outstanding.
func (m *Manager) Busy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.busy
}

// Login authenticates. On success the session is persisted and the
// state becomes Authenticated; on failure nothing changes and the
// error propagates for display.
func (m *Manager) Login(ctx context.Context, req model.LoginRequest) error {
	if req.Email == "" || req.Senha == "" {
		return apierror.Validation("email e senha são obrigatórios")
	}

	m.setBusy(true)
	defer m.setBusy(false)

	resp, err := m.svc.Login(ctx, req)
	if err != nil {
		return err
	}
	return m.establish(resp)
}

// Register creates an account, with the same success contract as Login.
func (m *Manager) Register(ctx context.Context, req model.RegisterRequest) error {
	if fields := validateRegistration(req); len(fields) > 0 {
		return apierror.Validation("dados de cadastro inválidos", fields...)
	}

	m.setBusy(true)
	defer m.setBusy(false)

	resp, err := m.svc.Register(ctx, req)
	if err != nil {
		return err
	}
	return m.establish(resp)
}

// Logout clears the session and the query cache unconditionally; no
// network failure can block it.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.store.Clear()
	m.queries.Clear()
	m.state = StateAnonymous
	m.user = nil
	m.mu.Unlock()

	log.Printf("[Auth] session ended")
}

// HandleUnauthorized is the subscriber for the HTTP layer's 401 event:
// tear the session down and move navigation to the login view.
func (m *Manager) HandleUnauthorized() {
	m.mu.Lock()
	alreadyAnonymous := m.state == StateAnonymous
	m.store.Clear()
	m.queries.Clear()
	m.state = StateAnonymous
	m.user = nil
	redirect := m.redirect
	m.mu.Unlock()

	if !alreadyAnonymous {
		log.Printf("[Auth] session rejected by backend, signing out")
	}
	if redirect != nil {
		redirect.RedirectToLogin()
	}
}

// establish persists a login/registration response and transitions to
// Authenticated.
func (m *Manager) establish(resp model.LoginResponse) error {
	user := model.AuthUser{
		UserID:      resp.UserID,
		Email:       resp.Email,
		Nome:        resp.Nome,
		TipoUsuario: resp.TipoUsuario,
	}

	err := m.store.Save(session.Session{
		User:      user,
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = &user
	m.mu.Unlock()

	if m.me != nil {
		m.me.PutMe(user)
	}

	log.Printf("[Auth] session established for %s (%s)", user.Email, user.TipoUsuario)
	return nil
}

func (m *Manager) setBusy(v bool) {
	m.mu.Lock()
	m.busy = v
	m.mu.Unlock()
}

func validateRegistration(req model.RegisterRequest) []apierror.FieldError {
	var fields []apierror.FieldError
	if req.Nome == "" {
		fields = append(fields, apierror.FieldError{Field: "nome", Message: "obrigatório"})
	}
	if req.Email == "" {
		fields = append(fields, apierror.FieldError{Field: "email", Message: "obrigatório"})
	}
	if req.Senha == "" {
		fields = append(fields, apierror.FieldError{Field: "senha", Message: "obrigatório"})
	}
	if req.Senha != req.ConfirmacaoSenha {
		fields = append(fields, apierror.FieldError{Field: "confirmacaoSenha", Message: "senhas não conferem"})
	}
	if req.TipoUsuario != 0 && !req.TipoUsuario.Valid() {
		fields = append(fields, apierror.FieldError{Field: "tipoUsuario", Message: "valor inválido"})
	}
	return fields
}
