package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/model"
	"femee-arena-client/internal/session"
	"femee-arena-client/pkg/apierror"
)

// fakeService scripts the backend auth responses.
type fakeService struct {
	loginResp    model.LoginResponse
	loginErr     error
	registerResp model.LoginResponse
	registerErr  error
	loginCalls   int
}

func (f *fakeService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeService) Register(ctx context.Context, req model.RegisterRequest) (model.LoginResponse, error) {
	return f.registerResp, f.registerErr
}

type fakeRedirector struct {
	calls int
}

func (f *fakeRedirector) RedirectToLogin() { f.calls++ }

func okLogin() model.LoginResponse {
	return model.LoginResponse{
		Token:       "tok-1",
		UserID:      2,
		Email:       "capita@femee.gg",
		Nome:        "Capitã",
		TipoUsuario: model.Capitao,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func newTestManager(t *testing.T, svc Service) (*Manager, *session.Store, *cache.Queries) {
	t.Helper()
	store, err := session.New(t.TempDir())
	require.NoError(t, err)
	queries := cache.NewQueries()
	t.Cleanup(queries.Close)
	return NewManager(svc, store, queries, nil), store, queries
}

func TestManager_StartsAnonymousWithoutPersistedSession(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeService{})

	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.CurrentUser())
	_, ok := m.Role()
	assert.False(t, ok)
}

func TestManager_RestoresPersistedSessionOnConstruction(t *testing.T) {
	dir := t.TempDir()
	store, err := session.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(session.Session{
		User:      model.AuthUser{UserID: 1, Email: "admin@femee.gg", Nome: "Admin", TipoUsuario: model.Administrador},
		Token:     "persisted",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	queries := cache.NewQueries()
	t.Cleanup(queries.Close)
	m := NewManager(&fakeService{}, store, queries, nil)

	assert.Equal(t, StateAuthenticated, m.State())
	require.NotNil(t, m.CurrentUser())
	assert.Equal(t, "admin@femee.gg", m.CurrentUser().Email)
	assert.True(t, m.IsAdmin())
}

func TestManager_LoginEstablishesSession(t *testing.T) {
	svc := &fakeService{loginResp: okLogin()}
	m, store, _ := newTestManager(t, svc)

	err := m.Login(context.Background(), model.LoginRequest{Email: "capita@femee.gg", Senha: "capita123"})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, m.State())
	assert.True(t, m.IsCapitao())
	assert.True(t, store.HasToken())
	assert.Equal(t, "tok-1", store.Token())
}

func TestManager_LoginRejectsEmptyFieldsWithoutNetworkCall(t *testing.T) {
	svc := &fakeService{loginResp: okLogin()}
	m, _, _ := newTestManager(t, svc)

	err := m.Login(context.Background(), model.LoginRequest{Email: "", Senha: ""})
	require.Error(t, err)

	var valErr *apierror.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Zero(t, svc.loginCalls, "validation failures must never reach the backend")
	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_FailedLoginLeavesEverythingUntouched(t *testing.T) {
	svc := &fakeService{loginErr: apierror.FromResponse(401, []byte(`{"message":"Invalid credentials"}`))}
	m, store, _ := newTestManager(t, svc)
	redir := &fakeRedirector{}
	m.SetRedirector(redir)

	err := m.Login(context.Background(), model.LoginRequest{Email: "capita@femee.gg", Senha: "errada"})
	require.Error(t, err)

	assert.Equal(t, "Invalid credentials", apierror.UserMessage(err))
	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, store.HasToken())
	assert.Zero(t, redir.calls, "a failed login attempt is not a session rejection")
}

func TestManager_RegisterValidatesPasswordConfirmation(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeService{registerResp: okLogin()})

	err := m.Register(context.Background(), model.RegisterRequest{
		Nome:             "Nix",
		Email:            "nix@femee.gg",
		Senha:            "nix12345",
		ConfirmacaoSenha: "outra",
	})
	require.Error(t, err)

	var valErr *apierror.ValidationError
	require.ErrorAs(t, err, &valErr)

	var fields []string
	for _, f := range valErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "confirmacaoSenha")
}

func TestManager_RegisterEstablishesSession(t *testing.T) {
	resp := okLogin()
	resp.TipoUsuario = model.Jogador
	m, store, _ := newTestManager(t, &fakeService{registerResp: resp})

	err := m.Register(context.Background(), model.RegisterRequest{
		Nome:             "Nix",
		Email:            "nix@femee.gg",
		Senha:            "nix12345",
		ConfirmacaoSenha: "nix12345",
	})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, m.State())
	assert.True(t, store.HasToken())
}

func TestManager_LogoutClearsSessionAndCache(t *testing.T) {
	svc := &fakeService{loginResp: okLogin()}
	m, store, queries := newTestManager(t, svc)
	require.NoError(t, m.Login(context.Background(), model.LoginRequest{Email: "capita@femee.gg", Senha: "capita123"}))

	queries.Put("times/list", []string{"valkyrias"}, time.Minute)

	m.Logout()

	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.CurrentUser())
	assert.False(t, store.HasToken())
	assert.False(t, queries.Has("times/list"), "logout must drop cached data")
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	m, store, _ := newTestManager(t, &fakeService{})

	m.Logout()
	m.Logout()

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, store.HasToken())
}

func TestManager_HandleUnauthorizedTearsDownAndRedirects(t *testing.T) {
	svc := &fakeService{loginResp: okLogin()}
	m, store, queries := newTestManager(t, svc)
	redir := &fakeRedirector{}
	m.SetRedirector(redir)
	require.NoError(t, m.Login(context.Background(), model.LoginRequest{Email: "capita@femee.gg", Senha: "capita123"}))

	queries.Put("auth/me", m.CurrentUser(), time.Minute)

	m.HandleUnauthorized()

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, store.HasToken())
	assert.False(t, queries.Has("auth/me"))
	assert.Equal(t, 1, redir.calls)
}

func TestManager_RoleDerivedFromSession(t *testing.T) {
	svc := &fakeService{loginResp: okLogin()}
	m, _, _ := newTestManager(t, svc)

	_, ok := m.Role()
	assert.False(t, ok)

	require.NoError(t, m.Login(context.Background(), model.LoginRequest{Email: "capita@femee.gg", Senha: "capita123"}))

	role, ok := m.Role()
	require.True(t, ok)
	assert.Equal(t, model.Capitao, role)
	assert.False(t, m.IsAdmin())

	m.Logout()
	_, ok = m.Role()
	assert.False(t, ok)
}
