package mockapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"femee-arena-client/internal/apiclient"
	"femee-arena-client/internal/auth"
	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/mockapi"
	"femee-arena-client/internal/model"
	"femee-arena-client/internal/nav"
	"femee-arena-client/internal/query"
	"femee-arena-client/internal/service"
	"femee-arena-client/internal/session"
	"femee-arena-client/pkg/apierror"
)

// stack is the full client stack wired against one mock backend, the
// same shape the CLI assembles at startup.
type stack struct {
	store     *session.Store
	client    *apiclient.Client
	queries   *cache.Queries
	manager   *auth.Manager
	navigator *nav.Navigator

	authSvc     *service.AuthService
	times       *query.Times
	campeonatos *query.Campeonatos
	inscricoes  *query.Inscricoes
}

func newStack(t *testing.T, baseURL string) *stack {
	t.Helper()

	store, err := session.New(t.TempDir())
	require.NoError(t, err)

	client := apiclient.New(apiclient.Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Tokens:  store,
	})
	queries := cache.NewQueries()
	t.Cleanup(queries.Close)

	authSvc := service.NewAuthService(client)
	me := query.NewAuth(authSvc, queries, time.Minute)
	manager := auth.NewManager(authSvc, store, queries, me)
	navigator := nav.NewNavigator(manager)
	manager.SetRedirector(navigator)
	client.SetUnauthorizedHandler(manager.HandleUnauthorized)

	return &stack{
		store:       store,
		client:      client,
		queries:     queries,
		manager:     manager,
		navigator:   navigator,
		authSvc:     authSvc,
		times:       query.NewTimes(service.NewTimesService(client), queries, time.Minute),
		campeonatos: query.NewCampeonatos(service.NewCampeonatosService(client), queries, time.Minute),
		inscricoes:  query.NewInscricoes(service.NewInscricoesService(client), queries, time.Minute),
	}
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(mockapi.New("test-secret").Handler())
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, s *stack, email, senha string) {
	t.Helper()
	require.NoError(t, s.manager.Login(context.Background(), model.LoginRequest{Email: email, Senha: senha}))
}

func TestPublicReadsWithoutSession(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")
	ctx := context.Background()

	teams, err := s.times.List(ctx, model.PaginationParams{})
	require.NoError(t, err)
	assert.Len(t, teams, 5)

	ranking, err := s.times.Ranking(ctx, 3)
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	assert.Equal(t, "Valkyrias", ranking[0].Nome)
	assert.Equal(t, 1, ranking[0].PosicaoRanking)

	bySlug, err := s.times.GetBySlug(ctx, "furia-rosa")
	require.NoError(t, err)
	assert.Equal(t, int64(2), bySlug.ID)

	ativos, err := s.campeonatos.ListAtivos(ctx)
	require.NoError(t, err)
	for _, c := range ativos {
		assert.NotEqual(t, model.CampeonatoFinalizado, c.Status)
	}
}

func TestLoginWithBadCredentials(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")

	err := s.manager.Login(context.Background(), model.LoginRequest{Email: "capita@femee.gg", Senha: "errada"})
	require.Error(t, err)

	assert.True(t, apierror.IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, "Invalid credentials", apierror.UserMessage(err))
	assert.Equal(t, auth.StateAnonymous, s.manager.State())
	assert.False(t, s.store.HasToken())
}

func TestLoginThenMe(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")

	login(t, s, "admin@femee.gg", "admin123")

	assert.Equal(t, auth.StateAuthenticated, s.manager.State())
	assert.True(t, s.manager.IsAdmin())
	assert.True(t, s.store.HasToken())

	me, err := s.authSvc.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), me.UserID)
	assert.Equal(t, "admin@femee.gg", me.Email)
	assert.Equal(t, model.Administrador, me.TipoUsuario)
}

func TestSessionSurvivesReopen(t *testing.T) {
	srv := newBackend(t)
	dir := t.TempDir()

	store, err := session.New(dir)
	require.NoError(t, err)
	client := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second, Tokens: store})
	queries := cache.NewQueries()
	t.Cleanup(queries.Close)
	authSvc := service.NewAuthService(client)
	manager := auth.NewManager(authSvc, store, queries, nil)
	require.NoError(t, manager.Login(context.Background(), model.LoginRequest{Email: "capita@femee.gg", Senha: "capita123"}))

	// A new process run against the same session dir starts authenticated.
	reopened, err := session.New(dir)
	require.NoError(t, err)
	queries2 := cache.NewQueries()
	t.Cleanup(queries2.Close)
	manager2 := auth.NewManager(authSvc, reopened, queries2, nil)

	assert.Equal(t, auth.StateAuthenticated, manager2.State())
	require.NotNil(t, manager2.CurrentUser())
	assert.Equal(t, "capita@femee.gg", manager2.CurrentUser().Email)

	client2 := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second, Tokens: reopened})
	me, err := service.NewAuthService(client2).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Capitao, me.TipoUsuario)
}

func TestRejectedTokenTearsDownSession(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")

	// A session persisted with a token the backend no longer accepts.
	require.NoError(t, s.store.Save(session.Session{
		User:      model.AuthUser{UserID: 2, Email: "capita@femee.gg", Nome: "Capitã Aurora", TipoUsuario: model.Capitao},
		Token:     "forged-or-expired",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	s.queries.Put("times/list", []string{"stale"}, time.Minute)

	_, err := s.authSvc.Me(context.Background())
	require.Error(t, err)
	assert.True(t, apierror.IsStatus(err, http.StatusUnauthorized))

	// The 401 event reaches the manager: session gone, cache gone,
	// navigation parked at the login view.
	assert.Equal(t, auth.StateAnonymous, s.manager.State())
	assert.False(t, s.store.HasToken())
	assert.False(t, s.queries.Has("times/list"))
	assert.Equal(t, "/login", s.navigator.Current())
}

func TestRoleGateForbidsWithoutTeardown(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")

	login(t, s, "nix@femee.gg", "nix12345")

	_, err := s.times.Create(context.Background(), model.CreateTimeRequest{Nome: "Time da Nix"})
	require.Error(t, err)
	assert.True(t, apierror.IsStatus(err, http.StatusForbidden))

	// A 403 is a denial, not a session rejection.
	assert.Equal(t, auth.StateAuthenticated, s.manager.State())
	assert.True(t, s.store.HasToken())
	assert.NotEqual(t, "/login", s.navigator.Current())
}

func TestUnauthenticatedWriteIsRejected(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")

	_, err := s.inscricoes.Create(context.Background(), model.CreateInscricaoCampeonatoRequest{CampeonatoID: 1, TimeID: 3})
	require.Error(t, err)
	assert.True(t, apierror.IsStatus(err, http.StatusUnauthorized))
}

func TestInscricaoLifecycle(t *testing.T) {
	srv := newBackend(t)

	capita := newStack(t, srv.URL+"/api")
	login(t, capita, "capita@femee.gg", "capita123")

	created, err := capita.inscricoes.Create(context.Background(), model.CreateInscricaoCampeonatoRequest{
		CampeonatoID: 1,
		TimeID:       3,
		Observacoes:  "elenco completo",
	})
	require.NoError(t, err)
	assert.Equal(t, model.InscricaoPendente, created.Status)
	assert.Equal(t, "Sereias do Caos", created.TimeNome)

	// A duplicate registration for the same team is refused.
	_, err = capita.inscricoes.Create(context.Background(), model.CreateInscricaoCampeonatoRequest{CampeonatoID: 1, TimeID: 3})
	require.Error(t, err)
	assert.True(t, apierror.IsStatus(err, http.StatusConflict))

	// The registration count change is visible on a fresh read.
	campeonato, err := capita.campeonatos.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, campeonato.NumeroInscritos)

	// Review requires the administrator role.
	_, err = capita.inscricoes.Approve(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apierror.IsStatus(err, http.StatusForbidden))

	admin := newStack(t, srv.URL+"/api")
	login(t, admin, "admin@femee.gg", "admin123")

	approved, err := admin.inscricoes.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InscricaoAprovada, approved.Status)
	require.NotNil(t, approved.DataAprovacao)
}

func TestRegistrationOnClosedCampeonato(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")
	login(t, s, "capita@femee.gg", "capita123")

	_, err := s.inscricoes.Create(context.Background(), model.CreateInscricaoCampeonatoRequest{CampeonatoID: 2, TimeID: 3})
	require.Error(t, err)
	assert.True(t, apierror.IsStatus(err, http.StatusConflict))
}

func TestRegisterCreatesSessionAndRejectsDuplicateEmail(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")

	err := s.manager.Register(context.Background(), model.RegisterRequest{
		Nome:             "Nova Jogadora",
		Email:            "nova@femee.gg",
		Senha:            "senha1234",
		ConfirmacaoSenha: "senha1234",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.StateAuthenticated, s.manager.State())
	role, ok := s.manager.Role()
	require.True(t, ok)
	assert.Equal(t, model.Jogador, role, "registration defaults to the player role")

	other := newStack(t, srv.URL+"/api")
	err = other.manager.Register(context.Background(), model.RegisterRequest{
		Nome:             "Outra",
		Email:            "nova@femee.gg",
		Senha:            "senha1234",
		ConfirmacaoSenha: "senha1234",
	})
	require.Error(t, err)
	assert.True(t, apierror.IsStatus(err, http.StatusConflict))
}

func TestGuardedNavigationAcrossLogin(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")

	out := s.navigator.Resolve("/perfil")
	assert.Equal(t, nav.DecisionRedirectLogin, out.Decision)
	assert.Equal(t, "/login", s.navigator.Current())

	login(t, s, "nix@femee.gg", "nix12345")

	assert.Equal(t, "/perfil", s.navigator.ConsumeRemembered())

	// Guest-only views bounce an authenticated user.
	out = s.navigator.Resolve("/login")
	assert.Equal(t, nav.DecisionRedirectBack, out.Decision)

	// Role-gated views deny without planting a login redirect.
	out = s.navigator.Resolve("/admin")
	assert.Equal(t, nav.DecisionRedirectHome, out.Decision)
	assert.Equal(t, "/", s.navigator.Current())
}

func TestLogoutThenProtectedRouteRequiresLoginAgain(t *testing.T) {
	srv := newBackend(t)
	s := newStack(t, srv.URL+"/api")
	login(t, s, "admin@femee.gg", "admin123")

	require.Equal(t, nav.DecisionRender, s.navigator.Resolve("/admin").Decision)

	s.manager.Logout()

	out := s.navigator.Resolve("/admin")
	assert.Equal(t, nav.DecisionRedirectLogin, out.Decision)
	assert.False(t, s.store.HasToken())
}
