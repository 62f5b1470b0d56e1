package cli

import (
	"fmt"

	"femee-arena-client/internal/apiclient"
	"femee-arena-client/internal/auth"
	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/config"
	"femee-arena-client/internal/nav"
	"femee-arena-client/internal/query"
	"femee-arena-client/internal/service"
	"femee-arena-client/internal/session"
)

// App wires the full client stack: config, session store, HTTP client,
// resource services, query cache, session manager and navigator. Built
// once per invocation; every command goes through it.
type App struct {
	Config    *config.Config
	Store     *session.Store
	Client    *apiclient.Client
	Queries   *cache.Queries
	Manager   *auth.Manager
	Navigator *nav.Navigator

	Me          *query.Auth
	Times       *query.Times
	Campeonatos *query.Campeonatos
	Noticias    *query.Noticias
	Inscricoes  *query.Inscricoes
}

// NewApp builds the client stack from the environment.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dir, err := cfg.Session.Resolve()
	if err != nil {
		return nil, err
	}
	store, err := session.New(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	client := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Tokens:  store,
	})

	queries := cache.NewQueries()

	authSvc := service.NewAuthService(client)
	me := query.NewAuth(authSvc, queries, cfg.Cache.UserTTL)
	manager := auth.NewManager(authSvc, store, queries, me)
	navigator := nav.NewNavigator(manager)
	manager.SetRedirector(navigator)
	client.SetUnauthorizedHandler(manager.HandleUnauthorized)

	return &App{
		Config:      cfg,
		Store:       store,
		Client:      client,
		Queries:     queries,
		Manager:     manager,
		Navigator:   navigator,
		Me:          me,
		Times:       query.NewTimes(service.NewTimesService(client), queries, cfg.Cache.TTL),
		Campeonatos: query.NewCampeonatos(service.NewCampeonatosService(client), queries, cfg.Cache.TTL),
		Noticias:    query.NewNoticias(service.NewNoticiasService(client), queries, cfg.Cache.TTL),
		Inscricoes:  query.NewInscricoes(service.NewInscricoesService(client), queries, cfg.Cache.TTL),
	}, nil
}

// Close releases the app's background resources.
func (a *App) Close() {
	a.Queries.Close()
}

// Visit resolves a navigation attempt and reports whether the target
// may render. On a redirect it explains where navigation landed.
func (a *App) Visit(path string) (nav.Outcome, error) {
	outcome := a.Navigator.Resolve(path)
	switch outcome.Decision {
	case nav.DecisionRender:
		return outcome, nil
	case nav.DecisionRedirectLogin:
		return outcome, fmt.Errorf("autenticação necessária para %s: redirecionado para %s (faça login para voltar)", path, outcome.Location)
	case nav.DecisionRedirectHome:
		return outcome, fmt.Errorf("acesso negado a %s: redirecionado para %s", path, outcome.Location)
	case nav.DecisionRedirectBack:
		return outcome, fmt.Errorf("você já está autenticado: redirecionado para %s", outcome.Location)
	default:
		return outcome, fmt.Errorf("sessão ainda não resolvida, tente novamente")
	}
}
