package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"femee-arena-client/internal/auth"
	"femee-arena-client/internal/model"
)

// fakeSession is a SessionInfo with settable state and role.
type fakeSession struct {
	state   auth.State
	role    model.TipoUsuario
	hasRole bool
}

func (f *fakeSession) State() auth.State               { return f.state }
func (f *fakeSession) Role() (model.TipoUsuario, bool) { return f.role, f.hasRole }

func anonymous() *fakeSession {
	return &fakeSession{state: auth.StateAnonymous}
}

func authenticatedAs(role model.TipoUsuario) *fakeSession {
	return &fakeSession{state: auth.StateAuthenticated, role: role, hasRole: true}
}

func mustRoute(t *testing.T, path string) Route {
	t.Helper()
	route, _, ok := Match(path)
	require.True(t, ok, "route table must contain %s", path)
	return route
}

func TestEvaluate_PublicRouteRendersForEveryone(t *testing.T) {
	route := mustRoute(t, "/times")

	assert.Equal(t, DecisionRender, Evaluate(route, auth.StateAnonymous, 0, false))
	assert.Equal(t, DecisionRender, Evaluate(route, auth.StateAuthenticated, model.Jogador, true))
}

func TestEvaluate_UnknownStateIsLoadingNeverRedirect(t *testing.T) {
	for _, path := range []string{"/", "/perfil", "/admin", "/login"} {
		route := mustRoute(t, path)
		assert.Equal(t, DecisionLoading, Evaluate(route, auth.StateUnknown, 0, false),
			"unresolved session must not redirect away from %s", path)
	}
}

func TestEvaluate_AnonymousOnProtectedRouteRedirectsToLogin(t *testing.T) {
	route := mustRoute(t, "/perfil")
	assert.Equal(t, DecisionRedirectLogin, Evaluate(route, auth.StateAnonymous, 0, false))
}

func TestEvaluate_AuthenticatedWithoutRoleRedirectsHomeNotLogin(t *testing.T) {
	route := mustRoute(t, "/admin")

	decision := Evaluate(route, auth.StateAuthenticated, model.Jogador, true)
	assert.Equal(t, DecisionRedirectHome, decision,
		"a logged-in user lacking the role goes home, never back to login")
}

func TestEvaluate_AdminReachesAdminRoute(t *testing.T) {
	route := mustRoute(t, "/admin")
	assert.Equal(t, DecisionRender, Evaluate(route, auth.StateAuthenticated, model.Administrador, true))
}

func TestEvaluate_GuestOnlyWhileAuthenticatedRedirectsBack(t *testing.T) {
	for _, path := range []string{"/login", "/registro"} {
		route := mustRoute(t, path)
		assert.Equal(t, DecisionRedirectBack, Evaluate(route, auth.StateAuthenticated, model.Capitao, true))
	}
}

func TestEvaluate_UnknownRoleValueIsDenied(t *testing.T) {
	route := mustRoute(t, "/admin")

	decision := Evaluate(route, auth.StateAuthenticated, model.TipoUsuario(99), true)
	assert.Equal(t, DecisionRedirectHome, decision)
}

func TestMatch_ExtractsSlugParam(t *testing.T) {
	route, params, ok := Match("/times/valkyrias")
	require.True(t, ok)
	assert.Equal(t, "time-detail", route.Name)
	assert.Equal(t, "valkyrias", params["slug"])
}

func TestMatch_UnknownPathIsNotFound(t *testing.T) {
	route, _, ok := Match("/nada/por/aqui")
	assert.False(t, ok)
	assert.Equal(t, NotFound.Name, route.Name)
}

func TestNavigator_ForcedLoginRemembersTarget(t *testing.T) {
	session := anonymous()
	n := NewNavigator(session)

	out := n.Resolve("/perfil")
	assert.Equal(t, DecisionRedirectLogin, out.Decision)
	assert.Equal(t, "/login", out.Location)
	assert.Equal(t, "/perfil", n.Remembered())

	// Login succeeds; the remembered target is consumed exactly once.
	session.state = auth.StateAuthenticated
	session.role, session.hasRole = model.Jogador, true

	assert.Equal(t, "/perfil", n.ConsumeRemembered())
	assert.Equal(t, "/perfil", n.Current())
	assert.Empty(t, n.Remembered())
	assert.Equal(t, "/", n.ConsumeRemembered(), "second consume falls back to home")
}

func TestNavigator_RoleRedirectGoesHomeAndForgetsNothing(t *testing.T) {
	n := NewNavigator(authenticatedAs(model.Capitao))

	out := n.Resolve("/admin")
	assert.Equal(t, DecisionRedirectHome, out.Decision)
	assert.Equal(t, "/", out.Location)
	assert.Empty(t, n.Remembered(), "a role denial must not plant a login return target")
}

func TestNavigator_GuestOnlyBouncesToRememberedTarget(t *testing.T) {
	session := anonymous()
	n := NewNavigator(session)

	n.Resolve("/perfil") // plants /perfil as remembered
	session.state = auth.StateAuthenticated
	session.role, session.hasRole = model.Jogador, true

	out := n.Resolve("/login")
	assert.Equal(t, DecisionRedirectBack, out.Decision)
	assert.Equal(t, "/perfil", out.Location)
}

func TestNavigator_GuestOnlyBouncesHomeWithoutRemembered(t *testing.T) {
	n := NewNavigator(authenticatedAs(model.Administrador))

	out := n.Resolve("/registro")
	assert.Equal(t, DecisionRedirectBack, out.Decision)
	assert.Equal(t, "/", out.Location)
}

func TestNavigator_RedirectToLoginIsIdempotent(t *testing.T) {
	n := NewNavigator(anonymous())

	n.RedirectToLogin()
	n.RedirectToLogin()
	assert.Equal(t, "/login", n.Current())
}

func TestNavigator_LoadingKeepsLocation(t *testing.T) {
	n := NewNavigator(&fakeSession{state: auth.StateUnknown})

	out := n.Resolve("/perfil")
	assert.Equal(t, DecisionLoading, out.Decision)
	assert.Equal(t, "/", out.Location, "location holds until the session resolves")
}
