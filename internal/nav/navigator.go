package nav

import (
	"sync"

	"femee-arena-client/internal/auth"
	"femee-arena-client/internal/model"
)

const (
	homePath  = "/"
	loginPath = "/login"
)

// SessionInfo is the read-only session view the navigator consults.
// The auth manager satisfies it.
type SessionInfo interface {
	State() auth.State
	Role() (model.TipoUsuario, bool)
}

// Outcome is the result of resolving a navigation attempt.
type Outcome struct {
	Route    Route
	Params   map[string]string
	Decision Decision
	// Location is where navigation actually landed after redirects.
	Location string
}

// Navigator tracks the current location and the target remembered
// across a forced login, applying the guard on every navigation.
type Navigator struct {
	mu         sync.Mutex
	session    SessionInfo
	current    string
	remembered string
}

// NewNavigator creates a navigator starting at the home view.
func NewNavigator(session SessionInfo) *Navigator {
	return &Navigator{session: session, current: homePath}
}

// Resolve attempts to navigate to path, applying guard redirects.
func (n *Navigator) Resolve(path string) Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()

	route, params, ok := Match(path)
	if !ok {
		n.current = path
		return Outcome{Route: NotFound, Decision: DecisionRender, Location: path}
	}

	role, hasRole := n.session.Role()
	decision := Evaluate(route, n.session.State(), role, hasRole)

	switch decision {
	case DecisionRender:
		n.current = path
	case DecisionRedirectLogin:
		n.remembered = path
		n.current = loginPath
	case DecisionRedirectHome:
		n.current = homePath
	case DecisionRedirectBack:
		target := n.remembered
		if target == "" {
			target = homePath
		}
		n.remembered = ""
		n.current = target
	case DecisionLoading:
		// Location unchanged until the session state resolves.
	}

	return Outcome{Route: route, Params: params, Decision: decision, Location: n.current}
}

// Current returns the present location.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Remembered returns the target recorded by a forced login redirect.
func (n *Navigator) Remembered() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.remembered
}

// ConsumeRemembered moves to the target recorded before a forced login
// redirect, falling back to home, and clears it. Called after a
// successful login.
func (n *Navigator) ConsumeRemembered() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	target := n.remembered
	if target == "" {
		target = homePath
	}
	n.remembered = ""
	n.current = target
	return target
}

// RedirectToLogin moves to the login view unless already there. This is
// the landing spot for the global 401 handler.
func (n *Navigator) RedirectToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != loginPath {
		n.current = loginPath
	}
}
