package nav

import (
	"femee-arena-client/internal/auth"
	"femee-arena-client/internal/model"
)

// Decision is the guard's verdict for a navigation attempt.
type Decision int

const (
	// DecisionLoading means the session state is still Unknown; render
	// a placeholder and re-evaluate once it resolves.
	DecisionLoading Decision = iota
	// DecisionRender means the target may be shown.
	DecisionRender
	// DecisionRedirectLogin means the visitor must authenticate first;
	// the original target is remembered for the post-login return.
	DecisionRedirectLogin
	// DecisionRedirectHome means the user is authenticated but lacks
	// the required role. Distinct from "must log in".
	DecisionRedirectHome
	// DecisionRedirectBack applies to guest-only views visited while
	// authenticated: return to the remembered target, or home.
	DecisionRedirectBack
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRender:
		return "render"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	case DecisionRedirectBack:
		return "redirect-back"
	}
	return "unknown"
}

// Evaluate decides whether a route may render for the given session
// state and role. Pure; all navigation side effects live in Navigator.
func Evaluate(route Route, state auth.State, role model.TipoUsuario, hasRole bool) Decision {
	if state == auth.StateUnknown {
		return DecisionLoading
	}

	if route.GuestOnly && state == auth.StateAuthenticated {
		return DecisionRedirectBack
	}

	if route.RequiresAuth || len(route.Roles) > 0 {
		if state != auth.StateAuthenticated {
			return DecisionRedirectLogin
		}
		if len(route.Roles) > 0 && !roleAllowed(route.Roles, role, hasRole) {
			return DecisionRedirectHome
		}
	}

	return DecisionRender
}

// roleAllowed checks membership of the current role in the route's
// required set. The switch is exhaustive over the closed enumeration so
// a new role forces a review here.
func roleAllowed(required []model.TipoUsuario, role model.TipoUsuario, hasRole bool) bool {
	if !hasRole {
		return false
	}
	switch role {
	case model.Administrador, model.Capitao, model.Jogador, model.Visitante, model.Moderador:
		for _, allowed := range required {
			if role == allowed {
				return true
			}
		}
		return false
	default:
		// Not a member of the closed enumeration: deny.
		return false
	}
}
