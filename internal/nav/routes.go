package nav

import (
	"strings"

	"femee-arena-client/internal/model"
)

// Route is a navigable view and its authorization requirements. A
// non-empty Roles set implies RequiresAuth.
type Route struct {
	Name         string
	Pattern      string
	RequiresAuth bool
	Roles        []model.TipoUsuario
	GuestOnly    bool
}

// NotFound is the catch-all route for unmatched paths.
var NotFound = Route{Name: "not-found", Pattern: ""}

// routes is the complete route table of the client.
var routes = []Route{
	{Name: "home", Pattern: "/"},
	{Name: "times", Pattern: "/times"},
	{Name: "time-detail", Pattern: "/times/{slug}"},
	{Name: "ranking", Pattern: "/ranking"},
	{Name: "campeonatos", Pattern: "/campeonatos"},
	{Name: "login", Pattern: "/login", GuestOnly: true},
	{Name: "registro", Pattern: "/registro", GuestOnly: true},
	{Name: "perfil", Pattern: "/perfil", RequiresAuth: true},
	{Name: "admin", Pattern: "/admin", RequiresAuth: true, Roles: []model.TipoUsuario{model.Administrador}},
}

// Routes returns the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Match resolves a path against the route table, extracting pattern
// parameters. Unmatched paths land on NotFound with ok=false.
func Match(path string) (Route, map[string]string, bool) {
	segments := split(path)

	for _, route := range routes {
		params, ok := matchPattern(split(route.Pattern), segments)
		if ok {
			return route, params, true
		}
	}
	return NotFound, nil, false
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchPattern(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, part := range pattern {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			if params == nil {
				params = make(map[string]string)
			}
			params[strings.Trim(part, "{}")] = segments[i]
			continue
		}
		if part != segments[i] {
			return nil, false
		}
	}
	return params, true
}
