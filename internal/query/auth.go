package query

import (
	"context"
	"time"

	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/model"
)

// AuthAPI is the read slice of the auth service the cached layer needs.
type AuthAPI interface {
	Me(ctx context.Context) (model.AuthUser, error)
}

// Auth caches the current-user profile. It uses a longer window than
// resource reads; the profile rarely changes underneath a session.
type Auth struct {
	api     AuthAPI
	queries *cache.Queries
	ttl     time.Duration
}

// NewAuth creates the cached current-user accessor.
func NewAuth(api AuthAPI, queries *cache.Queries, ttl time.Duration) *Auth {
	return &Auth{api: api, queries: queries, ttl: ttl}
}

// Me returns the authenticated user's profile.
func (a *Auth) Me(ctx context.Context) (model.AuthUser, error) {
	return cache.Fetch(ctx, a.queries, KeyAuthMe, a.ttl, func(ctx context.Context) (model.AuthUser, error) {
		return a.api.Me(ctx)
	})
}

// PutMe writes a freshly returned profile into the current-user key,
// used after login and registration to skip a redundant refetch.
func (a *Auth) PutMe(user model.AuthUser) {
	a.queries.Put(KeyAuthMe, user, a.ttl)
}
