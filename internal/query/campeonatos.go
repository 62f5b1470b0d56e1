package query

import (
	"context"
	"time"

	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/model"
)

// CampeonatosAPI is the slice of the championships service the cached
// layer needs.
type CampeonatosAPI interface {
	List(ctx context.Context) ([]model.CampeonatoResponse, error)
	Get(ctx context.Context, id int64) (model.CampeonatoResponse, error)
	ListByStatus(ctx context.Context, status model.StatusCampeonato) ([]model.CampeonatoResponse, error)
	ListAtivos(ctx context.Context) ([]model.CampeonatoResponse, error)
	Create(ctx context.Context, req model.CreateCampeonatoRequest) (model.CampeonatoResponse, error)
	Update(ctx context.Context, id int64, req model.CreateCampeonatoRequest) (model.CampeonatoResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Campeonatos layers caching and invalidation over the championships
// service.
type Campeonatos struct {
	api     CampeonatosAPI
	queries *cache.Queries
	ttl     time.Duration
}

// NewCampeonatos creates the cached championships accessor.
func NewCampeonatos(api CampeonatosAPI, queries *cache.Queries, ttl time.Duration) *Campeonatos {
	return &Campeonatos{api: api, queries: queries, ttl: ttl}
}

// List returns all championships.
func (c *Campeonatos) List(ctx context.Context) ([]model.CampeonatoResponse, error) {
	return cache.Fetch(ctx, c.queries, campeonatosListKey(), c.ttl, func(ctx context.Context) ([]model.CampeonatoResponse, error) {
		return c.api.List(ctx)
	})
}

// Get returns a championship by ID.
func (c *Campeonatos) Get(ctx context.Context, id int64) (model.CampeonatoResponse, error) {
	return cache.Fetch(ctx, c.queries, campeonatosDetailKey(id), c.ttl, func(ctx context.Context) (model.CampeonatoResponse, error) {
		return c.api.Get(ctx, id)
	})
}

// ListByStatus returns championships in a lifecycle stage.
func (c *Campeonatos) ListByStatus(ctx context.Context, status model.StatusCampeonato) ([]model.CampeonatoResponse, error) {
	return cache.Fetch(ctx, c.queries, campeonatosStatusKey(status), c.ttl, func(ctx context.Context) ([]model.CampeonatoResponse, error) {
		return c.api.ListByStatus(ctx, status)
	})
}

// ListAtivos returns upcoming or running championships.
func (c *Campeonatos) ListAtivos(ctx context.Context) ([]model.CampeonatoResponse, error) {
	return cache.Fetch(ctx, c.queries, campeonatosAtivosKey(), c.ttl, func(ctx context.Context) ([]model.CampeonatoResponse, error) {
		return c.api.ListAtivos(ctx)
	})
}

// Create creates a championship and drops every cached championship read.
func (c *Campeonatos) Create(ctx context.Context, req model.CreateCampeonatoRequest) (model.CampeonatoResponse, error) {
	resp, err := c.api.Create(ctx, req)
	if err != nil {
		return resp, err
	}
	c.queries.InvalidatePrefix(campeonatosPrefix)
	return resp, nil
}

// Update updates a championship, writing the response through to the
// detail key and invalidating the list family.
func (c *Campeonatos) Update(ctx context.Context, id int64, req model.CreateCampeonatoRequest) (model.CampeonatoResponse, error) {
	resp, err := c.api.Update(ctx, id, req)
	if err != nil {
		return resp, err
	}
	c.queries.InvalidatePrefix(campeonatosPrefix)
	c.queries.Put(campeonatosDetailKey(resp.ID), resp, c.ttl)
	return resp, nil
}

// Delete removes a championship and drops every cached championship read.
func (c *Campeonatos) Delete(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return err
	}
	c.queries.InvalidatePrefix(campeonatosPrefix)
	return nil
}
