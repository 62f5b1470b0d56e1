package query

import (
	"context"
	"time"

	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/model"
)

// TimesAPI is the slice of the teams service the cached layer needs.
type TimesAPI interface {
	List(ctx context.Context, params model.PaginationParams) ([]model.TimeResponse, error)
	ListPaged(ctx context.Context, params model.PaginationParams) (model.PagedResult[model.TimeResponse], error)
	Get(ctx context.Context, id int64) (model.TimeResponse, error)
	GetBySlug(ctx context.Context, slug string) (model.TimeResponse, error)
	Ranking(ctx context.Context, top int) ([]model.TimeResponse, error)
	Create(ctx context.Context, req model.CreateTimeRequest) (model.TimeResponse, error)
	Update(ctx context.Context, id int64, req model.UpdateTimeRequest) (model.TimeResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Times layers caching and invalidation over the teams service.
type Times struct {
	api     TimesAPI
	queries *cache.Queries
	ttl     time.Duration
}

// NewTimes creates the cached teams accessor.
func NewTimes(api TimesAPI, queries *cache.Queries, ttl time.Duration) *Times {
	return &Times{api: api, queries: queries, ttl: ttl}
}

// List returns all teams, cached per pagination window.
func (t *Times) List(ctx context.Context, params model.PaginationParams) ([]model.TimeResponse, error) {
	return cache.Fetch(ctx, t.queries, timesListKey(params), t.ttl, func(ctx context.Context) ([]model.TimeResponse, error) {
		return t.api.List(ctx, params)
	})
}

// ListPaged returns a page of teams with the pagination envelope.
func (t *Times) ListPaged(ctx context.Context, params model.PaginationParams) (model.PagedResult[model.TimeResponse], error) {
	params = params.OrDefaults()
	return cache.Fetch(ctx, t.queries, timesPagedKey(params), t.ttl, func(ctx context.Context) (model.PagedResult[model.TimeResponse], error) {
		return t.api.ListPaged(ctx, params)
	})
}

// Get returns a team by ID.
func (t *Times) Get(ctx context.Context, id int64) (model.TimeResponse, error) {
	return cache.Fetch(ctx, t.queries, timesDetailKey(id), t.ttl, func(ctx context.Context) (model.TimeResponse, error) {
		return t.api.Get(ctx, id)
	})
}

// GetBySlug returns a team by slug.
func (t *Times) GetBySlug(ctx context.Context, slug string) (model.TimeResponse, error) {
	return cache.Fetch(ctx, t.queries, timesSlugKey(slug), t.ttl, func(ctx context.Context) (model.TimeResponse, error) {
		return t.api.GetBySlug(ctx, slug)
	})
}

// Ranking returns teams by ranking position.
func (t *Times) Ranking(ctx context.Context, top int) ([]model.TimeResponse, error) {
	return cache.Fetch(ctx, t.queries, timesRankingKey(top), t.ttl, func(ctx context.Context) ([]model.TimeResponse, error) {
		return t.api.Ranking(ctx, top)
	})
}

// Create creates a team and marks list and ranking reads stale.
func (t *Times) Create(ctx context.Context, req model.CreateTimeRequest) (model.TimeResponse, error) {
	resp, err := t.api.Create(ctx, req)
	if err != nil {
		return resp, err
	}
	t.queries.InvalidatePrefix(timesListPrefix)
	t.queries.InvalidatePrefix(timesRankingPrefix)
	t.queries.InvalidatePrefix("times/paged")
	return resp, nil
}

// Update updates a team. The response is written through to the detail
// and slug keys; list and ranking reads are invalidated.
func (t *Times) Update(ctx context.Context, id int64, req model.UpdateTimeRequest) (model.TimeResponse, error) {
	resp, err := t.api.Update(ctx, id, req)
	if err != nil {
		return resp, err
	}
	t.queries.Put(timesDetailKey(resp.ID), resp, t.ttl)
	t.queries.Put(timesSlugKey(resp.Slug), resp, t.ttl)
	t.queries.InvalidatePrefix(timesListPrefix)
	t.queries.InvalidatePrefix(timesRankingPrefix)
	t.queries.InvalidatePrefix("times/paged")
	return resp, nil
}

// Delete removes a team and drops every cached team read.
func (t *Times) Delete(ctx context.Context, id int64) error {
	if err := t.api.Delete(ctx, id); err != nil {
		return err
	}
	t.queries.InvalidatePrefix(timesPrefix)
	return nil
}
