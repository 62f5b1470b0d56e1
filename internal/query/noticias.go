package query

import (
	"context"
	"time"

	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/model"
)

// NoticiasAPI is the slice of the news service the cached layer needs.
type NoticiasAPI interface {
	List(ctx context.Context, params model.PaginationParams) (model.PagedResult[model.NoticiaResponse], error)
	Get(ctx context.Context, id int64) (model.NoticiaResponse, error)
	GetBySlug(ctx context.Context, slug string) (model.NoticiaResponse, error)
	ListByCategoria(ctx context.Context, categoria string, params model.PaginationParams) (model.PagedResult[model.NoticiaResponse], error)
}

// Noticias layers caching over the news service. News is read-only
// from this client, so there is no invalidation surface.
type Noticias struct {
	api     NoticiasAPI
	queries *cache.Queries
	ttl     time.Duration
}

// NewNoticias creates the cached news accessor.
func NewNoticias(api NoticiasAPI, queries *cache.Queries, ttl time.Duration) *Noticias {
	return &Noticias{api: api, queries: queries, ttl: ttl}
}

// List returns a page of articles.
func (n *Noticias) List(ctx context.Context, params model.PaginationParams) (model.PagedResult[model.NoticiaResponse], error) {
	params = params.OrDefaults()
	return cache.Fetch(ctx, n.queries, noticiasListKey(params), n.ttl, func(ctx context.Context) (model.PagedResult[model.NoticiaResponse], error) {
		return n.api.List(ctx, params)
	})
}

// Get returns an article by ID.
func (n *Noticias) Get(ctx context.Context, id int64) (model.NoticiaResponse, error) {
	return cache.Fetch(ctx, n.queries, noticiasDetailKey(id), n.ttl, func(ctx context.Context) (model.NoticiaResponse, error) {
		return n.api.Get(ctx, id)
	})
}

// GetBySlug returns an article by slug.
func (n *Noticias) GetBySlug(ctx context.Context, slug string) (model.NoticiaResponse, error) {
	return cache.Fetch(ctx, n.queries, noticiasSlugKey(slug), n.ttl, func(ctx context.Context) (model.NoticiaResponse, error) {
		return n.api.GetBySlug(ctx, slug)
	})
}

// ListByCategoria returns a page of articles in a category.
func (n *Noticias) ListByCategoria(ctx context.Context, categoria string, params model.PaginationParams) (model.PagedResult[model.NoticiaResponse], error) {
	params = params.OrDefaults()
	return cache.Fetch(ctx, n.queries, noticiasCategoriaKey(categoria, params), n.ttl, func(ctx context.Context) (model.PagedResult[model.NoticiaResponse], error) {
		return n.api.ListByCategoria(ctx, categoria, params)
	})
}

// Recentes returns the most recent articles for the home view, served
// from the cached first page.
func (n *Noticias) Recentes(ctx context.Context, limit int) ([]model.NoticiaResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	page, err := n.List(ctx, model.PaginationParams{Page: 1, PageSize: limit})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
