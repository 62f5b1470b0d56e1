package service

import (
	"context"
	"fmt"
	"net/url"

	"femee-arena-client/internal/apiclient"
	"femee-arena-client/internal/model"
)

// NoticiasService maps news operations to backend calls.
type NoticiasService struct {
	client *apiclient.Client
}

// NewNoticiasService creates a new news service.
func NewNoticiasService(client *apiclient.Client) *NoticiasService {
	return &NoticiasService{client: client}
}

// List returns a page of news articles.
func (s *NoticiasService) List(ctx context.Context, params model.PaginationParams) (model.PagedResult[model.NoticiaResponse], error) {
	var resp model.PagedResult[model.NoticiaResponse]
	err := s.client.Get(ctx, "/noticias", paginationQuery(params.OrDefaults()), &resp)
	return resp, err
}

// Get returns an article by ID.
func (s *NoticiasService) Get(ctx context.Context, id int64) (model.NoticiaResponse, error) {
	var resp model.NoticiaResponse
	err := s.client.Get(ctx, fmt.Sprintf("/noticias/%d", id), nil, &resp)
	return resp, err
}

// GetBySlug returns an article by its URL slug.
func (s *NoticiasService) GetBySlug(ctx context.Context, slug string) (model.NoticiaResponse, error) {
	var resp model.NoticiaResponse
	err := s.client.Get(ctx, "/noticias/slug/"+url.PathEscape(slug), nil, &resp)
	return resp, err
}

// ListByCategoria returns a page of articles in a category.
func (s *NoticiasService) ListByCategoria(ctx context.Context, categoria string, params model.PaginationParams) (model.PagedResult[model.NoticiaResponse], error) {
	var resp model.PagedResult[model.NoticiaResponse]
	err := s.client.Get(ctx, "/noticias/categoria/"+url.PathEscape(categoria), paginationQuery(params.OrDefaults()), &resp)
	return resp, err
}
