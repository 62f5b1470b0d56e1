package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"femee-arena-client/internal/apiclient"
	"femee-arena-client/internal/model"
)

// TimesService maps team operations to backend calls.
type TimesService struct {
	client *apiclient.Client
}

// NewTimesService creates a new teams service.
func NewTimesService(client *apiclient.Client) *TimesService {
	return &TimesService{client: client}
}

// List returns all teams, optionally windowed by pagination params.
func (s *TimesService) List(ctx context.Context, params model.PaginationParams) ([]model.TimeResponse, error) {
	var resp []model.TimeResponse
	err := s.client.Get(ctx, "/times", paginationQuery(params), &resp)
	return resp, err
}

// ListPaged returns a page of teams with the pagination envelope.
func (s *TimesService) ListPaged(ctx context.Context, params model.PaginationParams) (model.PagedResult[model.TimeResponse], error) {
	var resp model.PagedResult[model.TimeResponse]
	err := s.client.Get(ctx, "/times/paged", paginationQuery(params.OrDefaults()), &resp)
	return resp, err
}

// Get returns a team by ID.
func (s *TimesService) Get(ctx context.Context, id int64) (model.TimeResponse, error) {
	var resp model.TimeResponse
	err := s.client.Get(ctx, fmt.Sprintf("/times/%d", id), nil, &resp)
	return resp, err
}

// GetBySlug returns a team by its URL slug.
func (s *TimesService) GetBySlug(ctx context.Context, slug string) (model.TimeResponse, error) {
	var resp model.TimeResponse
	err := s.client.Get(ctx, "/times/slug/"+url.PathEscape(slug), nil, &resp)
	return resp, err
}

// Ranking returns teams ordered by ranking position. top limits the
// result when positive.
func (s *TimesService) Ranking(ctx context.Context, top int) ([]model.TimeResponse, error) {
	var query url.Values
	if top > 0 {
		query = url.Values{"top": []string{strconv.Itoa(top)}}
	}
	var resp []model.TimeResponse
	err := s.client.Get(ctx, "/times/ranking", query, &resp)
	return resp, err
}

// Create creates a team.
func (s *TimesService) Create(ctx context.Context, req model.CreateTimeRequest) (model.TimeResponse, error) {
	var resp model.TimeResponse
	err := s.client.Post(ctx, "/times", req, &resp)
	return resp, err
}

// Update updates a team.
func (s *TimesService) Update(ctx context.Context, id int64, req model.UpdateTimeRequest) (model.TimeResponse, error) {
	var resp model.TimeResponse
	err := s.client.Put(ctx, fmt.Sprintf("/times/%d", id), req, &resp)
	return resp, err
}

// Delete removes a team.
func (s *TimesService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/times/%d", id))
}

// paginationQuery encodes optional pagination params, omitting unset
// fields so the backend applies its own defaults.
func paginationQuery(params model.PaginationParams) url.Values {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	if len(query) == 0 {
		return nil
	}
	return query
}
