package service

import (
	"context"
	"fmt"

	"femee-arena-client/internal/apiclient"
	"femee-arena-client/internal/model"
)

// CampeonatosService maps championship operations to backend calls.
type CampeonatosService struct {
	client *apiclient.Client
}

// NewCampeonatosService creates a new championships service.
func NewCampeonatosService(client *apiclient.Client) *CampeonatosService {
	return &CampeonatosService{client: client}
}

// List returns all championships.
func (s *CampeonatosService) List(ctx context.Context) ([]model.CampeonatoResponse, error) {
	var resp []model.CampeonatoResponse
	err := s.client.Get(ctx, "/campeonatos", nil, &resp)
	return resp, err
}

// Get returns a championship by ID.
func (s *CampeonatosService) Get(ctx context.Context, id int64) (model.CampeonatoResponse, error) {
	var resp model.CampeonatoResponse
	err := s.client.Get(ctx, fmt.Sprintf("/campeonatos/%d", id), nil, &resp)
	return resp, err
}

// ListByStatus returns championships in the given lifecycle stage.
func (s *CampeonatosService) ListByStatus(ctx context.Context, status model.StatusCampeonato) ([]model.CampeonatoResponse, error) {
	var resp []model.CampeonatoResponse
	err := s.client.Get(ctx, fmt.Sprintf("/campeonatos/status/%d", status), nil, &resp)
	return resp, err
}

// ListAtivos returns championships that are upcoming or in progress.
func (s *CampeonatosService) ListAtivos(ctx context.Context) ([]model.CampeonatoResponse, error) {
	var resp []model.CampeonatoResponse
	err := s.client.Get(ctx, "/campeonatos/ativos", nil, &resp)
	return resp, err
}

// Create creates a championship.
func (s *CampeonatosService) Create(ctx context.Context, req model.CreateCampeonatoRequest) (model.CampeonatoResponse, error) {
	var resp model.CampeonatoResponse
	err := s.client.Post(ctx, "/campeonatos", req, &resp)
	return resp, err
}

// Update updates a championship.
func (s *CampeonatosService) Update(ctx context.Context, id int64, req model.CreateCampeonatoRequest) (model.CampeonatoResponse, error) {
	var resp model.CampeonatoResponse
	err := s.client.Put(ctx, fmt.Sprintf("/campeonatos/%d", id), req, &resp)
	return resp, err
}

// Delete removes a championship.
func (s *CampeonatosService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/campeonatos/%d", id))
}
