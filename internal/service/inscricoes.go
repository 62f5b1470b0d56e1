package service

import (
	"context"
	"fmt"

	"femee-arena-client/internal/apiclient"
	"femee-arena-client/internal/model"
)

// InscricoesService maps championship-registration operations to
// backend calls.
type InscricoesService struct {
	client *apiclient.Client
}

// NewInscricoesService creates a new registrations service.
func NewInscricoesService(client *apiclient.Client) *InscricoesService {
	return &InscricoesService{client: client}
}

// Create registers a team in a championship.
func (s *InscricoesService) Create(ctx context.Context, req model.CreateInscricaoCampeonatoRequest) (model.InscricaoCampeonatoResponse, error) {
	var resp model.InscricaoCampeonatoResponse
	err := s.client.Post(ctx, "/inscricoes-campeonato", req, &resp)
	return resp, err
}

// Get returns a registration by ID.
func (s *InscricoesService) Get(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error) {
	var resp model.InscricaoCampeonatoResponse
	err := s.client.Get(ctx, fmt.Sprintf("/inscricoes-campeonato/%d", id), nil, &resp)
	return resp, err
}

// ListByCampeonato returns the registrations of a championship.
func (s *InscricoesService) ListByCampeonato(ctx context.Context, campeonatoID int64) ([]model.InscricaoCampeonatoResponse, error) {
	var resp []model.InscricaoCampeonatoResponse
	err := s.client.Get(ctx, fmt.Sprintf("/inscricoes-campeonato/campeonato/%d", campeonatoID), nil, &resp)
	return resp, err
}

// ListByTime returns the registrations of a team.
func (s *InscricoesService) ListByTime(ctx context.Context, timeID int64) ([]model.InscricaoCampeonatoResponse, error) {
	var resp []model.InscricaoCampeonatoResponse
	err := s.client.Get(ctx, fmt.Sprintf("/inscricoes-campeonato/time/%d", timeID), nil, &resp)
	return resp, err
}

// ListByStatus returns registrations in the given review state.
func (s *InscricoesService) ListByStatus(ctx context.Context, status model.StatusInscricao) ([]model.InscricaoCampeonatoResponse, error) {
	var resp []model.InscricaoCampeonatoResponse
	err := s.client.Get(ctx, fmt.Sprintf("/inscricoes-campeonato/status/%d", status), nil, &resp)
	return resp, err
}

// Approve approves a pending registration.
func (s *InscricoesService) Approve(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error) {
	var resp model.InscricaoCampeonatoResponse
	err := s.client.Post(ctx, fmt.Sprintf("/inscricoes-campeonato/%d/aprovar", id), nil, &resp)
	return resp, err
}

// Reject rejects a pending registration.
func (s *InscricoesService) Reject(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error) {
	var resp model.InscricaoCampeonatoResponse
	err := s.client.Post(ctx, fmt.Sprintf("/inscricoes-campeonato/%d/rejeitar", id), nil, &resp)
	return resp, err
}

// Delete removes a registration.
func (s *InscricoesService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/inscricoes-campeonato/%d", id))
}
