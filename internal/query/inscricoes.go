package query

import (
	"context"
	"time"

	"femee-arena-client/internal/cache"
	"femee-arena-client/internal/model"
)

// InscricoesAPI is the slice of the registrations service the cached
// layer needs.
type InscricoesAPI interface {
	Create(ctx context.Context, req model.CreateInscricaoCampeonatoRequest) (model.InscricaoCampeonatoResponse, error)
	Get(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error)
	ListByCampeonato(ctx context.Context, campeonatoID int64) ([]model.InscricaoCampeonatoResponse, error)
	ListByTime(ctx context.Context, timeID int64) ([]model.InscricaoCampeonatoResponse, error)
	ListByStatus(ctx context.Context, status model.StatusInscricao) ([]model.InscricaoCampeonatoResponse, error)
	Approve(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error)
	Reject(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Inscricoes layers caching and invalidation over the registrations
// service.
type Inscricoes struct {
	api     InscricoesAPI
	queries *cache.Queries
	ttl     time.Duration
}

// NewInscricoes creates the cached registrations accessor.
func NewInscricoes(api InscricoesAPI, queries *cache.Queries, ttl time.Duration) *Inscricoes {
	return &Inscricoes{api: api, queries: queries, ttl: ttl}
}

// Get returns a registration by ID.
func (i *Inscricoes) Get(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error) {
	return cache.Fetch(ctx, i.queries, inscricoesDetailKey(id), i.ttl, func(ctx context.Context) (model.InscricaoCampeonatoResponse, error) {
		return i.api.Get(ctx, id)
	})
}

// ListByCampeonato returns the registrations of a championship.
func (i *Inscricoes) ListByCampeonato(ctx context.Context, campeonatoID int64) ([]model.InscricaoCampeonatoResponse, error) {
	return cache.Fetch(ctx, i.queries, inscricoesCampeonatoKey(campeonatoID), i.ttl, func(ctx context.Context) ([]model.InscricaoCampeonatoResponse, error) {
		return i.api.ListByCampeonato(ctx, campeonatoID)
	})
}

// ListByTime returns the registrations of a team.
func (i *Inscricoes) ListByTime(ctx context.Context, timeID int64) ([]model.InscricaoCampeonatoResponse, error) {
	return cache.Fetch(ctx, i.queries, inscricoesTimeKey(timeID), i.ttl, func(ctx context.Context) ([]model.InscricaoCampeonatoResponse, error) {
		return i.api.ListByTime(ctx, timeID)
	})
}

// ListByStatus returns registrations in a review state.
func (i *Inscricoes) ListByStatus(ctx context.Context, status model.StatusInscricao) ([]model.InscricaoCampeonatoResponse, error) {
	return cache.Fetch(ctx, i.queries, inscricoesStatusKey(status), i.ttl, func(ctx context.Context) ([]model.InscricaoCampeonatoResponse, error) {
		return i.api.ListByStatus(ctx, status)
	})
}

// Create registers a team. Registration and championship reads both go
// stale: the championship's registered-team count changed.
func (i *Inscricoes) Create(ctx context.Context, req model.CreateInscricaoCampeonatoRequest) (model.InscricaoCampeonatoResponse, error) {
	resp, err := i.api.Create(ctx, req)
	if err != nil {
		return resp, err
	}
	i.queries.InvalidatePrefix(inscricoesPrefix)
	i.queries.InvalidatePrefix(campeonatosPrefix)
	return resp, nil
}

// Approve approves a registration, writing the response through to the
// detail key and invalidating the list families.
func (i *Inscricoes) Approve(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error) {
	resp, err := i.api.Approve(ctx, id)
	if err != nil {
		return resp, err
	}
	i.queries.InvalidatePrefix(inscricoesPrefix)
	i.queries.Put(inscricoesDetailKey(resp.ID), resp, i.ttl)
	return resp, nil
}

// Reject rejects a registration, symmetric to Approve.
func (i *Inscricoes) Reject(ctx context.Context, id int64) (model.InscricaoCampeonatoResponse, error) {
	resp, err := i.api.Reject(ctx, id)
	if err != nil {
		return resp, err
	}
	i.queries.InvalidatePrefix(inscricoesPrefix)
	i.queries.Put(inscricoesDetailKey(resp.ID), resp, i.ttl)
	return resp, nil
}

// Delete removes a registration and drops both affected read families.
func (i *Inscricoes) Delete(ctx context.Context, id int64) error {
	if err := i.api.Delete(ctx, id); err != nil {
		return err
	}
	i.queries.InvalidatePrefix(inscricoesPrefix)
	i.queries.InvalidatePrefix(campeonatosPrefix)
	return nil
}
