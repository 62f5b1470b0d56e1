package model

import "time"

// JogoResponse is the game a championship is played in.
type JogoResponse struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Slug     string `json:"slug"`
	IconeURL string `json:"iconeUrl,omitempty"`
	Ativo    bool   `json:"ativo"`
}

// CampeonatoResponse is the backend representation of a championship.
type CampeonatoResponse struct {
	ID              int64            `json:"id"`
	Titulo          string           `json:"titulo"`
	Descricao       string           `json:"descricao,omitempty"`
	DataInicio      time.Time        `json:"dataInicio"`
	DataFim         time.Time        `json:"dataFim"`
	Local           string           `json:"local,omitempty"`
	Cidade          string           `json:"cidade,omitempty"`
	Estado          string           `json:"estado,omitempty"`
	Premiacao       float64          `json:"premiacao"`
	NumeroVagas     int              `json:"numeroVagas"`
	NumeroInscritos int              `json:"numeroInscritos"`
	Status          StatusCampeonato `json:"status"`
	Jogo            *JogoResponse    `json:"jogo,omitempty"`
}

// VagasRestantes returns how many registration slots remain.
func (c *CampeonatoResponse) VagasRestantes() int {
	remaining := c.NumeroVagas - c.NumeroInscritos
	if remaining < 0 {
		return 0
	}
	return remaining
}

// InscricoesAbertas reports whether the championship accepts registrations.
func (c *CampeonatoResponse) InscricoesAbertas() bool {
	return c.Status == CampeonatoInscricoesAbertas && c.VagasRestantes() > 0
}

// CreateCampeonatoRequest is the payload to create a championship.
type CreateCampeonatoRequest struct {
	Titulo      string    `json:"titulo"`
	Descricao   string    `json:"descricao,omitempty"`
	DataInicio  time.Time `json:"dataInicio"`
	DataFim     time.Time `json:"dataFim"`
	Local       string    `json:"local,omitempty"`
	Cidade      string    `json:"cidade,omitempty"`
	Estado      string    `json:"estado,omitempty"`
	Premiacao   float64   `json:"premiacao,omitempty"`
	NumeroVagas int       `json:"numeroVagas"`
	JogoID      int64     `json:"jogoId"`
}
