package model

import "time"

// InscricaoCampeonatoResponse is a team's registration in a championship.
type InscricaoCampeonatoResponse struct {
	ID               int64           `json:"id"`
	CampeonatoID     int64           `json:"campeonatoId"`
	CampeonatoTitulo string          `json:"campeonatoTitulo,omitempty"`
	TimeID           int64           `json:"timeId"`
	TimeNome         string          `json:"timeNome,omitempty"`
	Status           StatusInscricao `json:"status"`
	DataInscricao    time.Time       `json:"dataInscricao"`
	DataAprovacao    *time.Time      `json:"dataAprovacao,omitempty"`
}

// CreateInscricaoCampeonatoRequest is the payload to register a team.
type CreateInscricaoCampeonatoRequest struct {
	CampeonatoID int64  `json:"campeonatoId"`
	TimeID       int64  `json:"timeId"`
	Observacoes  string `json:"observacoes,omitempty"`
}
