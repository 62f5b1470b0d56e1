package model

import "time"

// TimeResponse is the backend representation of a team.
type TimeResponse struct {
	ID             int64     `json:"id"`
	Nome           string    `json:"nome"`
	Slug           string    `json:"slug"`
	LogoURL        string    `json:"logoUrl,omitempty"`
	Descricao      string    `json:"descricao,omitempty"`
	Vitorias       int       `json:"vitorias"`
	Derrotas       int       `json:"derrotas"`
	Empates        int       `json:"empates"`
	Pontos         int       `json:"pontos"`
	PosicaoRanking int       `json:"posicaoRanking"`
	DataCriacao    time.Time `json:"dataCriacao"`

	// Populated only on detail responses.
	Jogadores        []JogadorResponse   `json:"jogadores,omitempty"`
	Conquistas       []ConquistaResponse `json:"conquistas,omitempty"`
	ProximasPartidas []PartidaResponse   `json:"proximasPartidas,omitempty"`
}

// RankingTrend compares the team's current position against its previous
// one. The backend currently reports the previous rank equal to the
// current rank, so this is always zero in practice; kept as-is rather
// than inventing movement the data does not carry.
func (t *TimeResponse) RankingTrend(previous int) int {
	return previous - t.PosicaoRanking
}

// JogadorResponse is a player on a team roster.
type JogadorResponse struct {
	ID             int64      `json:"id"`
	Nome           string     `json:"nome"`
	Nickname       string     `json:"nickname"`
	Posicao        string     `json:"posicao,omitempty"`
	Funcao         string     `json:"funcao,omitempty"`
	TimeID         int64      `json:"timeId"`
	TimeNome       string     `json:"timeNome,omitempty"`
	UserID         int64      `json:"userId,omitempty"`
	DataNascimento *time.Time `json:"dataNascimento,omitempty"`
	DataCriacao    time.Time  `json:"dataCriacao"`
}

// ConquistaResponse is a past tournament achievement.
type ConquistaResponse struct {
	ID         int64  `json:"id"`
	Titulo     string `json:"titulo"`
	Campeonato string `json:"campeonato"`
	Posicao    int    `json:"posicao"`
	Data       string `json:"data,omitempty"`
}

// PartidaResponse is an upcoming or finished match.
type PartidaResponse struct {
	ID             int64     `json:"id"`
	Adversario     string    `json:"adversario,omitempty"`
	DataHora       time.Time `json:"dataHora"`
	CampeonatoNome string    `json:"campeonatoNome,omitempty"`
}

// CreateTimeRequest is the payload to create a team.
type CreateTimeRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

// UpdateTimeRequest is the payload to update a team. Empty fields are
// left unchanged by the backend.
type UpdateTimeRequest struct {
	Nome      string `json:"nome,omitempty"`
	Descricao string `json:"descricao,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}
