package model

import "time"

// NoticiaResponse is the backend representation of a news article.
type NoticiaResponse struct {
	ID             int64        `json:"id"`
	Titulo         string       `json:"titulo"`
	Slug           string       `json:"slug"`
	Resumo         string       `json:"resumo"`
	Conteudo       string       `json:"conteudo"`
	Categoria      string       `json:"categoria"`
	ImagemURL      string       `json:"imagemUrl,omitempty"`
	DataPublicacao time.Time    `json:"dataPublicacao"`
	Visualizacoes  int64        `json:"visualizacoes"`
	Autor          UserResponse `json:"autor"`
}
