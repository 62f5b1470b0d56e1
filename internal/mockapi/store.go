package mockapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"femee-arena-client/internal/model"
)

// user is a seeded account. Passwords are plaintext; this backend
// exists for local development and tests only.
type user struct {
	model.UserResponse
	Senha string
}

// Store holds the mock backend's in-memory data. All access goes
// through its mutex.
type Store struct {
	mu          sync.RWMutex
	users       []user
	times       []model.TimeResponse
	noticias    []model.NoticiaResponse
	campeonatos []model.CampeonatoResponse
	inscricoes  []model.InscricaoCampeonatoResponse
	nextID      int64
}

// NewStore creates a store seeded with development fixtures.
func NewStore() *Store {
	s := &Store{nextID: 1000}
	s.seed()
	return s
}

func (s *Store) seed() {
	now := time.Now()
	created := now.AddDate(-1, 0, 0)

	s.users = []user{
		{
			UserResponse: model.UserResponse{
				ID: 1, Nome: "Admin FEMEE", Email: "admin@femee.gg",
				TipoUsuario: model.Administrador, DataCriacao: created,
			},
			Senha: "admin123",
		},
		{
			UserResponse: model.UserResponse{
				ID: 2, Nome: "Capitã Aurora", Email: "capita@femee.gg",
				TipoUsuario: model.Capitao, DataCriacao: created,
			},
			Senha: "capita123",
		},
		{
			UserResponse: model.UserResponse{
				ID: 3, Nome: "Jogadora Nix", Email: "nix@femee.gg",
				TipoUsuario: model.Jogador, DataCriacao: created,
			},
			Senha: "nix12345",
		},
	}

	s.times = []model.TimeResponse{
		{ID: 1, Nome: "Valkyrias", Slug: "valkyrias", Vitorias: 18, Derrotas: 2, Empates: 1, Pontos: 55, PosicaoRanking: 1, DataCriacao: created},
		{ID: 2, Nome: "Fúria Rosa", Slug: "furia-rosa", Vitorias: 15, Derrotas: 4, Empates: 2, Pontos: 47, PosicaoRanking: 2, DataCriacao: created},
		{ID: 3, Nome: "Sereias do Caos", Slug: "sereias-do-caos", Vitorias: 12, Derrotas: 6, Empates: 3, Pontos: 39, PosicaoRanking: 3, DataCriacao: created},
		{ID: 4, Nome: "Amazonas eSports", Slug: "amazonas-esports", Vitorias: 10, Derrotas: 8, Empates: 3, Pontos: 33, PosicaoRanking: 4, DataCriacao: created},
		{ID: 5, Nome: "Lince Púrpura", Slug: "lince-purpura", Vitorias: 7, Derrotas: 11, Empates: 3, Pontos: 24, PosicaoRanking: 5, DataCriacao: created},
	}

	jogo := &model.JogoResponse{ID: 1, Nome: "League of Legends", Slug: "lol", Ativo: true}
	s.campeonatos = []model.CampeonatoResponse{
		{ID: 1, Titulo: "Copa FEMEE 2026", DataInicio: now.AddDate(0, 1, 0), DataFim: now.AddDate(0, 2, 0), Cidade: "São Paulo", Estado: "SP", Premiacao: 50000, NumeroVagas: 16, NumeroInscritos: 9, Status: model.CampeonatoInscricoesAbertas, Jogo: jogo},
		{ID: 2, Titulo: "Circuito Regional Sul", DataInicio: now.AddDate(0, 0, -10), DataFim: now.AddDate(0, 0, 20), Cidade: "Porto Alegre", Estado: "RS", Premiacao: 15000, NumeroVagas: 8, NumeroInscritos: 8, Status: model.CampeonatoEmAndamento, Jogo: jogo},
		{ID: 3, Titulo: "Desafio de Verão", DataInicio: now.AddDate(0, -4, 0), DataFim: now.AddDate(0, -3, 0), Cidade: "Recife", Estado: "PE", Premiacao: 8000, NumeroVagas: 8, NumeroInscritos: 8, Status: model.CampeonatoFinalizado, Jogo: jogo},
	}

	autor := s.users[0].UserResponse
	s.noticias = []model.NoticiaResponse{
		{ID: 1, Titulo: "Valkyrias conquistam o Desafio de Verão", Slug: "valkyrias-conquistam-desafio", Resumo: "Final decidida no quinto mapa.", Conteudo: "...", Categoria: "competitivo", DataPublicacao: now.AddDate(0, -3, 2), Visualizacoes: 4210, Autor: autor},
		{ID: 2, Titulo: "Inscrições abertas para a Copa FEMEE 2026", Slug: "inscricoes-copa-femee-2026", Resumo: "Dezesseis vagas, premiação recorde.", Conteudo: "...", Categoria: "anuncios", DataPublicacao: now.AddDate(0, 0, -7), Visualizacoes: 2890, Autor: autor},
		{ID: 3, Titulo: "Fúria Rosa anuncia nova jogadora", Slug: "furia-rosa-nova-jogadora", Resumo: "Reforço para a temporada.", Conteudo: "...", Categoria: "times", DataPublicacao: now.AddDate(0, 0, -3), Visualizacoes: 1550, Autor: autor},
		{ID: 4, Titulo: "Circuito Regional Sul chega à fase decisiva", Slug: "circuito-sul-fase-decisiva", Resumo: "Semifinais neste fim de semana.", Conteudo: "...", Categoria: "competitivo", DataPublicacao: now.AddDate(0, 0, -1), Visualizacoes: 980, Autor: autor},
	}

	s.inscricoes = []model.InscricaoCampeonatoResponse{
		{ID: 1, CampeonatoID: 1, CampeonatoTitulo: "Copa FEMEE 2026", TimeID: 1, TimeNome: "Valkyrias", Status: model.InscricaoAprovada, DataInscricao: now.AddDate(0, 0, -6)},
		{ID: 2, CampeonatoID: 1, CampeonatoTitulo: "Copa FEMEE 2026", TimeID: 2, TimeNome: "Fúria Rosa", Status: model.InscricaoPendente, DataInscricao: now.AddDate(0, 0, -2)},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) findUser(email string) (user, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return user{}, false
}

func (s *Store) userByID(id int64) (user, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return user{}, false
}

func slugify(nome string) string {
	slug := strings.ToLower(nome)
	replacer := strings.NewReplacer(
		" ", "-", "ã", "a", "á", "a", "â", "a", "é", "e", "ê", "e",
		"í", "i", "ó", "o", "ô", "o", "õ", "o", "ú", "u", "ç", "c",
	)
	return replacer.Replace(slug)
}

// sortedRanking returns teams ordered by ranking position.
func sortedRanking(times []model.TimeResponse) []model.TimeResponse {
	out := make([]model.TimeResponse, len(times))
	copy(out, times)
	sort.Slice(out, func(i, j int) bool {
		return out[i].PosicaoRanking < out[j].PosicaoRanking
	})
	return out
}

// paginate windows items into the backend's pagination envelope.
func paginate[T any](items []T, page, pageSize int) model.PagedResult[T] {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return model.PagedResult[T]{
		Items:           items[start:end],
		TotalCount:      int64(total),
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}
