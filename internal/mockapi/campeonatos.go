package mockapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"femee-arena-client/internal/model"
)

func (s *Server) handleCampeonatosList(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	writeJSON(w, http.StatusOK, s.store.campeonatos)
}

func (s *Server) handleCampeonatosGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, c := range s.store.campeonatos {
		if c.ID == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "campeonato não encontrado")
}

func (s *Server) handleCampeonatosByStatus(w http.ResponseWriter, r *http.Request) {
	raw, err := strconv.Atoi(chi.URLParam(r, "status"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "status inválido")
		return
	}
	status := model.StatusCampeonato(raw)

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := []model.CampeonatoResponse{}
	for _, c := range s.store.campeonatos {
		if c.Status == status {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCampeonatosAtivos(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := []model.CampeonatoResponse{}
	for _, c := range s.store.campeonatos {
		switch c.Status {
		case model.CampeonatoPlanejado, model.CampeonatoInscricoesAbertas, model.CampeonatoEmAndamento:
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCampeonatosCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCampeonatoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Titulo == "" || req.NumeroVagas <= 0 {
		writeError(w, r, http.StatusBadRequest, "titulo e numeroVagas são obrigatórios")
		return
	}

	s.store.mu.Lock()
	c := model.CampeonatoResponse{
		ID:          s.store.id(),
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		DataInicio:  req.DataInicio,
		DataFim:     req.DataFim,
		Local:       req.Local,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		Premiacao:   req.Premiacao,
		NumeroVagas: req.NumeroVagas,
		Status:      model.CampeonatoPlanejado,
	}
	s.store.campeonatos = append(s.store.campeonatos, c)
	s.store.mu.Unlock()

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleCampeonatosUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.CreateCampeonatoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.campeonatos {
		if s.store.campeonatos[i].ID != id {
			continue
		}
		if req.Titulo != "" {
			s.store.campeonatos[i].Titulo = req.Titulo
		}
		if req.Descricao != "" {
			s.store.campeonatos[i].Descricao = req.Descricao
		}
		if req.NumeroVagas > 0 {
			s.store.campeonatos[i].NumeroVagas = req.NumeroVagas
		}
		writeJSON(w, http.StatusOK, s.store.campeonatos[i])
		return
	}
	writeError(w, r, http.StatusNotFound, "campeonato não encontrado")
}

func (s *Server) handleCampeonatosDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.campeonatos {
		if s.store.campeonatos[i].ID == id {
			s.store.campeonatos = append(s.store.campeonatos[:i], s.store.campeonatos[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "campeonato não encontrado")
}
