package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"femee-arena-client/internal/model"
)

func (s *Server) handleInscricoesCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInscricaoCampeonatoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var campeonato *model.CampeonatoResponse
	for i := range s.store.campeonatos {
		if s.store.campeonatos[i].ID == req.CampeonatoID {
			campeonato = &s.store.campeonatos[i]
			break
		}
	}
	if campeonato == nil {
		writeError(w, r, http.StatusNotFound, "campeonato não encontrado")
		return
	}
	if campeonato.Status != model.CampeonatoInscricoesAbertas {
		writeError(w, r, http.StatusConflict, "inscrições encerradas para este campeonato")
		return
	}

	var timeNome string
	for _, t := range s.store.times {
		if t.ID == req.TimeID {
			timeNome = t.Nome
			break
		}
	}
	if timeNome == "" {
		writeError(w, r, http.StatusNotFound, "time não encontrado")
		return
	}

	for _, i := range s.store.inscricoes {
		if i.CampeonatoID == req.CampeonatoID && i.TimeID == req.TimeID && i.Status != model.InscricaoRejeitada {
			writeError(w, r, http.StatusConflict, "time já inscrito neste campeonato")
			return
		}
	}

	inscricao := model.InscricaoCampeonatoResponse{
		ID:               s.store.id(),
		CampeonatoID:     campeonato.ID,
		CampeonatoTitulo: campeonato.Titulo,
		TimeID:           req.TimeID,
		TimeNome:         timeNome,
		Status:           model.InscricaoPendente,
		DataInscricao:    time.Now(),
	}
	s.store.inscricoes = append(s.store.inscricoes, inscricao)
	campeonato.NumeroInscritos++

	writeJSON(w, http.StatusCreated, inscricao)
}

func (s *Server) handleInscricoesGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, i := range s.store.inscricoes {
		if i.ID == id {
			writeJSON(w, http.StatusOK, i)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "inscrição não encontrada")
}

func (s *Server) handleInscricoesByCampeonato(w http.ResponseWriter, r *http.Request) {
	campeonatoID, err := strconv.ParseInt(chi.URLParam(r, "campeonatoId"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "id inválido")
		return
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := []model.InscricaoCampeonatoResponse{}
	for _, i := range s.store.inscricoes {
		if i.CampeonatoID == campeonatoID {
			out = append(out, i)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInscricoesByTime(w http.ResponseWriter, r *http.Request) {
	timeID, err := strconv.ParseInt(chi.URLParam(r, "timeId"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "id inválido")
		return
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := []model.InscricaoCampeonatoResponse{}
	for _, i := range s.store.inscricoes {
		if i.TimeID == timeID {
			out = append(out, i)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInscricoesByStatus(w http.ResponseWriter, r *http.Request) {
	raw, err := strconv.Atoi(chi.URLParam(r, "status"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "status inválido")
		return
	}
	status := model.StatusInscricao(raw)

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := []model.InscricaoCampeonatoResponse{}
	for _, i := range s.store.inscricoes {
		if i.Status == status {
			out = append(out, i)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInscricoesApprove(w http.ResponseWriter, r *http.Request) {
	s.reviewInscricao(w, r, model.InscricaoAprovada)
}

func (s *Server) handleInscricoesReject(w http.ResponseWriter, r *http.Request) {
	s.reviewInscricao(w, r, model.InscricaoRejeitada)
}

func (s *Server) reviewInscricao(w http.ResponseWriter, r *http.Request, status model.StatusInscricao) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.inscricoes {
		if s.store.inscricoes[i].ID != id {
			continue
		}
		now := time.Now()
		s.store.inscricoes[i].Status = status
		s.store.inscricoes[i].DataAprovacao = &now
		writeJSON(w, http.StatusOK, s.store.inscricoes[i])
		return
	}
	writeError(w, r, http.StatusNotFound, "inscrição não encontrada")
}

func (s *Server) handleInscricoesDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.inscricoes {
		if s.store.inscricoes[i].ID == id {
			s.store.inscricoes = append(s.store.inscricoes[:i], s.store.inscricoes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "inscrição não encontrada")
}
