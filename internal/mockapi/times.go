package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"femee-arena-client/internal/model"
)

func (s *Server) handleTimesList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	s.store.mu.RLock()
	times := make([]model.TimeResponse, len(s.store.times))
	copy(times, s.store.times)
	s.store.mu.RUnlock()

	if page > 0 {
		result := paginate(times, page, pageSize)
		writeJSON(w, http.StatusOK, result.Items)
		return
	}
	writeJSON(w, http.StatusOK, times)
}

func (s *Server) handleTimesPaged(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	s.store.mu.RLock()
	times := make([]model.TimeResponse, len(s.store.times))
	copy(times, s.store.times)
	s.store.mu.RUnlock()

	writeJSON(w, http.StatusOK, paginate(times, page, pageSize))
}

func (s *Server) handleTimesGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, t := range s.store.times {
		if t.ID == id {
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "time não encontrado")
}

func (s *Server) handleTimesGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, t := range s.store.times {
		if t.Slug == slug {
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "time não encontrado")
}

func (s *Server) handleTimesRanking(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	ranked := sortedRanking(s.store.times)
	s.store.mu.RUnlock()

	if raw := r.URL.Query().Get("top"); raw != "" {
		top, err := strconv.Atoi(raw)
		if err == nil && top > 0 && top < len(ranked) {
			ranked = ranked[:top]
		}
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (s *Server) handleTimesCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTimeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Nome == "" {
		writeError(w, r, http.StatusBadRequest, "nome é obrigatório")
		return
	}

	s.store.mu.Lock()
	t := model.TimeResponse{
		ID:             s.store.id(),
		Nome:           req.Nome,
		Slug:           slugify(req.Nome),
		Descricao:      req.Descricao,
		LogoURL:        req.LogoURL,
		PosicaoRanking: len(s.store.times) + 1,
		DataCriacao:    time.Now(),
	}
	s.store.times = append(s.store.times, t)
	s.store.mu.Unlock()

	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleTimesUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateTimeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.times {
		if s.store.times[i].ID != id {
			continue
		}
		if req.Nome != "" {
			s.store.times[i].Nome = req.Nome
			s.store.times[i].Slug = slugify(req.Nome)
		}
		if req.Descricao != "" {
			s.store.times[i].Descricao = req.Descricao
		}
		if req.LogoURL != "" {
			s.store.times[i].LogoURL = req.LogoURL
		}
		writeJSON(w, http.StatusOK, s.store.times[i])
		return
	}
	writeError(w, r, http.StatusNotFound, "time não encontrado")
}

func (s *Server) handleTimesDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.times {
		if s.store.times[i].ID == id {
			s.store.times = append(s.store.times[:i], s.store.times[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "time não encontrado")
}

// paginationParams reads page/pageSize, returning zeros when absent.
func paginationParams(r *http.Request) (int, int) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))
	return page, pageSize
}

// pathID parses the {id} URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}
