package mockapi

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"femee-arena-client/internal/model"
)

func (s *Server) handleNoticiasList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	s.store.mu.RLock()
	noticias := recentFirst(s.store.noticias)
	s.store.mu.RUnlock()

	writeJSON(w, http.StatusOK, paginate(noticias, page, pageSize))
}

func (s *Server) handleNoticiasGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, n := range s.store.noticias {
		if n.ID == id {
			writeJSON(w, http.StatusOK, n)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "notícia não encontrada")
}

func (s *Server) handleNoticiasGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, n := range s.store.noticias {
		if n.Slug == slug {
			writeJSON(w, http.StatusOK, n)
			return
		}
	}
	writeError(w, r, http.StatusNotFound, "notícia não encontrada")
}

func (s *Server) handleNoticiasByCategoria(w http.ResponseWriter, r *http.Request) {
	categoria := chi.URLParam(r, "categoria")
	page, pageSize := paginationParams(r)

	s.store.mu.RLock()
	var filtered []model.NoticiaResponse
	for _, n := range s.store.noticias {
		if n.Categoria == categoria {
			filtered = append(filtered, n)
		}
	}
	s.store.mu.RUnlock()

	writeJSON(w, http.StatusOK, paginate(recentFirst(filtered), page, pageSize))
}

// recentFirst orders articles by publication date, newest first.
func recentFirst(noticias []model.NoticiaResponse) []model.NoticiaResponse {
	out := make([]model.NoticiaResponse, len(noticias))
	copy(out, noticias)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DataPublicacao.After(out[j].DataPublicacao)
	})
	return out
}
