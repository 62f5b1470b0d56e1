package query

import (
	"fmt"
	"net/url"
	"strconv"

	"femee-arena-client/internal/model"
)

// Cache keys are "resource/kind" paths plus serialized parameters, so
// identical reads collapse onto one key and writes can invalidate whole
// families by prefix.

const (
	timesPrefix        = "times/"
	timesListPrefix    = "times/list"
	timesRankingPrefix = "times/ranking"
	campeonatosPrefix  = "campeonatos/"
	noticiasPrefix     = "noticias/"
	inscricoesPrefix   = "inscricoes/"

	// KeyAuthMe addresses the current-user profile.
	KeyAuthMe = "auth/me"
)

func paginationSuffix(params model.PaginationParams) string {
	values := url.Values{}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func timesListKey(params model.PaginationParams) string {
	return timesListPrefix + paginationSuffix(params)
}

func timesPagedKey(params model.PaginationParams) string {
	return "times/paged" + paginationSuffix(params)
}

func timesDetailKey(id int64) string {
	return fmt.Sprintf("times/detail/%d", id)
}

func timesSlugKey(slug string) string {
	return "times/slug/" + slug
}

func timesRankingKey(top int) string {
	if top <= 0 {
		return timesRankingPrefix
	}
	return fmt.Sprintf("times/ranking?top=%d", top)
}

func campeonatosListKey() string {
	return "campeonatos/list"
}

func campeonatosDetailKey(id int64) string {
	return fmt.Sprintf("campeonatos/detail/%d", id)
}

func campeonatosStatusKey(status model.StatusCampeonato) string {
	return fmt.Sprintf("campeonatos/status/%d", status)
}

func campeonatosAtivosKey() string {
	return "campeonatos/ativos"
}

func noticiasListKey(params model.PaginationParams) string {
	return "noticias/list" + paginationSuffix(params)
}

func noticiasDetailKey(id int64) string {
	return fmt.Sprintf("noticias/detail/%d", id)
}

func noticiasSlugKey(slug string) string {
	return "noticias/slug/" + slug
}

func noticiasCategoriaKey(categoria string, params model.PaginationParams) string {
	return "noticias/categoria/" + categoria + paginationSuffix(params)
}

func inscricoesDetailKey(id int64) string {
	return fmt.Sprintf("inscricoes/detail/%d", id)
}

func inscricoesCampeonatoKey(campeonatoID int64) string {
	return fmt.Sprintf("inscricoes/campeonato/%d", campeonatoID)
}

func inscricoesTimeKey(timeID int64) string {
	return fmt.Sprintf("inscricoes/time/%d", timeID)
}

func inscricoesStatusKey(status model.StatusInscricao) string {
	return fmt.Sprintf("inscricoes/status/%d", status)
}
