package model

// TipoUsuario is the access-level category of an authenticated user.
// The values mirror the backend's domain enum and are never combined.
type TipoUsuario int

const (
	Administrador TipoUsuario = 1
	Capitao       TipoUsuario = 2
	Jogador       TipoUsuario = 3
	Visitante     TipoUsuario = 4
	Moderador     TipoUsuario = 5
)

// Valid reports whether the value is a member of the closed enumeration.
func (t TipoUsuario) Valid() bool {
	switch t {
	case Administrador, Capitao, Jogador, Visitante, Moderador:
		return true
	}
	return false
}

func (t TipoUsuario) String() string {
	switch t {
	case Administrador:
		return "Administrador"
	case Capitao:
		return "Capitão"
	case Jogador:
		return "Jogador"
	case Visitante:
		return "Visitante"
	case Moderador:
		return "Moderador"
	}
	return "Desconhecido"
}

// StatusCampeonato is the lifecycle stage of a championship.
type StatusCampeonato int

const (
	CampeonatoPlanejado         StatusCampeonato = 0
	CampeonatoInscricoesAbertas StatusCampeonato = 1
	CampeonatoEmAndamento       StatusCampeonato = 2
	CampeonatoFinalizado        StatusCampeonato = 3
	CampeonatoCancelado         StatusCampeonato = 4
)

func (s StatusCampeonato) String() string {
	switch s {
	case CampeonatoPlanejado:
		return "Planejado"
	case CampeonatoInscricoesAbertas:
		return "Inscrições abertas"
	case CampeonatoEmAndamento:
		return "Em andamento"
	case CampeonatoFinalizado:
		return "Finalizado"
	case CampeonatoCancelado:
		return "Cancelado"
	}
	return "Desconhecido"
}

// StatusInscricao is the review state of a championship registration.
type StatusInscricao int

const (
	InscricaoPendente  StatusInscricao = 1
	InscricaoAprovada  StatusInscricao = 2
	InscricaoRejeitada StatusInscricao = 3
)

func (s StatusInscricao) String() string {
	switch s {
	case InscricaoPendente:
		return "Pendente"
	case InscricaoAprovada:
		return "Aprovada"
	case InscricaoRejeitada:
		return "Rejeitada"
	}
	return "Desconhecido"
}
