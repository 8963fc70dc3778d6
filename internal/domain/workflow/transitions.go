package workflow

import (
	"errors"

	"fluxo_notas/internal/domain/entities"
)

var (
	// ErrNaoPermitido means the actor's role may not trigger the transition.
	ErrNaoPermitido = errors.New("papel do usuário não permite esta ação")
	// ErrStatusInvalido means the note is not in a status the trigger accepts.
	ErrStatusInvalido = errors.New("status atual da nota não aceita esta ação")
	// ErrNaoCriador means a correction was attempted by someone other than
	// the note's creator.
	ErrNaoCriador = errors.New("apenas o criador da nota pode corrigi-la")
)

// Audit note texts attached by transitions.
const (
	NotaChecagemInicial      = "Checagem inicial aprovada, aguardando fiscal master"
	NotaAprovacaoFinal       = "Aprovação fiscal final"
	NotaCorrigidaSolicitante = "Corrigido pelo solicitante"
)

// Mutation is the partial field set a transition produces. Nil pointers mean
// "leave the field alone"; a pointer to the zero value clears the field. The
// same mutation feeds both the optimistic working-set merge and the record
// store's partial update.
type Mutation struct {
	Status                     *entities.NotaStatus
	StatusManual               *string
	CompartilhadoCom           *string
	ComentarioCompartilhamento *string
	TipoErro                   *string
	ObservacaoErro             *string
	ObservacaoAprovador        *string

	// NotaHistorico is the suggested audit trail text for this transition,
	// empty when the transition carries none.
	NotaHistorico string
}

func strPtr(s string) *string { return &s }

func statusPtr(s entities.NotaStatus) *entities.NotaStatus { return &s }

// limparCompartilhamento resets all sharing fields on m.
func (m *Mutation) limparCompartilhamento() {
	m.StatusManual = strPtr("")
	m.CompartilhadoCom = strPtr("")
	m.ComentarioCompartilhamento = strPtr("")
}

// Apply returns a copy of n with the mutation's non-nil fields applied.
func (m Mutation) Apply(n entities.Nota) entities.Nota {
	if m.Status != nil {
		n.Status = *m.Status
	}
	if m.StatusManual != nil {
		n.StatusManual = *m.StatusManual
	}
	if m.CompartilhadoCom != nil {
		n.CompartilhadoCom = *m.CompartilhadoCom
	}
	if m.ComentarioCompartilhamento != nil {
		n.ComentarioCompartilhamento = *m.ComentarioCompartilhamento
	}
	if m.TipoErro != nil {
		n.TipoErro = *m.TipoErro
	}
	if m.ObservacaoErro != nil {
		n.ObservacaoErro = *m.ObservacaoErro
	}
	if m.ObservacaoAprovador != nil {
		n.ObservacaoAprovador = *m.ObservacaoAprovador
	}
	return n
}

// AprovarFiscal is the fiscal approval trigger. FiscalComum does the first
// pass (Pendente -> Análise); FiscalAdmin and AdminMaster give the final
// approval (Pendente or Análise -> Aprovado).
func AprovarFiscal(actor entities.User, n entities.Nota) (Mutation, error) {
	switch actor.Role {
	case entities.RoleFiscalComum:
		if n.Status != entities.StatusPendente {
			return Mutation{}, ErrStatusInvalido
		}
		return Mutation{
			Status:        statusPtr(entities.StatusAnalise),
			NotaHistorico: NotaChecagemInicial,
		}, nil
	case entities.RoleFiscalAdmin, entities.RoleAdminMaster:
		if n.Status != entities.StatusPendente && n.Status != entities.StatusAnalise {
			return Mutation{}, ErrStatusInvalido
		}
		return Mutation{
			Status:        statusPtr(entities.StatusAprovado),
			NotaHistorico: NotaAprovacaoFinal,
		}, nil
	default:
		return Mutation{}, ErrNaoPermitido
	}
}

// RejeitarFiscal is the fiscal rejection trigger. A FiscalComum rejection is
// still a hold (Pendente -> Análise with the observation recorded, not yet a
// hard error); FiscalAdmin/AdminMaster reject to Erro - Fiscal.
func RejeitarFiscal(actor entities.User, n entities.Nota, obsErro, obsAprovador string) (Mutation, error) {
	switch actor.Role {
	case entities.RoleFiscalComum:
		if n.Status != entities.StatusPendente {
			return Mutation{}, ErrStatusInvalido
		}
		return Mutation{
			Status:         statusPtr(entities.StatusAnalise),
			ObservacaoErro: strPtr(obsErro),
		}, nil
	case entities.RoleFiscalAdmin, entities.RoleAdminMaster:
		if n.Status != entities.StatusPendente && n.Status != entities.StatusAnalise {
			return Mutation{}, ErrStatusInvalido
		}
		return Mutation{
			Status:              statusPtr(entities.StatusErroFiscal),
			ObservacaoErro:      strPtr(obsErro),
			ObservacaoAprovador: strPtr(obsAprovador),
		}, nil
	default:
		return Mutation{}, ErrNaoPermitido
	}
}

// Faturar is the finance settlement trigger (Aprovado -> Faturado). The note
// reads as Pendente on the finance dashboards, but the stored precondition is
// Aprovado.
func Faturar(actor entities.User, n entities.Nota) (Mutation, error) {
	if !actor.Role.IsFinanceiro() {
		return Mutation{}, ErrNaoPermitido
	}
	if n.Status != entities.StatusAprovado {
		return Mutation{}, ErrStatusInvalido
	}
	return Mutation{Status: statusPtr(entities.StatusFaturado)}, nil
}

// RejeitarFinanceiro rejects an approved (possibly shared) note back to the
// requester with the error classified.
func RejeitarFinanceiro(actor entities.User, n entities.Nota, tipoErro, obsErro string) (Mutation, error) {
	if !actor.Role.IsFinanceiro() {
		return Mutation{}, ErrNaoPermitido
	}
	if n.Status != entities.StatusAprovado && !n.Compartilhada() {
		return Mutation{}, ErrStatusInvalido
	}
	return Mutation{
		Status:         statusPtr(entities.StatusErroFinanceiro),
		TipoErro:       strPtr(tipoErro),
		ObservacaoErro: strPtr(obsErro),
	}, nil
}

// Compartilhar routes an approved note to a specific analyst. Named analysts
// and AdminMaster do not share; they are the routing targets. The stored
// status is left untouched: sharing lives entirely in the manual fields, and
// a new share overwrites the previous one.
func Compartilhar(actor entities.User, n entities.Nota, analistas entities.Analistas, destinatarioID, comentario string) (Mutation, error) {
	if actor.Role != entities.RoleFinanceiro && actor.Role != entities.RoleFinanceiroMaster {
		return Mutation{}, ErrNaoPermitido
	}
	if analistas.Contem(actor.ID) {
		return Mutation{}, ErrNaoPermitido
	}
	if n.Status != entities.StatusAprovado {
		return Mutation{}, ErrStatusInvalido
	}
	return Mutation{
		StatusManual:               strPtr(entities.StatusManualCompartilhado),
		CompartilhadoCom:           strPtr(destinatarioID),
		ComentarioCompartilhamento: strPtr(comentario),
	}, nil
}

// Corrigir re-enters a rejected note after the creator fixed it. A fiscal
// error goes back to Pendente for a fresh review; a finance error re-enters
// at Aprovado, since finance rejections do not invalidate the fiscal
// approval. Both clear the sharing fields.
func Corrigir(actor entities.User, n entities.Nota) (Mutation, error) {
	if actor.Role != entities.RoleSolicitante {
		return Mutation{}, ErrNaoPermitido
	}
	if !n.CriadaPor(actor) {
		return Mutation{}, ErrNaoCriador
	}
	switch n.Status {
	case entities.StatusErroFiscal:
		m := Mutation{
			Status:              statusPtr(entities.StatusPendente),
			ObservacaoAprovador: strPtr(NotaCorrigidaSolicitante),
		}
		m.limparCompartilhamento()
		return m, nil
	case entities.StatusErroFinanceiro:
		m := Mutation{Status: statusPtr(entities.StatusAprovado)}
		m.limparCompartilhamento()
		return m, nil
	default:
		return Mutation{}, ErrStatusInvalido
	}
}
