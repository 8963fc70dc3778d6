package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/workflow"
	"fluxo_notas/internal/usecase/interfaces"
)

var (
	ErrNotaNotFound         = errors.New("nota not found")
	ErrInvalidNotaID        = errors.New("invalid nota id")
	ErrInvalidTitulo        = errors.New("invalid titulo")
	ErrInvalidValor         = errors.New("invalid valor")
	ErrInvalidDataPagamento = errors.New("invalid data_pagamento")
	ErrInvalidDestinatario  = errors.New("invalid destinatario")
	ErrEscritaRemotaFalhou  = errors.New("record store write failed")
)

// SubmeterNotaCommand carries the requester-provided fields of a new note.
type SubmeterNotaCommand struct {
	Titulo           string
	Filial           string
	NumeroNotaFiscal string
	Pedidos          []string
	FormaPagamento   string
	DataPagamento    string
	Valor            float64
	Banco            string
	Agencia          string
	Conta            string
	TipoConta        string
	ChavePix         string
}

// INotaActionsUseCase exposes the user gestures of the approval pipeline.
// Each action composes: permission check against the state machine, an
// optimistic working-set merge, the remote write, and best-effort audit.
// Actions are independent; only one runs per user gesture.

type INotaActionsUseCase interface {
	Submeter(ctx context.Context, actor entities.User, cmd SubmeterNotaCommand) (entities.Nota, error)
	AprovarFiscal(ctx context.Context, actor entities.User, notaID string) (entities.Nota, error)
	RejeitarFiscal(ctx context.Context, actor entities.User, notaID, obsErro, obsAprovador string) (entities.Nota, error)
	Faturar(ctx context.Context, actor entities.User, notaID string) (entities.Nota, error)
	RejeitarFinanceiro(ctx context.Context, actor entities.User, notaID, tipoErro, obsErro string) (entities.Nota, error)
	Compartilhar(ctx context.Context, actor entities.User, notaID, destinatarioID, comentario string) (entities.Nota, error)
	Corrigir(ctx context.Context, actor entities.User, notaID string) (entities.Nota, error)
}

type NotaActionsUseCase struct {
	store     interfaces.INotaRecordStore
	sessoes   *SessaoManager
	gateway   interfaces.IPaymentGateway
	analistas entities.Analistas
}

var _ INotaActionsUseCase = (*NotaActionsUseCase)(nil)

func NewNotaActionsUseCase(
	store interfaces.INotaRecordStore,
	sessoes *SessaoManager,
	gateway interfaces.IPaymentGateway,
	analistas entities.Analistas,
) *NotaActionsUseCase {
	return &NotaActionsUseCase{
		store:     store,
		sessoes:   sessoes,
		gateway:   gateway,
		analistas: analistas,
	}
}

// Submeter creates a new note. The note is Processando while the submission
// is in flight; the record store assigns the id and the note lands as
// Pendente, awaiting fiscal review.
func (u *NotaActionsUseCase) Submeter(ctx context.Context, actor entities.User, cmd SubmeterNotaCommand) (entities.Nota, error) {
	if strings.TrimSpace(cmd.Titulo) == "" {
		return entities.Nota{}, ErrInvalidTitulo
	}
	if cmd.Valor <= 0 {
		return entities.Nota{}, ErrInvalidValor
	}
	if cmd.DataPagamento != "" {
		if _, err := time.Parse("2006-01-02", cmd.DataPagamento); err != nil {
			return entities.Nota{}, ErrInvalidDataPagamento
		}
	}

	now := time.Now().UTC()
	n := entities.Nota{
		Titulo:           strings.TrimSpace(cmd.Titulo),
		Filial:           cmd.Filial,
		NumeroNotaFiscal: cmd.NumeroNotaFiscal,
		Pedidos:          cmd.Pedidos,
		FormaPagamento:   cmd.FormaPagamento,
		DataPagamento:    cmd.DataPagamento,
		Valor:            cmd.Valor,
		Banco:            cmd.Banco,
		Agencia:          cmd.Agencia,
		Conta:            cmd.Conta,
		TipoConta:        cmd.TipoConta,
		ChavePix:         cmd.ChavePix,
		Criador:          entities.Criador{ID: actor.ID, Nome: actor.Nome},
		Status:           entities.StatusProcessando,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.store.Create(ctx, n)
	if err != nil {
		log.Printf("[nota][usecase] create failed user=%s err=%v", actor.ID, err)
		return entities.Nota{}, fmt.Errorf("%w: %v", ErrEscritaRemotaFalhou, err)
	}

	sessao := u.sessoes.Obter(ctx, actor)
	sessao.Engine.Set().Merge([]entities.Nota{created})
	log.Printf("[nota][usecase] submitted nota_id=%s user=%s status=%s", created.ID, actor.ID, created.Status)
	return created, nil
}

// AprovarFiscal runs the fiscal approval transition appropriate for the
// actor's tier.
func (u *NotaActionsUseCase) AprovarFiscal(ctx context.Context, actor entities.User, notaID string) (entities.Nota, error) {
	return u.executar(ctx, actor, notaID, "aprovar-fiscal", "", func(n entities.Nota) (workflow.Mutation, error) {
		return workflow.AprovarFiscal(actor, n)
	})
}

// RejeitarFiscal rejects (first tier: hold; final tier: Erro - Fiscal).
func (u *NotaActionsUseCase) RejeitarFiscal(ctx context.Context, actor entities.User, notaID, obsErro, obsAprovador string) (entities.Nota, error) {
	return u.executar(ctx, actor, notaID, "rejeitar-fiscal", obsErro, func(n entities.Nota) (workflow.Mutation, error) {
		return workflow.RejeitarFiscal(actor, n, obsErro, obsAprovador)
	})
}

// Faturar settles an approved note. On success the settlement is registered
// with the payment gateway best-effort; a gateway failure is logged and never
// rolls back the transition.
func (u *NotaActionsUseCase) Faturar(ctx context.Context, actor entities.User, notaID string) (entities.Nota, error) {
	n, err := u.executar(ctx, actor, notaID, "faturar", "", func(n entities.Nota) (workflow.Mutation, error) {
		return workflow.Faturar(actor, n)
	})
	if err != nil {
		return entities.Nota{}, err
	}
	u.registrarLiquidacao(ctx, n)
	return n, nil
}

// RejeitarFinanceiro rejects an approved (possibly shared) note back to the
// requester with a classified error.
func (u *NotaActionsUseCase) RejeitarFinanceiro(ctx context.Context, actor entities.User, notaID, tipoErro, obsErro string) (entities.Nota, error) {
	return u.executar(ctx, actor, notaID, "rejeitar-financeiro", obsErro, func(n entities.Nota) (workflow.Mutation, error) {
		return workflow.RejeitarFinanceiro(actor, n, tipoErro, obsErro)
	})
}

// Compartilhar routes an approved note to a named analyst.
func (u *NotaActionsUseCase) Compartilhar(ctx context.Context, actor entities.User, notaID, destinatarioID, comentario string) (entities.Nota, error) {
	if strings.TrimSpace(destinatarioID) == "" {
		return entities.Nota{}, ErrInvalidDestinatario
	}
	return u.executar(ctx, actor, notaID, "compartilhar", comentario, func(n entities.Nota) (workflow.Mutation, error) {
		return workflow.Compartilhar(actor, n, u.analistas, strings.TrimSpace(destinatarioID), comentario)
	})
}

// Corrigir re-submits a corrected note on behalf of its creator.
func (u *NotaActionsUseCase) Corrigir(ctx context.Context, actor entities.User, notaID string) (entities.Nota, error) {
	return u.executar(ctx, actor, notaID, "corrigir", "", func(n entities.Nota) (workflow.Mutation, error) {
		return workflow.Corrigir(actor, n)
	})
}

// executar is the shared orchestration: resolve the note from the actor's
// working set, run the transition, merge optimistically, write remotely, and
// append the audit entry. A failed remote write surfaces to the caller and
// triggers reconciliation instead of an in-place rollback.
func (u *NotaActionsUseCase) executar(
	ctx context.Context,
	actor entities.User,
	notaID, acao, observacao string,
	transicao func(entities.Nota) (workflow.Mutation, error),
) (entities.Nota, error) {
	notaID = strings.TrimSpace(notaID)
	if notaID == "" {
		return entities.Nota{}, ErrInvalidNotaID
	}

	sessao := u.sessoes.Obter(ctx, actor)
	set := sessao.Engine.Set()

	n, ok := set.Get(notaID)
	if !ok {
		return entities.Nota{}, ErrNotaNotFound
	}

	m, err := transicao(n)
	if err != nil {
		log.Printf("[nota][usecase] %s denied nota_id=%s user=%s role=%s err=%v", acao, notaID, actor.ID, actor.Role, err)
		return entities.Nota{}, err
	}

	// Optimistic merge first: this is what the user sees. The next poll
	// converges to the same state or supersedes it.
	otimista := m.Apply(n)
	otimista.UpdatedAt = time.Now().UTC()
	set.Merge([]entities.Nota{otimista})

	atualizada, err := u.store.Update(ctx, notaID, m)
	if err != nil {
		log.Printf("[nota][usecase] %s remote write failed nota_id=%s user=%s err=%v", acao, notaID, actor.ID, err)
		if rerr := sessao.Engine.Reconcile(ctx); rerr != nil {
			log.Printf("[nota][usecase] reconcile after failed write also failed nota_id=%s err=%v", notaID, rerr)
		}
		return entities.Nota{}, fmt.Errorf("%w: %v", ErrEscritaRemotaFalhou, err)
	}
	set.Merge([]entities.Nota{atualizada})

	u.registrarHistorico(ctx, atualizada, actor, m.NotaHistorico, observacao)
	log.Printf("[nota][usecase] %s ok nota_id=%s user=%s status=%s", acao, notaID, actor.ID, atualizada.Status)
	return atualizada, nil
}

// registrarHistorico appends the audit trail entry. Best-effort: a failure is
// logged and never rolls back the transition.
func (u *NotaActionsUseCase) registrarHistorico(ctx context.Context, n entities.Nota, actor entities.User, mensagem, observacao string) {
	entry := entities.HistoricoEntry{
		NotaID:     n.ID,
		NovoStatus: string(n.Status),
		Observacao: observacao,
		Mensagem:   mensagem,
		Autor:      actor.Nome,
		CriadoEm:   time.Now().UTC(),
	}
	if err := u.store.AppendHistoryLog(ctx, n.ID, entry); err != nil {
		log.Printf("[nota][usecase] history append failed nota_id=%s err=%v", n.ID, err)
	}
}

// registrarLiquidacao registers the settlement with the payment gateway.
// Best-effort, same policy as the audit trail.
func (u *NotaActionsUseCase) registrarLiquidacao(ctx context.Context, n entities.Nota) {
	if u.gateway == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": n.Valor,
		"payment_method_id":  "pix",
		"description":        fmt.Sprintf("Nota %s", n.ID),
		"external_reference": n.ID,
	})
	if err != nil {
		log.Printf("[nota][usecase] settlement payload marshal failed nota_id=%s err=%v", n.ID, err)
		return
	}
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[nota][usecase] settlement registration failed nota_id=%s err=%v", n.ID, err)
		return
	}
	log.Printf("[nota][usecase] settlement registered nota_id=%s provider_payment_id=%s provider_status=%s", n.ID, providerID, providerStatus)
}
