package entities

import "time"

// NotaStatus represents the lifecycle of a payment note (nota de pagamento).
//
// Domain notes:
//   - The record store is the source of truth for note state.
//   - The values are wire values shared with the record store; they must not
//     be renamed.
//   - "Compartilhado" never appears as a stored Status: it is a display label
//     resolved per viewer (see internal/domain/visibility) layered on top of
//     Aprovado/Análise. It lives in StatusManual when finance routes a note
//     to a specific analyst.

type NotaStatus string

const (
	StatusProcessando    NotaStatus = "Processando"
	StatusPendente       NotaStatus = "Pendente"
	StatusAnalise        NotaStatus = "Análise"
	StatusAprovado       NotaStatus = "Aprovado"
	StatusLancado        NotaStatus = "Lançado"
	StatusFaturado       NotaStatus = "Faturado"
	StatusErroFiscal     NotaStatus = "Erro - Fiscal"
	StatusErroFinanceiro NotaStatus = "Erro - Financeiro"
	StatusCompartilhado  NotaStatus = "Compartilhado"
)

// StatusManualCompartilhado is the only accepted StatusManual value.
const StatusManualCompartilhado = string(StatusCompartilhado)

// Valid reports whether s is a member of the closed status enum.
func (s NotaStatus) Valid() bool {
	switch s {
	case StatusProcessando, StatusPendente, StatusAnalise, StatusAprovado,
		StatusLancado, StatusFaturado, StatusErroFiscal, StatusErroFinanceiro,
		StatusCompartilhado:
		return true
	}
	return false
}

// IsErro reports whether s is one of the rejection branches. Error statuses
// are never masked by sharing rules.
func (s NotaStatus) IsErro() bool {
	return s == StatusErroFiscal || s == StatusErroFinanceiro
}

// IsLiquidado reports whether finance already settled the note.
func (s NotaStatus) IsLiquidado() bool {
	return s == StatusLancado || s == StatusFaturado
}

// Criador identifies who submitted the note. Legacy records may lack the id,
// in which case Nome is the only equality handle.
type Criador struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Nota is the payment request flowing through the approval pipeline.
//
// Storage model (DynamoDB):
//   - PK: id (numeric string assigned by the store's atomic counter)
//
// Sharing fields:
//   - StatusManual holds "Compartilhado" when finance manually routed the
//     note; CompartilhadoCom holds the recipient's user id. Sharing is
//     overwritten, never accumulated: at most one recipient at a time.
//
// Anexos holds attachment names only; the bytes live in the attachment store
// and are fetched lazily.

type Nota struct {
	ID               string     `json:"id"`
	Titulo           string     `json:"titulo"`
	Filial           string     `json:"filial"`
	NumeroNotaFiscal string     `json:"numero_nota_fiscal"`
	Pedidos          []string   `json:"pedidos,omitempty"`
	FormaPagamento   string     `json:"forma_pagamento"`
	DataPagamento    string     `json:"data_pagamento"`
	Valor            float64    `json:"valor"`
	Banco            string     `json:"banco,omitempty"`
	Agencia          string     `json:"agencia,omitempty"`
	Conta            string     `json:"conta,omitempty"`
	TipoConta        string     `json:"tipo_conta,omitempty"`
	ChavePix         string     `json:"chave_pix,omitempty"`
	Criador          Criador    `json:"criador"`
	Status           NotaStatus `json:"status"`

	StatusManual               string `json:"status_manual,omitempty"`
	CompartilhadoCom           string `json:"compartilhado_com,omitempty"`
	ComentarioCompartilhamento string `json:"comentario_compartilhamento,omitempty"`

	TipoErro            string `json:"tipo_erro,omitempty"`
	ObservacaoErro      string `json:"observacao_erro,omitempty"`
	ObservacaoAprovador string `json:"observacao_aprovador,omitempty"`

	Anexos []string `json:"anexos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Compartilhada reports whether the note is currently routed to an analyst.
func (n Nota) Compartilhada() bool {
	return n.StatusManual == StatusManualCompartilhado
}

// CriadaPor reports whether u submitted the note. Matches by creator id, with
// a fallback on the creator display name for legacy records lacking an id.
func (n Nota) CriadaPor(u User) bool {
	if n.Criador.ID != "" {
		return n.Criador.ID == u.ID
	}
	return n.Criador.Nome != "" && n.Criador.Nome == u.Nome
}

// HistoricoEntry is one append-only audit trail record for a note.
type HistoricoEntry struct {
	ID         string    `json:"id"`
	NotaID     string    `json:"nota_id"`
	NovoStatus string    `json:"novo_status"`
	Observacao string    `json:"observacao,omitempty"`
	Mensagem   string    `json:"mensagem,omitempty"`
	Autor      string    `json:"autor"`
	CriadoEm   time.Time `json:"criado_em"`
}
