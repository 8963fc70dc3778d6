package response

import (
	"time"

	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/visibility"
)

// NotaResponse is a note as presented to one viewer. Status carries the
// stored workflow status; StatusExibido and CorClasse carry the label this
// viewer perceives, which can diverge under sharing rules.
type NotaResponse struct {
	ID               string   `json:"id"`
	Titulo           string   `json:"titulo"`
	Filial           string   `json:"filial,omitempty"`
	NumeroNotaFiscal string   `json:"numero_nota_fiscal,omitempty"`
	Pedidos          []string `json:"pedidos,omitempty"`
	FormaPagamento   string   `json:"forma_pagamento,omitempty"`
	DataPagamento    string   `json:"data_pagamento,omitempty"`
	Valor            float64  `json:"valor"`
	Banco            string   `json:"banco,omitempty"`
	Agencia          string   `json:"agencia,omitempty"`
	Conta            string   `json:"conta,omitempty"`
	TipoConta        string   `json:"tipo_conta,omitempty"`
	ChavePix         string   `json:"chave_pix,omitempty"`
	CriadorID        string   `json:"criador_id,omitempty"`
	CriadorNome      string   `json:"criador_nome,omitempty"`

	Status        string `json:"status"`
	StatusExibido string `json:"status_exibido"`
	CorClasse     string `json:"cor_classe"`

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

// FromNotaVista builds the viewer-resolved representation.
func FromNotaVista(n entities.Nota, statusExibido entities.NotaStatus, corClasse string) NotaResponse {
	r := FromNota(n)
	r.StatusExibido = string(statusExibido)
	r.CorClasse = corClasse
	return r
}

// FromNota builds the representation with the stored status displayed
// verbatim (used for action results returned to the acting user).
func FromNota(n entities.Nota) NotaResponse {
	return NotaResponse{
		ID:               n.ID,
		Titulo:           n.Titulo,
		Filial:           n.Filial,
		NumeroNotaFiscal: n.NumeroNotaFiscal,
		Pedidos:          n.Pedidos,
		FormaPagamento:   n.FormaPagamento,
		DataPagamento:    n.DataPagamento,
		Valor:            n.Valor,
		Banco:            n.Banco,
		Agencia:          n.Agencia,
		Conta:            n.Conta,
		TipoConta:        n.TipoConta,
		ChavePix:         n.ChavePix,
		CriadorID:        n.Criador.ID,
		CriadorNome:      n.Criador.Nome,

		Status:        string(n.Status),
		StatusExibido: string(n.Status),
		CorClasse:     visibility.CorClasse(n.Status),

		StatusManual:               n.StatusManual,
		CompartilhadoCom:           n.CompartilhadoCom,
		ComentarioCompartilhamento: n.ComentarioCompartilhamento,

		TipoErro:            n.TipoErro,
		ObservacaoErro:      n.ObservacaoErro,
		ObservacaoAprovador: n.ObservacaoAprovador,

		Anexos: n.Anexos,

		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
