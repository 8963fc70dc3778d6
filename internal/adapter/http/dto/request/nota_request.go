package request

// SubmeterNotaRequest is the payload a requester submits to open a new
// payment note.
type SubmeterNotaRequest struct {
	Titulo           string   `json:"titulo" binding:"required"`
	Filial           string   `json:"filial"`
	NumeroNotaFiscal string   `json:"numero_nota_fiscal"`
	Pedidos          []string `json:"pedidos"`
	FormaPagamento   string   `json:"forma_pagamento" binding:"required"`
	DataPagamento    string   `json:"data_pagamento"`
	Valor            float64  `json:"valor" binding:"required"`
	Banco            string   `json:"banco"`
	Agencia          string   `json:"agencia"`
	Conta            string   `json:"conta"`
	TipoConta        string   `json:"tipo_conta"`
	ChavePix         string   `json:"chave_pix"`
}

// AcaoNotaRequest is the payload for actions that only need the target note
// (fiscal approve, faturar, corrigir).
type AcaoNotaRequest struct {
	NotaID string `json:"nota_id" binding:"required"`
}

// RejeitarFiscalRequest carries the fiscal rejection observations.
type RejeitarFiscalRequest struct {
	NotaID              string `json:"nota_id" binding:"required"`
	ObservacaoErro      string `json:"observacao_erro" binding:"required"`
	ObservacaoAprovador string `json:"observacao_aprovador"`
}

// RejeitarFinanceiroRequest carries the classified finance rejection.
type RejeitarFinanceiroRequest struct {
	NotaID         string `json:"nota_id" binding:"required"`
	TipoErro       string `json:"tipo_erro" binding:"required"`
	ObservacaoErro string `json:"observacao_erro"`
}

// CompartilharRequest routes a note to a named analyst.
type CompartilharRequest struct {
	NotaID         string `json:"nota_id" binding:"required"`
	DestinatarioID string `json:"destinatario_id" binding:"required"`
	Comentario     string `json:"comentario"`
}
