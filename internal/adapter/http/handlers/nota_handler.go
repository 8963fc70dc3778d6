package handlers

import (
	"errors"
	"net/http"

	request "fluxo_notas/internal/adapter/http/dto/request"
	response "fluxo_notas/internal/adapter/http/dto/response"
	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/workflow"
	"fluxo_notas/internal/infrastructure/identity"
	"fluxo_notas/internal/usecase"
	"fluxo_notas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNotaPayload = pkg.NewDomainErrorSimple("INVALID_NOTA_INPUT", "Invalid nota payload", http.StatusBadRequest)
	errNoIdentity         = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing identity", http.StatusUnauthorized)
)

// NotaHandler exposes the approval-pipeline gestures over HTTP. Every route
// runs behind the identity middleware; the acting user comes from the
// request context.

type NotaHandler struct {
	actions usecase.INotaActionsUseCase
	query   usecase.INotaQueryUseCase
}

func NewNotaHandler(actions usecase.INotaActionsUseCase, query usecase.INotaQueryUseCase) *NotaHandler {
	return &NotaHandler{actions: actions, query: query}
}

// ListNotas godoc
// @Summary  Lista as notas visíveis ao usuário autenticado
// @Tags     notas
// @Produce  json
// @Success  200 {array} response.NotaResponse
// @Router   /notas [get]
func (h *NotaHandler) ListNotas(c *gin.Context) {
	viewer, err := identity.FromContext(c)
	if err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	vistas, err := h.query.Listar(c.Request.Context(), viewer)
	if err != nil {
		appErr := mapNotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.NotaResponse, 0, len(vistas))
	for _, v := range vistas {
		out = append(out, response.FromNotaVista(v.Nota, v.StatusExibido, v.CorClasse))
	}
	c.JSON(http.StatusOK, out)
}

// SubmeterNota godoc
// @Summary  Submete uma nova nota de pagamento
// @Tags     notas
// @Accept   json
// @Produce  json
// @Param    payload body request.SubmeterNotaRequest true "Nota"
// @Success  201 {object} response.NotaResponse
// @Router   /notas [post]
func (h *NotaHandler) SubmeterNota(c *gin.Context) {
	actor, err := identity.FromContext(c)
	if err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.SubmeterNotaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotaPayload.HTTPStatus, errInvalidNotaPayload.ToHTTPError())
		return
	}

	n, err := h.actions.Submeter(c.Request.Context(), actor, usecase.SubmeterNotaCommand{
		Titulo:           payload.Titulo,
		Filial:           payload.Filial,
		NumeroNotaFiscal: payload.NumeroNotaFiscal,
		Pedidos:          payload.Pedidos,
		FormaPagamento:   payload.FormaPagamento,
		DataPagamento:    payload.DataPagamento,
		Valor:            payload.Valor,
		Banco:            payload.Banco,
		Agencia:          payload.Agencia,
		Conta:            payload.Conta,
		TipoConta:        payload.TipoConta,
		ChavePix:         payload.ChavePix,
	})
	if err != nil {
		appErr := mapNotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromNota(n))
}

// AprovarNota godoc
// @Summary  Aprovação fiscal (primeira ou segunda instância, conforme o papel)
// @Tags     notas
// @Accept   json
// @Produce  json
// @Param    payload body request.AcaoNotaRequest true "Ação"
// @Success  200 {object} response.NotaResponse
// @Router   /notas/aprovar [patch]
func (h *NotaHandler) AprovarNota(c *gin.Context) {
	h.patchNota(c, func(actor entities.User, req request.AcaoNotaRequest) (entities.Nota, error) {
		return h.actions.AprovarFiscal(c.Request.Context(), actor, req.NotaID)
	})
}

// RejeitarNota godoc
// @Summary  Rejeição fiscal
// @Tags     notas
// @Accept   json
// @Produce  json
// @Param    payload body request.RejeitarFiscalRequest true "Rejeição"
// @Success  200 {object} response.NotaResponse
// @Router   /notas/rejeitar [patch]
func (h *NotaHandler) RejeitarNota(c *gin.Context) {
	actor, err := identity.FromContext(c)
	if err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.RejeitarFiscalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotaPayload.HTTPStatus, errInvalidNotaPayload.ToHTTPError())
		return
	}

	n, err := h.actions.RejeitarFiscal(c.Request.Context(), actor, payload.NotaID, payload.ObservacaoErro, payload.ObservacaoAprovador)
	if err != nil {
		appErr := mapNotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNota(n))
}

// FaturarNota godoc
// @Summary  Faturamento (liquidação) pelo financeiro
// @Tags     notas
// @Accept   json
// @Produce  json
// @Param    payload body request.AcaoNotaRequest true "Ação"
// @Success  200 {object} response.NotaResponse
// @Router   /notas/faturar [patch]
func (h *NotaHandler) FaturarNota(c *gin.Context) {
	h.patchNota(c, func(actor entities.User, req request.AcaoNotaRequest) (entities.Nota, error) {
		return h.actions.Faturar(c.Request.Context(), actor, req.NotaID)
	})
}

// RejeitarNotaFinanceiro godoc
// @Summary  Rejeição pelo financeiro com classificação do erro
// @Tags     notas
// @Accept   json
// @Produce  json
// @Param    payload body request.RejeitarFinanceiroRequest true "Rejeição"
// @Success  200 {object} response.NotaResponse
// @Router   /notas/rejeitar-financeiro [patch]
func (h *NotaHandler) RejeitarNotaFinanceiro(c *gin.Context) {
	actor, err := identity.FromContext(c)
	if err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.RejeitarFinanceiroRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotaPayload.HTTPStatus, errInvalidNotaPayload.ToHTTPError())
		return
	}

	n, err := h.actions.RejeitarFinanceiro(c.Request.Context(), actor, payload.NotaID, payload.TipoErro, payload.ObservacaoErro)
	if err != nil {
		appErr := mapNotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNota(n))
}

// CompartilharNota godoc
// @Summary  Compartilha uma nota aprovada com um analista nomeado
// @Tags     notas
// @Accept   json
// @Produce  json
// @Param    payload body request.CompartilharRequest true "Compartilhamento"
// @Success  200 {object} response.NotaResponse
// @Router   /notas/compartilhar [patch]
func (h *NotaHandler) CompartilharNota(c *gin.Context) {
	actor, err := identity.FromContext(c)
	if err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.CompartilharRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotaPayload.HTTPStatus, errInvalidNotaPayload.ToHTTPError())
		return
	}

	n, err := h.actions.Compartilhar(c.Request.Context(), actor, payload.NotaID, payload.DestinatarioID, payload.Comentario)
	if err != nil {
		appErr := mapNotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNota(n))
}

// CorrigirNota godoc
// @Summary  Reenvia uma nota corrigida pelo criador
// @Tags     notas
// @Accept   json
// @Produce  json
// @Param    payload body request.AcaoNotaRequest true "Ação"
// @Success  200 {object} response.NotaResponse
// @Router   /notas/corrigir [patch]
func (h *NotaHandler) CorrigirNota(c *gin.Context) {
	h.patchNota(c, func(actor entities.User, req request.AcaoNotaRequest) (entities.Nota, error) {
		return h.actions.Corrigir(c.Request.Context(), actor, req.NotaID)
	})
}

func (h *NotaHandler) patchNota(
	c *gin.Context,
	action func(actor entities.User, req request.AcaoNotaRequest) (entities.Nota, error),
) {
	actor, err := identity.FromContext(c)
	if err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.AcaoNotaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotaPayload.HTTPStatus, errInvalidNotaPayload.ToHTTPError())
		return
	}

	n, err := action(actor, payload)
	if err != nil {
		appErr := mapNotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNota(n))
}

func mapNotaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, workflow.ErrNaoPermitido), errors.Is(err, workflow.ErrNaoCriador):
		return pkg.NewDomainErrorSimple("NOT_ALLOWED", "Role not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, workflow.ErrStatusInvalido):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Nota status does not accept this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotaNotFound):
		return pkg.NewDomainErrorSimple("NOTA_NOT_FOUND", "Nota not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidNotaID),
		errors.Is(err, usecase.ErrInvalidTitulo),
		errors.Is(err, usecase.ErrInvalidValor),
		errors.Is(err, usecase.ErrInvalidDataPagamento),
		errors.Is(err, usecase.ErrInvalidDestinatario):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEscritaRemotaFalhou):
		return pkg.NewDomainError("STORE_WRITE_FAILED", "Record store write failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
