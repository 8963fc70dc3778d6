package handlers

import (
	"errors"
	"net/http"

	"fluxo_notas/internal/infrastructure/identity"
	"fluxo_notas/internal/usecase"
	"fluxo_notas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnexo = pkg.NewDomainErrorSimple("INVALID_ANEXO_INPUT", "Invalid anexo payload", http.StatusBadRequest)

// AnexoHandler serves the attachment routes. Files live in the object store
// keyed by nota id; the "secundario" query flag selects the secondary set.
type AnexoHandler struct {
	anexos usecase.IAnexoUseCase
}

func NewAnexoHandler(anexos usecase.IAnexoUseCase) *AnexoHandler {
	return &AnexoHandler{anexos: anexos}
}

// ListAnexos godoc
// @Summary  Lista os anexos de uma nota
// @Tags     anexos
// @Produce  json
// @Param    id   path  string true  "ID da nota"
// @Param    tipo query string false "Use 'secundario' para a pasta secundária"
// @Success  200 {array} string
// @Router   /notas/{id}/anexos [get]
func (h *AnexoHandler) ListAnexos(c *gin.Context) {
	if _, err := identity.FromContext(c); err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	secundario := c.Query("tipo") == "secundario"
	nomes, err := h.anexos.Listar(c.Request.Context(), c.Param("id"), secundario)
	if err != nil {
		appErr := mapAnexoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if nomes == nil {
		nomes = []string{}
	}
	c.JSON(http.StatusOK, nomes)
}

// EnviarAnexo godoc
// @Summary  Envia um anexo para uma nota
// @Tags     anexos
// @Accept   multipart/form-data
// @Produce  json
// @Param    id   path     string true "ID da nota"
// @Param    file formData file   true "Arquivo"
// @Success  201
// @Router   /notas/{id}/anexos [post]
func (h *AnexoHandler) EnviarAnexo(c *gin.Context) {
	if _, err := identity.FromContext(c); err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidAnexo.HTTPStatus, errInvalidAnexo.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidAnexo.HTTPStatus, errInvalidAnexo.ToHTTPError())
		return
	}
	defer file.Close()

	if err := h.anexos.Enviar(c.Request.Context(), c.Param("id"), fileHeader.Filename, file); err != nil {
		appErr := mapAnexoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusCreated)
}

// RemoverAnexo godoc
// @Summary  Remove um anexo de uma nota
// @Tags     anexos
// @Produce  json
// @Param    id   path string true "ID da nota"
// @Param    nome path string true "Nome do arquivo"
// @Success  204
// @Router   /notas/{id}/anexos/{nome} [delete]
func (h *AnexoHandler) RemoverAnexo(c *gin.Context) {
	if _, err := identity.FromContext(c); err != nil {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	if err := h.anexos.Remover(c.Request.Context(), c.Param("id"), c.Param("nome")); err != nil {
		appErr := mapAnexoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAnexoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotaID), errors.Is(err, usecase.ErrInvalidAnexoNome):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAnexoStoreNotConfigured):
		return pkg.NewDomainErrorSimple("ANEXO_STORE_UNAVAILABLE", "Attachment store not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
