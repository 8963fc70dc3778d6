package routes

import (
	"fluxo_notas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNotas = "/notas"

func addNotaRoutes(rg *gin.RouterGroup, notaHandler *handlers.NotaHandler, anexoHandler *handlers.AnexoHandler) {
	notas := rg.Group(PathNotas)
	{
		notas.GET("", notaHandler.ListNotas)
		notas.POST("", notaHandler.SubmeterNota)
		notas.PATCH("/aprovar", notaHandler.AprovarNota)
		notas.PATCH("/rejeitar", notaHandler.RejeitarNota)
		notas.PATCH("/faturar", notaHandler.FaturarNota)
		notas.PATCH("/rejeitar-financeiro", notaHandler.RejeitarNotaFinanceiro)
		notas.PATCH("/compartilhar", notaHandler.CompartilharNota)
		notas.PATCH("/corrigir", notaHandler.CorrigirNota)

		notas.GET("/:id/anexos", anexoHandler.ListAnexos)
		notas.POST("/:id/anexos", anexoHandler.EnviarAnexo)
		notas.DELETE("/:id/anexos/:nome", anexoHandler.RemoverAnexo)
	}
}
