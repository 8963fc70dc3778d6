package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fluxo_notas/internal/adapter/http/handlers/mocks"
	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/workflow"
	"fluxo_notas/internal/infrastructure/identity"
	"fluxo_notas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotaRouter(h *NotaHandler) *gin.Engine {
	r := gin.New()
	v1 := r.Group("/v1")
	v1.Use(identity.Middleware())
	v1.GET("/notas", h.ListNotas)
	v1.POST("/notas", h.SubmeterNota)
	v1.PATCH("/notas/aprovar", h.AprovarNota)
	v1.PATCH("/notas/rejeitar", h.RejeitarNota)
	v1.PATCH("/notas/faturar", h.FaturarNota)
	v1.PATCH("/notas/rejeitar-financeiro", h.RejeitarNotaFinanceiro)
	v1.PATCH("/notas/compartilhar", h.CompartilharNota)
	v1.PATCH("/notas/corrigir", h.CorrigirNota)
	return r
}

func identified(req *http.Request, id string, role entities.Role) *http.Request {
	req.Header.Set(identity.HeaderUserID, id)
	req.Header.Set(identity.HeaderUserNome, "User "+id)
	req.Header.Set(identity.HeaderUserRole, string(role))
	return req
}

func TestNotaHandler_ListNotas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewNotaHandler(mocks.NewMockINotaActionsUseCase(ctrl), mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/notas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("returns viewer-resolved notas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockINotaQueryUseCase(ctrl)
		h := NewNotaHandler(mocks.NewMockINotaActionsUseCase(ctrl), query)
		r := newNotaRouter(h)

		query.EXPECT().Listar(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, viewer entities.User) ([]usecase.NotaVista, error) {
				if viewer.ID != "fin" || viewer.Role != entities.RoleFinanceiro {
					t.Fatalf("unexpected viewer: %+v", viewer)
				}
				return []usecase.NotaVista{{
					Nota:          entities.Nota{ID: "1", Titulo: "NF 10", Status: entities.StatusAprovado},
					StatusExibido: entities.StatusPendente,
					CorClasse:     "warning",
				}}, nil
			},
		)

		req := identified(httptest.NewRequest(http.MethodGet, "/v1/notas", nil), "fin", entities.RoleFinanceiro)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 nota, got %d", len(body))
		}
		if body[0]["status"] != "Aprovado" || body[0]["status_exibido"] != "Pendente" || body[0]["cor_classe"] != "warning" {
			t.Fatalf("unexpected body: %v", body[0])
		}
	})
}

func TestNotaHandler_SubmeterNota(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewNotaHandler(mocks.NewMockINotaActionsUseCase(ctrl), mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		req := identified(httptest.NewRequest(http.MethodPost, "/v1/notas", bytes.NewBufferString("{")), "s1", entities.RoleSolicitante)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewNotaHandler(mocks.NewMockINotaActionsUseCase(ctrl), mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		req := identified(httptest.NewRequest(http.MethodPost, "/v1/notas", bytes.NewBufferString(`{"titulo":"NF"}`)), "s1", entities.RoleSolicitante)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actions := mocks.NewMockINotaActionsUseCase(ctrl)
		h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		actions.EXPECT().Submeter(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, u entities.User, cmd usecase.SubmeterNotaCommand) (entities.Nota, error) {
				if cmd.Titulo != "NF 42" || cmd.Valor != 1250.5 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Nota{ID: "7", Titulo: cmd.Titulo, Valor: cmd.Valor, Status: entities.StatusPendente}, nil
			},
		)

		payload := `{"titulo":"NF 42","forma_pagamento":"pix","valor":1250.5}`
		req := identified(httptest.NewRequest(http.MethodPost, "/v1/notas", bytes.NewBufferString(payload)), "s1", entities.RoleSolicitante)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "7" || body["status"] != "Pendente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestNotaHandler_AprovarNota(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actions := mocks.NewMockINotaActionsUseCase(ctrl)
		h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		actions.EXPECT().AprovarFiscal(gomock.Any(), gomock.Any(), "1").Return(entities.Nota{ID: "1", Status: entities.StatusAnalise}, nil)

		req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/aprovar", bytes.NewBufferString(`{"nota_id":"1"}`)), "f1", entities.RoleFiscalComum)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("role not allowed maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actions := mocks.NewMockINotaActionsUseCase(ctrl)
		h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		actions.EXPECT().AprovarFiscal(gomock.Any(), gomock.Any(), "1").Return(entities.Nota{}, workflow.ErrNaoPermitido)

		req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/aprovar", bytes.NewBufferString(`{"nota_id":"1"}`)), "s1", entities.RoleSolicitante)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("status conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actions := mocks.NewMockINotaActionsUseCase(ctrl)
		h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		actions.EXPECT().AprovarFiscal(gomock.Any(), gomock.Any(), "1").Return(entities.Nota{}, workflow.ErrStatusInvalido)

		req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/aprovar", bytes.NewBufferString(`{"nota_id":"1"}`)), "fa", entities.RoleFiscalAdmin)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown nota maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actions := mocks.NewMockINotaActionsUseCase(ctrl)
		h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		actions.EXPECT().AprovarFiscal(gomock.Any(), gomock.Any(), "99").Return(entities.Nota{}, usecase.ErrNotaNotFound)

		req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/aprovar", bytes.NewBufferString(`{"nota_id":"99"}`)), "fa", entities.RoleFiscalAdmin)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("failed remote write maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actions := mocks.NewMockINotaActionsUseCase(ctrl)
		h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
		r := newNotaRouter(h)

		wrapped := errors.Join(usecase.ErrEscritaRemotaFalhou, errors.New("throttled"))
		actions.EXPECT().AprovarFiscal(gomock.Any(), gomock.Any(), "1").Return(entities.Nota{}, wrapped)

		req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/aprovar", bytes.NewBufferString(`{"nota_id":"1"}`)), "fa", entities.RoleFiscalAdmin)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestNotaHandler_RejeitarNota(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	actions := mocks.NewMockINotaActionsUseCase(ctrl)
	h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
	r := newNotaRouter(h)

	actions.EXPECT().RejeitarFiscal(gomock.Any(), gomock.Any(), "1", "cnpj divergente", "revisar").
		Return(entities.Nota{ID: "1", Status: entities.StatusErroFiscal}, nil)

	payload := `{"nota_id":"1","observacao_erro":"cnpj divergente","observacao_aprovador":"revisar"}`
	req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/rejeitar", bytes.NewBufferString(payload)), "fa", entities.RoleFiscalAdmin)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["status"] != "Erro - Fiscal" {
		t.Fatalf("unexpected status: %v", body["status"])
	}
}

func TestNotaHandler_CompartilharNota(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	actions := mocks.NewMockINotaActionsUseCase(ctrl)
	h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
	r := newNotaRouter(h)

	actions.EXPECT().Compartilhar(gomock.Any(), gomock.Any(), "2", "a1", "favor validar").
		Return(entities.Nota{ID: "2", Status: entities.StatusAprovado, StatusManual: entities.StatusManualCompartilhado, CompartilhadoCom: "a1"}, nil)

	payload := `{"nota_id":"2","destinatario_id":"a1","comentario":"favor validar"}`
	req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/compartilhar", bytes.NewBufferString(payload)), "fin", entities.RoleFinanceiro)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["compartilhado_com"] != "a1" || body["status"] != "Aprovado" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestNotaHandler_CorrigirNota(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	actions := mocks.NewMockINotaActionsUseCase(ctrl)
	h := NewNotaHandler(actions, mocks.NewMockINotaQueryUseCase(ctrl))
	r := newNotaRouter(h)

	actions.EXPECT().Corrigir(gomock.Any(), gomock.Any(), "1").Return(entities.Nota{}, workflow.ErrNaoCriador)

	req := identified(httptest.NewRequest(http.MethodPatch, "/v1/notas/corrigir", bytes.NewBufferString(`{"nota_id":"1"}`)), "s2", entities.RoleSolicitante)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
