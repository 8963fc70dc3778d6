package usecase

import (
	"context"
	"testing"

	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/visibility"
	mock_interfaces "fluxo_notas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotaQueryUseCase_Listar(t *testing.T) {
	notas := []entities.Nota{
		{ID: "1", Status: entities.StatusPendente, Criador: entities.Criador{ID: "s1"}},
		{ID: "2", Status: entities.StatusAprovado, Criador: entities.Criador{ID: "s2"}},
		{ID: "3", Status: entities.StatusAprovado, Criador: entities.Criador{ID: "s1"},
			StatusManual: entities.StatusManualCompartilhado, CompartilhadoCom: "a1"},
	}

	newFixture := func(ctrl *gomock.Controller) *NotaQueryUseCase {
		store := mock_interfaces.NewMockINotaRecordStore(ctrl)
		store.EXPECT().ListAll(gomock.Any()).Return(notas, nil).AnyTimes()
		sessoes := NewSessaoManager(store)
		return NewNotaQueryUseCase(sessoes, visibility.NewResolver(entities.ParseAnalistas("a1")))
	}

	t.Run("solicitante sees own notes only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newFixture(ctrl)

		vistas, err := uc.Listar(context.Background(), entities.User{ID: "s1", Role: entities.RoleSolicitante})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vistas) != 2 {
			t.Fatalf("expected 2 notas, got %d", len(vistas))
		}
		if vistas[0].Nota.ID != "1" || vistas[1].Nota.ID != "3" {
			t.Fatalf("unexpected ids: %s %s", vistas[0].Nota.ID, vistas[1].Nota.ID)
		}
	})

	t.Run("finance queue frames aprovado as pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newFixture(ctrl)

		vistas, err := uc.Listar(context.Background(), entities.User{ID: "fin", Role: entities.RoleFinanceiro})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Nota 1 (Pendente, unshared) is filtered out for finance.
		if len(vistas) != 2 {
			t.Fatalf("expected 2 notas, got %d", len(vistas))
		}
		if vistas[0].Nota.ID != "2" || vistas[0].StatusExibido != entities.StatusPendente {
			t.Fatalf("nota 2: expected Pendente label, got %s", vistas[0].StatusExibido)
		}
		// Nota 3 is routed to a1, so generic finance sees Compartilhado.
		if vistas[1].Nota.ID != "3" || vistas[1].StatusExibido != entities.StatusCompartilhado {
			t.Fatalf("nota 3: expected Compartilhado label, got %s", vistas[1].StatusExibido)
		}
		if vistas[1].CorClasse != "secondary" {
			t.Fatalf("nota 3: expected secondary class, got %s", vistas[1].CorClasse)
		}
	})

	t.Run("admin master sees everything verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newFixture(ctrl)

		vistas, err := uc.Listar(context.Background(), entities.User{ID: "am", Role: entities.RoleAdminMaster})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vistas) != 3 {
			t.Fatalf("expected 3 notas, got %d", len(vistas))
		}
		for _, v := range vistas {
			if v.StatusExibido != v.Nota.Status {
				t.Fatalf("nota %s: expected verbatim status, got %s", v.Nota.ID, v.StatusExibido)
			}
		}
	})
}
