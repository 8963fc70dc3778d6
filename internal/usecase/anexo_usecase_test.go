package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	mock_interfaces "fluxo_notas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAnexoUseCase_Listar(t *testing.T) {
	t.Run("invalid nota id", func(t *testing.T) {
		uc := NewAnexoUseCase(nil)
		_, err := uc.Listar(context.Background(), "  ", false)
		if !errors.Is(err, ErrInvalidNotaID) {
			t.Fatalf("expected ErrInvalidNotaID, got %v", err)
		}
	})

	t.Run("store not configured", func(t *testing.T) {
		uc := NewAnexoUseCase(nil)
		_, err := uc.Listar(context.Background(), "1", false)
		if !errors.Is(err, ErrAnexoStoreNotConfigured) {
			t.Fatalf("expected ErrAnexoStoreNotConfigured, got %v", err)
		}
	})

	t.Run("primary listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAttachmentStore(ctrl)
		uc := NewAnexoUseCase(store)

		store.EXPECT().ListAttachments(gomock.Any(), "1").Return([]string{"nf.pdf"}, nil)

		nomes, err := uc.Listar(context.Background(), "1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(nomes) != 1 || nomes[0] != "nf.pdf" {
			t.Fatalf("unexpected names: %v", nomes)
		}
	})

	t.Run("secondary listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAttachmentStore(ctrl)
		uc := NewAnexoUseCase(store)

		store.EXPECT().ListSecondaryAttachments(gomock.Any(), "1").Return([]string{"comprovante.pdf"}, nil)

		nomes, err := uc.Listar(context.Background(), "1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(nomes) != 1 || nomes[0] != "comprovante.pdf" {
			t.Fatalf("unexpected names: %v", nomes)
		}
	})
}

func TestAnexoUseCase_Enviar(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewAnexoUseCase(nil)
		for _, nome := range []string{"", "  ", "a/b.pdf"} {
			if err := uc.Enviar(context.Background(), "1", nome, strings.NewReader("x")); !errors.Is(err, ErrInvalidAnexoNome) {
				t.Fatalf("nome %q: expected ErrInvalidAnexoNome, got %v", nome, err)
			}
		}
	})

	t.Run("upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAttachmentStore(ctrl)
		uc := NewAnexoUseCase(store)

		body := strings.NewReader("pdf bytes")
		store.EXPECT().Upload(gomock.Any(), "1", "nf.pdf", body).Return(nil)

		if err := uc.Enviar(context.Background(), " 1 ", " nf.pdf ", body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAnexoUseCase_Remover(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIAttachmentStore(ctrl)
	uc := NewAnexoUseCase(store)

	store.EXPECT().Delete(gomock.Any(), "1", "nf.pdf").Return(nil)

	if err := uc.Remover(context.Background(), "1", "nf.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
