package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	"fluxo_notas/internal/usecase/interfaces"
)

var (
	ErrInvalidAnexoNome        = errors.New("invalid anexo name")
	ErrAnexoStoreNotConfigured = errors.New("attachment store not configured")
)

// IAnexoUseCase exposes the note attachment operations. The attachment store
// owns the bytes; notes only reference names.
type IAnexoUseCase interface {
	Listar(ctx context.Context, notaID string, secundario bool) ([]string, error)
	Enviar(ctx context.Context, notaID, nome string, body io.Reader) error
	Remover(ctx context.Context, notaID, nome string) error
}

type AnexoUseCase struct {
	store interfaces.IAttachmentStore
}

var _ IAnexoUseCase = (*AnexoUseCase)(nil)

func NewAnexoUseCase(store interfaces.IAttachmentStore) *AnexoUseCase {
	return &AnexoUseCase{store: store}
}

func (u *AnexoUseCase) Listar(ctx context.Context, notaID string, secundario bool) ([]string, error) {
	notaID = strings.TrimSpace(notaID)
	if notaID == "" {
		return nil, ErrInvalidNotaID
	}
	if u.store == nil {
		return nil, ErrAnexoStoreNotConfigured
	}
	if secundario {
		return u.store.ListSecondaryAttachments(ctx, notaID)
	}
	return u.store.ListAttachments(ctx, notaID)
}

func (u *AnexoUseCase) Enviar(ctx context.Context, notaID, nome string, body io.Reader) error {
	notaID = strings.TrimSpace(notaID)
	nome = strings.TrimSpace(nome)
	if notaID == "" {
		return ErrInvalidNotaID
	}
	if nome == "" || strings.Contains(nome, "/") {
		return ErrInvalidAnexoNome
	}
	if u.store == nil {
		return ErrAnexoStoreNotConfigured
	}
	return u.store.Upload(ctx, notaID, nome, body)
}

func (u *AnexoUseCase) Remover(ctx context.Context, notaID, nome string) error {
	notaID = strings.TrimSpace(notaID)
	nome = strings.TrimSpace(nome)
	if notaID == "" {
		return ErrInvalidNotaID
	}
	if nome == "" || strings.Contains(nome, "/") {
		return ErrInvalidAnexoNome
	}
	if u.store == nil {
		return ErrAnexoStoreNotConfigured
	}
	return u.store.Delete(ctx, notaID, nome)
}
