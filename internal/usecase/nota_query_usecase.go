package usecase

import (
	"context"

	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/visibility"
)

// NotaVista is a note as one viewer perceives it: the stored status plus the
// resolved display label and color class, which can diverge under sharing
// rules.
type NotaVista struct {
	Nota          entities.Nota
	StatusExibido entities.NotaStatus
	CorClasse     string
}

// INotaQueryUseCase exposes the viewer-filtered working set.
type INotaQueryUseCase interface {
	Listar(ctx context.Context, viewer entities.User) ([]NotaVista, error)
}

type NotaQueryUseCase struct {
	sessoes  *SessaoManager
	resolver *visibility.Resolver
}

var _ INotaQueryUseCase = (*NotaQueryUseCase)(nil)

func NewNotaQueryUseCase(sessoes *SessaoManager, resolver *visibility.Resolver) *NotaQueryUseCase {
	return &NotaQueryUseCase{sessoes: sessoes, resolver: resolver}
}

// Listar returns the viewer's working set after inclusion filtering, each
// item labeled per the display rules. The snapshot is ordered by note id.
func (u *NotaQueryUseCase) Listar(ctx context.Context, viewer entities.User) ([]NotaVista, error) {
	sessao := u.sessoes.Obter(ctx, viewer)

	notas := sessao.Engine.Set().Snapshot()
	vistas := make([]NotaVista, 0, len(notas))
	for _, n := range notas {
		if !u.resolver.Inclui(n, viewer) {
			continue
		}
		label, cor := u.resolver.Exibicao(n, viewer)
		vistas = append(vistas, NotaVista{Nota: n, StatusExibido: label, CorClasse: cor})
	}
	return vistas, nil
}
