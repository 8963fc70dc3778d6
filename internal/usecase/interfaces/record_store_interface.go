package interfaces

import (
	"context"
	"time"

	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/workflow"
)

// INotaRecordStore abstracts the external system of record for notes.
//
// The store is authoritative:
//   - it assigns note ids (monotonically increasing);
//   - ListAll is paginated internally and fully materialized by the
//     implementation;
//   - ListChangedSince returns only items changed after the watermark;
//   - Update has partial semantics: only the mutation's non-nil fields change;
//   - AppendHistoryLog is best-effort audit, fire-and-forget acceptable.

type INotaRecordStore interface {
	ListAll(ctx context.Context) ([]entities.Nota, error)
	ListChangedSince(ctx context.Context, watermark time.Time) ([]entities.Nota, error)
	Create(ctx context.Context, n entities.Nota) (entities.Nota, error)
	Update(ctx context.Context, id string, m workflow.Mutation) (entities.Nota, error)
	AppendHistoryLog(ctx context.Context, notaID string, e entities.HistoricoEntry) error
}
