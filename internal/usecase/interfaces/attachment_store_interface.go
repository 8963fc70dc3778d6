package interfaces

import (
	"context"
	"io"
)

// IAttachmentStore abstracts the external file store holding note
// attachments. Attachments are owned by that store, not by this core: notes
// only carry the names, fetched lazily.
//
// The secondary set holds finance-side documents (payment receipts) kept
// apart from the requester's originals.

type IAttachmentStore interface {
	ListAttachments(ctx context.Context, notaID string) ([]string, error)
	ListSecondaryAttachments(ctx context.Context, notaID string) ([]string, error)
	Upload(ctx context.Context, notaID, name string, body io.Reader) error
	Delete(ctx context.Context, notaID, name string) error
}
