package usecases

import (
	"context"

	"github.com/google/uuid"
)

// DocumentStorage is the external document store. The core only needs
// a write that yields a resolvable reference, a view URL and a delete;
// on write failure no repository row may be created.
type DocumentStorage interface {
	Put(ctx context.Context, ownerID uuid.UUID, docType string, data []byte) (storageRef string, err error)
	URL(storageRef string) string
	Delete(ctx context.Context, storageRef string) error
}

// VerificationFlow is signalled when a coordinator flips
// verificationInitiate on. The tracker does not block on it or await
// its completion; it only reports how many legal/technical reviewer
// slots the flow decided to open.
type VerificationFlow interface {
	Initiate(ctx context.Context, leadID string, requestedAmount int64) error
}

// ExportSink accepts an ordered sequence of flat records plus a file
// and sheet name and materializes the actual file. Keys are stable,
// human-readable column headers.
type ExportSink interface {
	Write(sheetName string, headers []string, rows [][]string) ([]byte, error)
}

// CompletionNotifier is told when a case is finalized.
type CompletionNotifier interface {
	DisbursementCompleted(ctx context.Context, leadID, leadName, paymentAmount string) error
}
