package shared

import (
	"context"

	"tournament-billing/internal/domain/invoice"
	"tournament-billing/internal/domain/roster"
	"tournament-billing/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Invoices() InvoiceRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	InvoiceByID(ctx context.Context, id string) (*InvoiceSnapshot, error)
	SelectionsByInvoice(ctx context.Context, invoiceID string) ([]SelectionSnapshot, error)
	RosterByEvent(ctx context.Context, eventID uuid.UUID) ([]ParticipantSnapshot, error)
	RequestsByIDs(ctx context.Context, ids []uuid.UUID) ([]RequestSnapshot, error)
}

type InvoiceRepository interface {
	// Create persists the local mirror together with its selection rows.
	Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id string, status invoice.Status, cancelReason *string) error
	// SyncRemoteState overwrites the mutable provider-owned columns after a
	// remote round trip.
	SyncRemoteState(ctx context.Context, tx db.DBTX, id string, status invoice.Status, versionToken, totalCents, paidCents int64) error
}

type RequestRepository interface {
	MarkResolved(ctx context.Context, tx db.DBTX, id uuid.UUID, status roster.RequestStatus, resolvedBy uuid.UUID, failureReason *string) error
}
