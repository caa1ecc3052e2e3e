package invoice

import (
	"errors"
	"time"

	"tournament-billing/internal/domain/roster"

	"github.com/google/uuid"
)

var (
	ErrAlreadyPaid    = errors.New("invoice already paid")
	ErrNotRecreatable = errors.New("invoice status does not allow recreation")
	ErrInvalidStatus  = errors.New("invalid invoice status")
)

// Status mirrors the provider's invoice lifecycle:
// DRAFT -> PUBLISHED/UNPAID -> {CANCELED | PAID | PARTIALLY_PAID}.
type Status string

const (
	StatusDraft         Status = "DRAFT"
	StatusPublished     Status = "PUBLISHED"
	StatusUnpaid        Status = "UNPAID"
	StatusCanceled      Status = "CANCELED"
	StatusPaid          Status = "PAID"
	StatusPartiallyPaid Status = "PARTIALLY_PAID"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusUnpaid, StatusCanceled, StatusPaid, StatusPartiallyPaid:
		return true
	default:
		return false
	}
}

// CancelableRemotely reports whether the provider accepts a cancel call for
// this status. Outside this set local bookkeeping degrades to a local-only
// transition.
func (s Status) CancelableRemotely() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusUnpaid, StatusPartiallyPaid:
		return true
	default:
		return false
	}
}

// Recreatable reports whether a recreate may operate on an original in this
// status. A PAID original is never silently superseded.
func (s Status) Recreatable() bool {
	switch s {
	case StatusPublished, StatusUnpaid, StatusPartiallyPaid, StatusCanceled:
		return true
	default:
		return false
	}
}

// CancelReasonNotCancelable is stored on the local mirror when the remote
// record refused cancellation and the close-out happened locally only.
const CancelReasonNotCancelable = "not cancelable remotely"

// Recipient identifies who the invoice is billed to.
type Recipient struct {
	Name       string
	Email      string
	Phone      string
	SchoolName string
	District   string
	CCEmails   []string
}

// Invoice is the locally mirrored record of a provider-hosted invoice.
// Recreate never mutates an invoice; it produces a successor and transitions
// the original to CANCELED. PredecessorInvoiceID is the authoritative chain
// linkage; the revision-suffixed number is display-only.
type Invoice struct {
	ID                   string
	InvoiceNumber        string
	VersionToken         int64
	Status               Status
	TotalCents           int64
	PaidCents            int64
	EventID              uuid.UUID
	CustomerID           string
	OrderID              string
	Recipient            Recipient
	Selections           map[uuid.UUID]roster.ParticipantSelection
	PredecessorInvoiceID *string
	CancelReason         *string
	URL                  string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ActiveSelections returns the selections still participating, keyed order
// is not guaranteed.
func (inv *Invoice) ActiveSelections() []roster.ParticipantSelection {
	out := make([]roster.ParticipantSelection, 0, len(inv.Selections))
	for _, sel := range inv.Selections {
		if sel.Status == roster.SelectionActive {
			out = append(out, sel)
		}
	}
	return out
}
