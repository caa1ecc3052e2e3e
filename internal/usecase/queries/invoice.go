package queries

import (
	"context"
	"time"

	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

// Read models (DTO for read side)
type InvoiceView struct {
	ID                   string    `json:"id"`
	InvoiceNumber        string    `json:"invoice_number"`
	Status               string    `json:"status"`
	TotalCents           int64     `json:"total_cents"`
	PaidCents            int64     `json:"paid_cents"`
	EventID              uuid.UUID `json:"event_id"`
	RecipientName        string    `json:"recipient_name"`
	RecipientEmail       string    `json:"recipient_email"`
	SchoolName           string    `json:"school_name,omitempty"`
	District             string    `json:"district,omitempty"`
	PredecessorInvoiceID *string   `json:"predecessor_invoice_id,omitempty"`
	URL                  string    `json:"url,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type InvoiceListItem struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	RecipientName string    `json:"recipient_name"`
	SchoolName    string    `json:"school_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentView struct {
	ID          string    `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	CardBrand   *string   `json:"card_brand,omitempty"`
	Last4       *string   `json:"last_4,omitempty"`
	Note        *string   `json:"note,omitempty"`
	Date        time.Time `json:"date"`
}

// InvoiceStatusView merges the local mirror with the provider's live status
// and payment list.
type InvoiceStatusView struct {
	Invoice  InvoiceView   `json:"invoice"`
	Payments []PaymentView `json:"payments"`
}

type InvoiceQueries interface {
	GetStatus(ctx context.Context, id string) (*InvoiceStatusView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*InvoiceListItem, error)
}

type InvoiceViewRepo interface {
	FindByID(ctx context.Context, id string) (*InvoiceView, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*InvoiceListItem, error)
}

type invoiceQueriesImpl struct {
	repo     InvoiceViewRepo
	provider billing.Provider
}

func NewInvoiceQueries(repo InvoiceViewRepo, provider billing.Provider) InvoiceQueries {
	return &invoiceQueriesImpl{repo: repo, provider: provider}
}

// GetStatus serves the local mirror refreshed with live provider state. A
// provider-side NotFound degrades to the mirror alone: the record may have
// been deleted remotely after a local-only close-out.
func (q *invoiceQueriesImpl) GetStatus(ctx context.Context, id string) (*InvoiceStatusView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	remote, err := q.provider.GetInvoice(ctx, id)
	if err != nil {
		if billing.IsNotFound(err) {
			return &InvoiceStatusView{Invoice: *view, Payments: []PaymentView{}}, nil
		}
		return nil, errs.Wrap(err, "fetch remote invoice")
	}
	view.Status = remote.Status
	view.PaidCents = remote.PaidCents
	if remote.TotalCents > 0 {
		view.TotalCents = remote.TotalCents
	}

	payments, err := q.provider.ListPayments(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "list invoice payments")
	}

	views := make([]PaymentView, len(payments))
	for i, p := range payments {
		views[i] = PaymentView{
			ID:          p.ID,
			AmountCents: p.AmountCents,
			Method:      p.SourceType,
			Date:        p.CreatedAt,
		}
		if p.CardBrand != "" {
			brand, last4 := p.CardBrand, p.Last4
			views[i].CardBrand = &brand
			views[i].Last4 = &last4
		}
		if p.Note != "" {
			note := p.Note
			views[i].Note = &note
		}
	}

	return &InvoiceStatusView{Invoice: *view, Payments: views}, nil
}

func (q *invoiceQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*InvoiceListItem, error) {
	return q.repo.FindByEventID(ctx, eventID)
}
