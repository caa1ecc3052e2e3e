package readstore

import (
	"context"

	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/db"
	"tournament-billing/internal/pkg/pgconv"
	"tournament-billing/internal/usecase/queries"
	"tournament-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(dbtx db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: dbtx}
}

const invoiceColumns = `
    id, invoice_number, version_token, status, total_cents, paid_cents,
    event_id, customer_id, order_id,
    recipient_name, recipient_email, recipient_phone, school_name, district, cc_emails,
    predecessor_invoice_id, cancel_reason, url, created_at, updated_at`

func (r *InvoiceReadStore) FindSnapshotByID(ctx context.Context, id string) (*shared.InvoiceSnapshot, error) {
	query := `SELECT` + invoiceColumns + `
FROM invoices
WHERE id = $1`

	var snap shared.InvoiceSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.InvoiceNumber, &snap.VersionToken, &snap.Status, &snap.TotalCents, &snap.PaidCents,
		&snap.EventID, &snap.CustomerID, &snap.OrderID,
		&snap.RecipientName, &snap.RecipientEmail, &snap.RecipientPhone, &snap.SchoolName, &snap.District, &snap.CCEmails,
		&snap.PredecessorInvoiceID, &snap.CancelReason, &snap.URL, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice by ID", err)
	}
	return &snap, nil
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id string) (*queries.InvoiceView, error) {
	snap, err := r.FindSnapshotByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.InvoiceView{
		ID:                   snap.ID,
		InvoiceNumber:        snap.InvoiceNumber,
		Status:               snap.Status,
		TotalCents:           snap.TotalCents,
		PaidCents:            snap.PaidCents,
		EventID:              snap.EventID,
		RecipientName:        snap.RecipientName,
		RecipientEmail:       snap.RecipientEmail,
		SchoolName:           snap.SchoolName,
		District:             snap.District,
		PredecessorInvoiceID: snap.PredecessorInvoiceID,
		URL:                  snap.URL,
		CreatedAt:            snap.CreatedAt,
		UpdatedAt:            snap.UpdatedAt,
	}, nil
}

func (r *InvoiceReadStore) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*queries.InvoiceListItem, error) {
	const query = `
SELECT id, invoice_number, status, total_cents, recipient_name, school_name, created_at
FROM invoices
WHERE event_id = $1
ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices by event", err)
	}
	defer rows.Close()

	var items []*queries.InvoiceListItem
	for rows.Next() {
		var item queries.InvoiceListItem
		if err := rows.Scan(&item.ID, &item.InvoiceNumber, &item.Status, &item.TotalCents,
			&item.RecipientName, &item.SchoolName, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice list row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice list rows", err)
	}
	return items, nil
}

func (r *InvoiceReadStore) FindSelectionsByInvoice(ctx context.Context, invoiceID string) ([]shared.SelectionSnapshot, error) {
	const query = `
SELECT participant_id, name, uscf_id, section, uscf_status,
       is_gt_participant, status, waive_late_fee
FROM invoice_selections
WHERE invoice_id = $1
ORDER BY name`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoice selections", err)
	}
	defer rows.Close()

	var snaps []shared.SelectionSnapshot
	for rows.Next() {
		var s shared.SelectionSnapshot
		if err := rows.Scan(&s.ParticipantID, &s.Name, &s.USCFID, &s.Section, &s.USCFStatus,
			&s.IsGtParticipant, &s.Status, &s.WaiveLateFee); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice selection row", err)
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice selection rows", err)
	}
	return snaps, nil
}
