package repository

import (
	"context"

	"tournament-billing/internal/domain/invoice"
	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/db"
	"tournament-billing/internal/pkg/pgconv"
)

type InvoiceRepository struct{}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

const insertInvoiceSQL = `
INSERT INTO invoices (
    id, invoice_number, version_token, status, total_cents, paid_cents,
    event_id, customer_id, order_id,
    recipient_name, recipient_email, recipient_phone, school_name, district, cc_emails,
    predecessor_invoice_id, cancel_reason, url, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9,
    $10, $11, $12, $13, $14, $15,
    $16, $17, $18, $19, $20
)`

const insertSelectionSQL = `
INSERT INTO invoice_selections (
    invoice_id, participant_id, name, uscf_id, section,
    uscf_status, is_gt_participant, status, waive_late_fee
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *InvoiceRepository) Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice) error {
	_, err := tx.Exec(ctx, insertInvoiceSQL,
		inv.ID, inv.InvoiceNumber, inv.VersionToken, string(inv.Status), inv.TotalCents, inv.PaidCents,
		inv.EventID, inv.CustomerID, inv.OrderID,
		inv.Recipient.Name, inv.Recipient.Email, inv.Recipient.Phone,
		inv.Recipient.SchoolName, inv.Recipient.District, inv.Recipient.CCEmails,
		inv.PredecessorInvoiceID, inv.CancelReason, inv.URL, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("invoice already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("invoice references a missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create invoice", err)
	}

	for _, sel := range inv.Selections {
		_, err := tx.Exec(ctx, insertSelectionSQL,
			inv.ID, sel.ParticipantID, sel.Name, sel.USCFID, sel.Section,
			string(sel.USCFStatus), sel.IsGtParticipant, string(sel.Status), sel.WaiveLateFee,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create invoice selection", err)
		}
	}
	return nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id string, status invoice.Status, cancelReason *string) error {
	const query = `
UPDATE invoices
SET status = $2, cancel_reason = COALESCE($3, cancel_reason), updated_at = now()
WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, string(status), cancelReason)
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InvoiceRepository) SyncRemoteState(ctx context.Context, tx db.DBTX, id string, status invoice.Status, versionToken, totalCents, paidCents int64) error {
	const query = `
UPDATE invoices
SET status = $2, version_token = $3, total_cents = $4, paid_cents = $5, updated_at = now()
WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, string(status), versionToken, totalCents, paidCents)
	if err != nil {
		return infra.WrapRepoErr("failed to sync invoice remote state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}
