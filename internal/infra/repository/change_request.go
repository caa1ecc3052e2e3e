package repository

import (
	"context"

	"tournament-billing/internal/domain/roster"
	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/db"

	"github.com/google/uuid"
)

type ChangeRequestRepository struct{}

func NewChangeRequestRepository() *ChangeRequestRepository {
	return &ChangeRequestRepository{}
}

// MarkResolved only moves requests out of Pending; a concurrent resolver
// loses by affecting zero rows.
func (r *ChangeRequestRepository) MarkResolved(ctx context.Context, tx db.DBTX, id uuid.UUID, status roster.RequestStatus, resolvedBy uuid.UUID, failureReason *string) error {
	const query = `
UPDATE change_requests
SET status = $2, resolved_by = $3, resolved_at = now(), failure_reason = $4
WHERE id = $1 AND status = 'Pending'`

	tag, err := tx.Exec(ctx, query, id, string(status), resolvedBy, failureReason)
	if err != nil {
		return infra.WrapRepoErr("failed to resolve change request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("change request not pending", nil, infra.KindNotFound)
	}
	return nil
}
