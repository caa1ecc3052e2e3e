package readstore

import (
	"context"

	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/db"
	"tournament-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChangeRequestReadStore struct {
	db db.DBTX
}

func NewChangeRequestReadStore(dbtx db.DBTX) *ChangeRequestReadStore {
	return &ChangeRequestReadStore{db: dbtx}
}

// FindByIDs returns the requests that exist; absent ids are simply missing
// from the result, the caller decides how to treat them.
func (r *ChangeRequestReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.RequestSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
SELECT id, source_invoice_id, participant_name, type, details, status, submitted_by
FROM change_requests
WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list change requests", err)
	}
	defer rows.Close()

	var snaps []shared.RequestSnapshot
	for rows.Next() {
		var s shared.RequestSnapshot
		if err := rows.Scan(&s.ID, &s.SourceInvoiceID, &s.ParticipantName, &s.Type, &s.Details, &s.Status, &s.SubmittedBy); err != nil {
			return nil, infra.WrapRepoErr("failed to scan change request row", err)
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate change request rows", err)
	}
	return snaps, nil
}
