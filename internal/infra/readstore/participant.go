package readstore

import (
	"context"

	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/db"
	"tournament-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type ParticipantReadStore struct {
	db db.DBTX
}

func NewParticipantReadStore(dbtx db.DBTX) *ParticipantReadStore {
	return &ParticipantReadStore{db: dbtx}
}

// FindByEventID loads the authoritative roster for an event, the resolution
// target for substitution requests.
func (r *ParticipantReadStore) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]shared.ParticipantSnapshot, error) {
	const query = `
SELECT id, first_name, last_name, uscf_id, section, is_gt_student
FROM participants
WHERE event_id = $1
ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list roster participants", err)
	}
	defer rows.Close()

	var snaps []shared.ParticipantSnapshot
	for rows.Next() {
		var s shared.ParticipantSnapshot
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.USCFID, &s.Section, &s.IsGtStudent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan roster participant row", err)
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate roster participant rows", err)
	}
	return snaps, nil
}
