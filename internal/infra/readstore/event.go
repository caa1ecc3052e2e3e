package readstore

import (
	"context"

	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/db"
	"tournament-billing/internal/pkg/pgconv"
	"tournament-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	const query = `
SELECT id, name, date, registration_deadline, rounds,
       regular_fee_cents, late_fee_cents, very_late_fee_cents,
       day_of_fee_cents, membership_fee_cents
FROM events
WHERE id = $1`

	var snap shared.EventSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.Date, &snap.RegistrationDeadline, &snap.Rounds,
		&snap.RegularFeeCents, &snap.LateFeeCents, &snap.VeryLateFeeCents,
		&snap.DayOfFeeCents, &snap.MembershipFeeCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	return &snap, nil
}
