//go:build unit || e2e

package builder

import (
	"time"

	"tournament-billing/internal/domain/event"

	"github.com/google/uuid"
)

type EventBuilder struct {
	ID       uuid.UUID
	Name     string
	Date     time.Time
	Deadline *time.Time
	Rounds   int
	Fees     event.FeeSchedule
}

func NewEventBuilder() *EventBuilder {
	date := time.Date(2026, 5, 16, 9, 0, 0, 0, time.UTC)
	deadline := date.AddDate(0, 0, -7)
	return &EventBuilder{
		ID:       uuid.New(),
		Name:     "Spring Scholastic Open",
		Date:     date,
		Deadline: &deadline,
		Rounds:   5,
		Fees: event.FeeSchedule{
			RegularFeeCents:    2500,
			LateFeeCents:       3000,
			VeryLateFeeCents:   3500,
			DayOfFeeCents:      4000,
			MembershipFeeCents: 2400,
		},
	}
}

func (b *EventBuilder) WithDate(t time.Time) *EventBuilder {
	b.Date = t
	return b
}

func (b *EventBuilder) WithDeadline(t time.Time) *EventBuilder {
	b.Deadline = &t
	return b
}

func (b *EventBuilder) WithoutDeadline() *EventBuilder {
	b.Deadline = nil
	return b
}

func (b *EventBuilder) WithRegularFee(cents int64) *EventBuilder {
	b.Fees.RegularFeeCents = cents
	return b
}

func (b *EventBuilder) WithFees(fees event.FeeSchedule) *EventBuilder {
	b.Fees = fees
	return b
}

func (b *EventBuilder) Build() (*event.Event, error) {
	return event.NewEvent(b.ID, b.Name, b.Date, b.Deadline, b.Rounds, b.Fees)
}
