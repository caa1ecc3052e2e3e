package fee

import (
	"time"

	"tournament-billing/internal/domain/event"
	"tournament-billing/internal/domain/roster"
)

type Tier string

const (
	TierRegular  Tier = "Regular"
	TierLate     Tier = "Late"
	TierVeryLate Tier = "Very Late"
	TierDayOf    Tier = "Day-of"
)

func (t Tier) String() string {
	return string(t)
}

// Breakdown is the aggregate fee computation for one submission. It is a
// value object and is never persisted.
type Breakdown struct {
	RegistrationCents int64
	LateCents         int64
	MembershipCents   int64
	TotalCents        int64
	Tier              Tier
	PerHeadLateCents  int64
}

// SelectTier picks the fee tier for a submission at `now`. The deadline
// boundary is inclusive on the Regular side: submitting on the deadline's
// calendar day is still Regular. Inside the late branch the day-of check wins
// regardless of the hour count to the event.
func SelectTier(ev *event.Event, now time.Time) (Tier, int64) {
	fees := ev.Fees()
	if !afterCalendarDay(now, ev.Deadline()) {
		return TierRegular, fees.RegularFeeCents
	}
	if sameCalendarDay(now, ev.Date()) {
		return TierDayOf, fees.DayOfFeeCents
	}
	if ev.Date().Sub(now) <= 24*time.Hour {
		return TierVeryLate, fees.VeryLateFeeCents
	}
	return TierLate, fees.LateFeeCents
}

// Calculate computes the full fee breakdown for a list of selections.
// Deterministic: identical inputs always produce an identical breakdown.
// The only failure mode is a malformed fee schedule.
func Calculate(ev *event.Event, now time.Time, selections []roster.ParticipantSelection) (Breakdown, error) {
	fees := ev.Fees()
	if err := fees.Validate(); err != nil {
		return Breakdown{}, err
	}

	tier, tierFee := SelectTier(ev, now)

	perHeadLate := tierFee - fees.RegularFeeCents
	if perHeadLate < 0 {
		perHeadLate = 0
	}

	b := Breakdown{Tier: tier, PerHeadLateCents: perHeadLate}
	for _, sel := range selections {
		b.RegistrationCents += fees.RegularFeeCents
		b.LateCents += perHeadLate
		if sel.ChargeMembership() {
			b.MembershipCents += fees.MembershipFeeCents
		}
	}
	b.TotalCents = b.RegistrationCents + b.LateCents + b.MembershipCents
	return b, nil
}
