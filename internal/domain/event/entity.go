package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRegularFee = errors.New("fee schedule is missing the regular fee")
	ErrMissingLateFee    = errors.New("fee schedule is missing the late fee")
	ErrMissingVeryLate   = errors.New("fee schedule is missing the very-late fee")
	ErrMissingDayOfFee   = errors.New("fee schedule is missing the day-of fee")
	ErrNegativeFee       = errors.New("fee schedule contains a negative fee")
)

// FeeSchedule holds the tiered registration fees for an event, in USD cents.
// MembershipFeeCents is the flat per-participant federation membership fee
// charged when a membership action (new/renew) is needed.
type FeeSchedule struct {
	RegularFeeCents    int64
	LateFeeCents       int64
	VeryLateFeeCents   int64
	DayOfFeeCents      int64
	MembershipFeeCents int64
}

// Validate reports a malformed schedule. Every tier must be present because
// the tier selection has no fallback fee.
func (s FeeSchedule) Validate() error {
	switch {
	case s.RegularFeeCents == 0:
		return ErrMissingRegularFee
	case s.LateFeeCents == 0:
		return ErrMissingLateFee
	case s.VeryLateFeeCents == 0:
		return ErrMissingVeryLate
	case s.DayOfFeeCents == 0:
		return ErrMissingDayOfFee
	}
	if s.RegularFeeCents < 0 || s.LateFeeCents < 0 || s.VeryLateFeeCents < 0 ||
		s.DayOfFeeCents < 0 || s.MembershipFeeCents < 0 {
		return ErrNegativeFee
	}
	return nil
}

// Event is immutable once created by the organizer-facing surface.
type Event struct {
	id                   uuid.UUID
	name                 string
	date                 time.Time
	registrationDeadline *time.Time
	rounds               int
	fees                 FeeSchedule
}

func NewEvent(id uuid.UUID, name string, date time.Time, deadline *time.Time, rounds int, fees FeeSchedule) (*Event, error) {
	if err := fees.Validate(); err != nil {
		return nil, err
	}
	return &Event{
		id:                   id,
		name:                 name,
		date:                 date,
		registrationDeadline: deadline,
		rounds:               rounds,
		fees:                 fees,
	}, nil
}

func (e *Event) ID() uuid.UUID     { return e.id }
func (e *Event) Name() string      { return e.name }
func (e *Event) Date() time.Time   { return e.date }
func (e *Event) Rounds() int       { return e.rounds }
func (e *Event) Fees() FeeSchedule { return e.fees }

// Deadline is the registration deadline, defaulting to the event date when
// the organizer did not set one.
func (e *Event) Deadline() time.Time {
	if e.registrationDeadline != nil {
		return *e.registrationDeadline
	}
	return e.date
}

func (e *Event) RegistrationDeadline() *time.Time { return e.registrationDeadline }
