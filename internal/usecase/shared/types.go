package shared

import (
	"time"

	"tournament-billing/internal/domain/event"
	"tournament-billing/internal/domain/roster"

	"github.com/google/uuid"
)

type EventSnapshot struct {
	ID                   uuid.UUID
	Name                 string
	Date                 time.Time
	RegistrationDeadline *time.Time
	Rounds               int
	RegularFeeCents      int64
	LateFeeCents         int64
	VeryLateFeeCents     int64
	DayOfFeeCents        int64
	MembershipFeeCents   int64
}

// ToDomain rebuilds the event aggregate, revalidating the fee schedule on
// the way out of storage.
func (s *EventSnapshot) ToDomain() (*event.Event, error) {
	return event.NewEvent(s.ID, s.Name, s.Date, s.RegistrationDeadline, s.Rounds, event.FeeSchedule{
		RegularFeeCents:    s.RegularFeeCents,
		LateFeeCents:       s.LateFeeCents,
		VeryLateFeeCents:   s.VeryLateFeeCents,
		DayOfFeeCents:      s.DayOfFeeCents,
		MembershipFeeCents: s.MembershipFeeCents,
	})
}

type InvoiceSnapshot struct {
	ID                   string
	InvoiceNumber        string
	VersionToken         int64
	Status               string
	TotalCents           int64
	PaidCents            int64
	EventID              uuid.UUID
	CustomerID           string
	OrderID              string
	RecipientName        string
	RecipientEmail       string
	RecipientPhone       string
	SchoolName           string
	District             string
	CCEmails             []string
	PredecessorInvoiceID *string
	CancelReason         *string
	URL                  string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type SelectionSnapshot struct {
	ParticipantID   uuid.UUID
	Name            string
	USCFID          string
	Section         string
	USCFStatus      string
	IsGtParticipant bool
	Status          string
	WaiveLateFee    bool
}

func (s SelectionSnapshot) ToDomain() roster.ParticipantSelection {
	return roster.ParticipantSelection{
		ParticipantID:   s.ParticipantID,
		Name:            s.Name,
		USCFID:          s.USCFID,
		Section:         s.Section,
		USCFStatus:      roster.USCFStatus(s.USCFStatus),
		IsGtParticipant: s.IsGtParticipant,
		Status:          roster.SelectionStatus(s.Status),
		WaiveLateFee:    s.WaiveLateFee,
	}
}

type ParticipantSnapshot struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	USCFID      string
	Section     string
	IsGtStudent bool
}

func (s ParticipantSnapshot) ToDomain() roster.Participant {
	return roster.Participant{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		USCFID:      s.USCFID,
		Section:     s.Section,
		IsGtStudent: s.IsGtStudent,
	}
}

type RequestSnapshot struct {
	ID              uuid.UUID
	SourceInvoiceID string
	ParticipantName string
	Type            string
	Details         string
	Status          string
	SubmittedBy     uuid.UUID
}
