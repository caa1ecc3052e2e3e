//go:build unit || e2e

package builder

import (
	"tournament-billing/internal/domain/roster"

	"github.com/google/uuid"
)

type SelectionBuilder struct {
	ParticipantID   uuid.UUID
	Name            string
	USCFID          string
	Section         string
	USCFStatus      roster.USCFStatus
	IsGtParticipant bool
	Status          roster.SelectionStatus
	WaiveLateFee    bool
}

func NewSelectionBuilder() *SelectionBuilder {
	return &SelectionBuilder{
		ParticipantID: uuid.New(),
		Name:          "Maria Garza",
		USCFID:        "12345678",
		Section:       "High School K-12",
		USCFStatus:    roster.USCFCurrent,
		Status:        roster.SelectionActive,
	}
}

func (b *SelectionBuilder) WithParticipantID(id uuid.UUID) *SelectionBuilder {
	b.ParticipantID = id
	return b
}

func (b *SelectionBuilder) WithName(name string) *SelectionBuilder {
	b.Name = name
	return b
}

func (b *SelectionBuilder) WithSection(section string) *SelectionBuilder {
	b.Section = section
	return b
}

func (b *SelectionBuilder) WithUSCFStatus(status roster.USCFStatus) *SelectionBuilder {
	b.USCFStatus = status
	return b
}

func (b *SelectionBuilder) AsGtParticipant() *SelectionBuilder {
	b.IsGtParticipant = true
	return b
}

func (b *SelectionBuilder) WithWaivedLateFee() *SelectionBuilder {
	b.WaiveLateFee = true
	return b
}

func (b *SelectionBuilder) Withdrawn() *SelectionBuilder {
	b.Status = roster.SelectionWithdrawn
	return b
}

func (b *SelectionBuilder) Build() roster.ParticipantSelection {
	return roster.ParticipantSelection{
		ParticipantID:   b.ParticipantID,
		Name:            b.Name,
		USCFID:          b.USCFID,
		Section:         b.Section,
		USCFStatus:      b.USCFStatus,
		IsGtParticipant: b.IsGtParticipant,
		Status:          b.Status,
		WaiveLateFee:    b.WaiveLateFee,
	}
}
