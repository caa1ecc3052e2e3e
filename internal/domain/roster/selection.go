package roster

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidUSCFStatus      = errors.New("invalid uscf status")
	ErrInvalidSelectionStatus = errors.New("invalid selection status")
)

type USCFStatus string

const (
	USCFCurrent  USCFStatus = "current"
	USCFNew      USCFStatus = "new"
	USCFRenewing USCFStatus = "renewing"
)

func (s USCFStatus) IsValid() bool {
	switch s {
	case USCFCurrent, USCFNew, USCFRenewing:
		return true
	default:
		return false
	}
}

func NewUSCFStatus(s string) (USCFStatus, error) {
	st := USCFStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidUSCFStatus
	}
	return st, nil
}

type SelectionStatus string

const (
	SelectionActive    SelectionStatus = "active"
	SelectionWithdrawn SelectionStatus = "withdrawn"
)

// ParticipantSelection is one participant's entry on an invoice roster. It is
// owned by the invoice that created it and mutated only through approved
// change requests.
type ParticipantSelection struct {
	ParticipantID   uuid.UUID
	Name            string
	USCFID          string
	Section         string
	USCFStatus      USCFStatus
	IsGtParticipant bool
	Status          SelectionStatus
	WaiveLateFee    bool
}

// ChargeMembership reports whether a membership fee applies to this
// selection. GT participants' dues are covered under a separate bulk
// arrangement and are never itemized, even when their status is "new".
func (s ParticipantSelection) ChargeMembership() bool {
	return s.USCFStatus != USCFCurrent && !s.IsGtParticipant
}

// Participant is an entry in the authoritative roster, independent of any
// invoice.
type Participant struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	USCFID      string
	Section     string
	IsGtStudent bool
}

func (p Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}
