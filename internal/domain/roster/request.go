package roster

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidRequestType = errors.New("invalid change request type")

type RequestType string

const (
	RequestSubstitution  RequestType = "Substitution"
	RequestWithdrawal    RequestType = "Withdrawal"
	RequestSectionChange RequestType = "SectionChange"
	RequestByeRequest    RequestType = "ByeRequest"
	RequestOther         RequestType = "Other"
)

func (t RequestType) IsValid() bool {
	switch t {
	case RequestSubstitution, RequestWithdrawal, RequestSectionChange, RequestByeRequest, RequestOther:
		return true
	default:
		return false
	}
}

func NewRequestType(s string) (RequestType, error) {
	t := RequestType(s)
	if !t.IsValid() {
		return "", ErrInvalidRequestType
	}
	return t, nil
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestDenied   RequestStatus = "Denied"
	RequestFailed   RequestStatus = "Failed"
)

// ChangeRequest is a pending roster edit submitted against an invoice. It is
// created externally and terminated by the batch processor.
type ChangeRequest struct {
	ID              uuid.UUID
	SourceInvoiceID string
	ParticipantName string
	Type            RequestType
	Details         string
	Status          RequestStatus
	SubmittedBy     uuid.UUID
	ResolvedBy      *uuid.UUID
	ResolvedAt      *time.Time
	FailureReason   *string
}

func (r ChangeRequest) IsResolved() bool {
	return r.Status != RequestPending
}
