package request

import (
	"strings"

	"tournament-billing/internal/domain/invoice"
	"tournament-billing/internal/domain/roster"

	"github.com/google/uuid"
)

type SelectionPayload struct {
	ParticipantID   uuid.UUID `json:"participant_id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	USCFID          string    `json:"uscf_id,omitempty"`
	Section         string    `json:"section,omitempty"`
	USCFStatus      string    `json:"uscf_status" binding:"required,oneof=current new renewing"`
	IsGtParticipant bool      `json:"is_gt_participant"`
	WaiveLateFee    bool      `json:"waive_late_fee"`
}

func (p SelectionPayload) ToDomain() roster.ParticipantSelection {
	return roster.ParticipantSelection{
		ParticipantID:   p.ParticipantID,
		Name:            strings.TrimSpace(p.Name),
		USCFID:          strings.TrimSpace(p.USCFID),
		Section:         strings.TrimSpace(p.Section),
		USCFStatus:      roster.USCFStatus(p.USCFStatus),
		IsGtParticipant: p.IsGtParticipant,
		Status:          roster.SelectionActive,
		WaiveLateFee:    p.WaiveLateFee,
	}
}

type RecipientPayload struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone,omitempty"`
	SchoolName string   `json:"school_name,omitempty"`
	District   string   `json:"district,omitempty"`
	CCEmails   []string `json:"cc_emails,omitempty" binding:"omitempty,dive,email"`
}

func (p RecipientPayload) ToDomain() invoice.Recipient {
	return invoice.Recipient{
		Name:       strings.TrimSpace(p.Name),
		Email:      strings.TrimSpace(p.Email),
		Phone:      strings.TrimSpace(p.Phone),
		SchoolName: strings.TrimSpace(p.SchoolName),
		District:   strings.TrimSpace(p.District),
		CCEmails:   p.CCEmails,
	}
}

type CreateInvoiceRequest struct {
	EventID    uuid.UUID          `json:"event_id" binding:"required"`
	Recipient  RecipientPayload   `json:"recipient" binding:"required"`
	Selections []SelectionPayload `json:"selections" binding:"required,min=1,dive"`
}

func (r CreateInvoiceRequest) ToSelections() []roster.ParticipantSelection {
	out := make([]roster.ParticipantSelection, len(r.Selections))
	for i, p := range r.Selections {
		out[i] = p.ToDomain()
	}
	return out
}

// CreateSplitInvoiceRequest adds the GT-program coordinator recipient. When
// absent, the program side is billed to the primary recipient.
type CreateSplitInvoiceRequest struct {
	EventID       uuid.UUID          `json:"event_id" binding:"required"`
	Recipient     RecipientPayload   `json:"recipient" binding:"required"`
	GtCoordinator *RecipientPayload  `json:"gt_coordinator,omitempty"`
	Selections    []SelectionPayload `json:"selections" binding:"required,min=1,dive"`
}

func (r CreateSplitInvoiceRequest) ToSelections() []roster.ParticipantSelection {
	out := make([]roster.ParticipantSelection, len(r.Selections))
	for i, p := range r.Selections {
		out[i] = p.ToDomain()
	}
	return out
}

type CancelInvoiceRequest struct {
	Reason string `json:"reason,omitempty"`
}

// RecreateInvoiceRequest supplies the replacement selection list.
// SubstitutionCount drives the flat per-substitution admin fee line.
type RecreateInvoiceRequest struct {
	Selections        []SelectionPayload `json:"selections" binding:"required,min=1,dive"`
	WaiveLateFees     bool               `json:"waive_late_fees"`
	SubstitutionCount int                `json:"substitution_count" binding:"omitempty,min=0"`
}

func (r RecreateInvoiceRequest) ToSelections() []roster.ParticipantSelection {
	out := make([]roster.ParticipantSelection, len(r.Selections))
	for i, p := range r.Selections {
		out[i] = p.ToDomain()
	}
	return out
}

type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required,oneof=check cash other"`
	Note        string `json:"note,omitempty"`
}
