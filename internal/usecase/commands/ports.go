package commands

import (
	"github.com/google/uuid"
)

// Write-side billing unit: what one participant contributes to the invoice,
// after tier selection, waivers, and split rules have been applied. Keeping
// this separate from the read-side selection types preserves the CQRS
// separation.
type BillableParticipant struct {
	ParticipantID     uuid.UUID
	Name              string
	Section           string
	RegistrationCents int64
	LateCents         int64
	ChargeMembership  bool
}

type InvoiceResult struct {
	ID            string
	InvoiceNumber string
	Status        string
	URL           string
	TotalCents    int64
}

type CancelResult struct {
	ID        string
	Status    string
	LocalOnly bool
	Reason    string
}

type RecreateResult struct {
	OldID            string
	NewID            string
	NewInvoiceNumber string
	NewStatus        string
	NewURL           string
	NewTotalCents    int64
}

// SplitResult is the outcome of GT-program split billing. A side with no
// billable lines is nil, never an empty invoice.
type SplitResult struct {
	Program     *InvoiceResult
	Independent *InvoiceResult
}

type PaymentResult struct {
	PaymentID      string
	Status         string
	TotalPaidCents int64
	TotalCents     int64
}

type BatchItemError struct {
	RequestID uuid.UUID
	Message   string
}

type BatchResult struct {
	ProcessedCount int
	FailedCount    int
	Errors         []BatchItemError
}
