package request

import "github.com/google/uuid"

type RequestDecision struct {
	RequestID uuid.UUID `json:"request_id" binding:"required"`
	Approve   bool      `json:"approve"`
}

// ProcessRequestsRequest resolves a batch of pending change requests.
// WaiveLateFees zeroes late fees on every invoice rebuilt by the batch.
type ProcessRequestsRequest struct {
	Decisions     []RequestDecision `json:"decisions" binding:"required,min=1,dive"`
	WaiveLateFees bool              `json:"waive_late_fees"`
}
