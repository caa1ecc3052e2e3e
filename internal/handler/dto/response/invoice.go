package response

import (
	"time"

	"tournament-billing/internal/usecase/commands"
	"tournament-billing/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`
	URL           string `json:"url,omitempty"`
	TotalCents    int64  `json:"total_cents"`
}

func FromInvoiceResult(r *commands.InvoiceResult) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		Status:        r.Status,
		URL:           r.URL,
		TotalCents:    r.TotalCents,
	}
}

type SplitInvoiceResponse struct {
	Program     *InvoiceResponse `json:"program,omitempty"`
	Independent *InvoiceResponse `json:"independent,omitempty"`
}

func FromSplitResult(r *commands.SplitResult) *SplitInvoiceResponse {
	resp := &SplitInvoiceResponse{}
	if r.Program != nil {
		resp.Program = FromInvoiceResult(r.Program)
	}
	if r.Independent != nil {
		resp.Independent = FromInvoiceResult(r.Independent)
	}
	return resp
}

type CancelInvoiceResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	LocalOnly bool   `json:"local_only"`
	Reason    string `json:"reason,omitempty"`
}

func FromCancelResult(r *commands.CancelResult) *CancelInvoiceResponse {
	return &CancelInvoiceResponse{
		ID:        r.ID,
		Status:    r.Status,
		LocalOnly: r.LocalOnly,
		Reason:    r.Reason,
	}
}

type RecreateInvoiceResponse struct {
	OldID            string `json:"old_id"`
	NewID            string `json:"new_id"`
	NewInvoiceNumber string `json:"new_invoice_number"`
	NewStatus        string `json:"new_status"`
	NewURL           string `json:"new_url,omitempty"`
	NewTotalCents    int64  `json:"new_total_cents"`
}

func FromRecreateResult(r *commands.RecreateResult) *RecreateInvoiceResponse {
	return &RecreateInvoiceResponse{
		OldID:            r.OldID,
		NewID:            r.NewID,
		NewInvoiceNumber: r.NewInvoiceNumber,
		NewStatus:        r.NewStatus,
		NewURL:           r.NewURL,
		NewTotalCents:    r.NewTotalCents,
	}
}

type PaymentRecordedResponse struct {
	PaymentID      string `json:"payment_id"`
	Status         string `json:"status"`
	TotalPaidCents int64  `json:"total_paid_cents"`
	TotalCents     int64  `json:"total_cents"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentRecordedResponse {
	return &PaymentRecordedResponse{
		PaymentID:      r.PaymentID,
		Status:         r.Status,
		TotalPaidCents: r.TotalPaidCents,
		TotalCents:     r.TotalCents,
	}
}

type InvoiceStatusResponse struct {
	Invoice  queries.InvoiceView   `json:"invoice"`
	Payments []queries.PaymentView `json:"payments"`
}

func FromInvoiceStatusView(v *queries.InvoiceStatusView) *InvoiceStatusResponse {
	return &InvoiceStatusResponse{
		Invoice:  v.Invoice,
		Payments: v.Payments,
	}
}

type InvoiceListItemResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	RecipientName string    `json:"recipient_name"`
	SchoolName    string    `json:"school_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromInvoiceListItem(item *queries.InvoiceListItem) *InvoiceListItemResponse {
	return &InvoiceListItemResponse{
		ID:            item.ID,
		InvoiceNumber: item.InvoiceNumber,
		Status:        item.Status,
		TotalCents:    item.TotalCents,
		RecipientName: item.RecipientName,
		SchoolName:    item.SchoolName,
		CreatedAt:     item.CreatedAt,
	}
}

type BatchItemErrorResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	Message   string    `json:"message"`
}

type ProcessRequestsResponse struct {
	ProcessedCount int                      `json:"processed_count"`
	FailedCount    int                      `json:"failed_count"`
	Errors         []BatchItemErrorResponse `json:"errors"`
}

func FromBatchResult(r *commands.BatchResult) *ProcessRequestsResponse {
	resp := &ProcessRequestsResponse{
		ProcessedCount: r.ProcessedCount,
		FailedCount:    r.FailedCount,
		Errors:         make([]BatchItemErrorResponse, len(r.Errors)),
	}
	for i, e := range r.Errors {
		resp.Errors[i] = BatchItemErrorResponse{RequestID: e.RequestID, Message: e.Message}
	}
	return resp
}
