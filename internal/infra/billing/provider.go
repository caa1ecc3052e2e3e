package billing

import (
	"context"
	"time"
)

// Customer is the provider-side payer record an invoice is addressed to.
type Customer struct {
	ID           string
	GivenName    string
	FamilyName   string
	EmailAddress string
	CompanyName  string
	PhoneNumber  string
}

type CustomerParams struct {
	GivenName    string
	FamilyName   string
	EmailAddress string
	CompanyName  string
	PhoneNumber  string
}

// LineItem is one priced row of the order backing an invoice.
// Quantity is a decimal string per the provider's order API.
type LineItem struct {
	Name           string
	Quantity       string
	BasePriceCents int64
	Note           string
}

// RemoteInvoice is the provider's view of an invoice. Version is the
// optimistic-concurrency token required by publish and cancel.
type RemoteInvoice struct {
	ID            string
	OrderID       string
	InvoiceNumber string
	Title         string
	Status        string
	Version       int64
	PublicURL     string
	TotalCents    int64
	PaidCents     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Payment struct {
	ID          string
	AmountCents int64
	SourceType  string
	CardBrand   string
	Last4       string
	Note        string
	CreatedAt   time.Time
}

type CreateInvoiceParams struct {
	OrderID       string
	CustomerID    string
	InvoiceNumber string
	Title         string
	Description   string
	CCEmails      []string
	DueDate       time.Time
}

type PaymentParams struct {
	InvoiceID   string
	OrderID     string
	CustomerID  string
	AmountCents int64
	Note        string
}

// Provider is the billing backend the lifecycle layer drives. Every
// state-creating call takes an idempotency key so retried requests cannot
// duplicate remote state.
type Provider interface {
	SearchCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, params CustomerParams, idempotencyKey string) (*Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, params CustomerParams) error

	CreateOrder(ctx context.Context, customerID string, lines []LineItem, idempotencyKey string) (string, error)

	CreateInvoice(ctx context.Context, params CreateInvoiceParams, idempotencyKey string) (*RemoteInvoice, error)
	PublishInvoice(ctx context.Context, invoiceID string, version int64, idempotencyKey string) (*RemoteInvoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*RemoteInvoice, error)
	CancelInvoice(ctx context.Context, invoiceID string, version int64) (*RemoteInvoice, error)

	ListPayments(ctx context.Context, invoiceID string) ([]Payment, error)
	RecordPayment(ctx context.Context, params PaymentParams, idempotencyKey string) (*Payment, error)
}
