package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tournament-billing/internal/pkg/config"
	"tournament-billing/internal/pkg/errs"
)

const apiVersion = "2024-06-04"

// Client talks to the Square REST API. It implements Provider.
type Client struct {
	http       *http.Client
	baseURL    string
	token      string
	locationID string
}

func NewClient(cfg config.BillingConfig) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.AccessToken,
		locationID: cfg.LocationID,
	}
}

var _ Provider = (*Client)(nil)

type moneyJSON struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func usd(cents int64) moneyJSON { return moneyJSON{Amount: cents, Currency: "USD"} }

type customerJSON struct {
	ID           string `json:"id,omitempty"`
	GivenName    string `json:"given_name,omitempty"`
	FamilyName   string `json:"family_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

func (c customerJSON) toDomain() *Customer {
	return &Customer{
		ID:           c.ID,
		GivenName:    c.GivenName,
		FamilyName:   c.FamilyName,
		EmailAddress: c.EmailAddress,
		CompanyName:  c.CompanyName,
		PhoneNumber:  c.PhoneNumber,
	}
}

type paymentRequestJSON struct {
	RequestType               string     `json:"request_type,omitempty"`
	DueDate                   string     `json:"due_date,omitempty"`
	ComputedAmountMoney       *moneyJSON `json:"computed_amount_money,omitempty"`
	TotalCompletedAmountMoney *moneyJSON `json:"total_completed_amount_money,omitempty"`
}

type invoiceJSON struct {
	ID               string               `json:"id,omitempty"`
	OrderID          string               `json:"order_id,omitempty"`
	LocationID       string               `json:"location_id,omitempty"`
	InvoiceNumber    string               `json:"invoice_number,omitempty"`
	Title            string               `json:"title,omitempty"`
	Description      string               `json:"description,omitempty"`
	Status           string               `json:"status,omitempty"`
	Version          int64                `json:"version,omitempty"`
	PublicURL        string               `json:"public_url,omitempty"`
	PrimaryRecipient *recipientJSON       `json:"primary_recipient,omitempty"`
	PaymentRequests  []paymentRequestJSON `json:"payment_requests,omitempty"`
	DeliveryMethod   string               `json:"delivery_method,omitempty"`
	CreatedAt        string               `json:"created_at,omitempty"`
	UpdatedAt        string               `json:"updated_at,omitempty"`
}

type recipientJSON struct {
	CustomerID string   `json:"customer_id,omitempty"`
	CCEmails   []string `json:"cc_recipients,omitempty"`
}

func (inv invoiceJSON) toDomain() *RemoteInvoice {
	out := &RemoteInvoice{
		ID:            inv.ID,
		OrderID:       inv.OrderID,
		InvoiceNumber: inv.InvoiceNumber,
		Title:         inv.Title,
		Status:        inv.Status,
		Version:       inv.Version,
		PublicURL:     inv.PublicURL,
	}
	if len(inv.PaymentRequests) > 0 {
		pr := inv.PaymentRequests[0]
		if pr.ComputedAmountMoney != nil {
			out.TotalCents = pr.ComputedAmountMoney.Amount
		}
		if pr.TotalCompletedAmountMoney != nil {
			out.PaidCents = pr.TotalCompletedAmountMoney.Amount
		}
	}
	out.CreatedAt, _ = time.Parse(time.RFC3339, inv.CreatedAt)
	out.UpdatedAt, _ = time.Parse(time.RFC3339, inv.UpdatedAt)
	return out
}

func (c *Client) SearchCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	req := map[string]any{
		"query": map[string]any{
			"filter": map[string]any{
				"email_address": map[string]any{"exact": email},
			},
		},
		"limit": 1,
	}
	var resp struct {
		Customers []customerJSON `json:"customers"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/customers/search", req, &resp); err != nil {
		return nil, errs.Wrap(err, "search customer")
	}
	if len(resp.Customers) == 0 {
		return nil, nil
	}
	return resp.Customers[0].toDomain(), nil
}

func (c *Client) CreateCustomer(ctx context.Context, params CustomerParams, idempotencyKey string) (*Customer, error) {
	req := struct {
		IdempotencyKey string `json:"idempotency_key"`
		customerJSON
	}{
		IdempotencyKey: idempotencyKey,
		customerJSON: customerJSON{
			GivenName:    params.GivenName,
			FamilyName:   params.FamilyName,
			EmailAddress: params.EmailAddress,
			CompanyName:  params.CompanyName,
			PhoneNumber:  params.PhoneNumber,
		},
	}
	var resp struct {
		Customer customerJSON `json:"customer"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/customers", req, &resp); err != nil {
		return nil, errs.Wrap(err, "create customer")
	}
	return resp.Customer.toDomain(), nil
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID string, params CustomerParams) error {
	req := customerJSON{
		GivenName:    params.GivenName,
		FamilyName:   params.FamilyName,
		EmailAddress: params.EmailAddress,
		CompanyName:  params.CompanyName,
		PhoneNumber:  params.PhoneNumber,
	}
	var resp struct {
		Customer customerJSON `json:"customer"`
	}
	if err := c.do(ctx, http.MethodPut, "/v2/customers/"+url.PathEscape(customerID), req, &resp); err != nil {
		return errs.Wrap(err, "update customer")
	}
	return nil
}

func (c *Client) CreateOrder(ctx context.Context, customerID string, lines []LineItem, idempotencyKey string) (string, error) {
	type lineJSON struct {
		Name           string    `json:"name"`
		Quantity       string    `json:"quantity"`
		BasePriceMoney moneyJSON `json:"base_price_money"`
		Note           string    `json:"note,omitempty"`
	}
	items := make([]lineJSON, len(lines))
	for i, l := range lines {
		items[i] = lineJSON{
			Name:           l.Name,
			Quantity:       l.Quantity,
			BasePriceMoney: usd(l.BasePriceCents),
			Note:           l.Note,
		}
	}
	req := map[string]any{
		"idempotency_key": idempotencyKey,
		"order": map[string]any{
			"location_id": c.locationID,
			"customer_id": customerID,
			"line_items":  items,
		},
	}
	var resp struct {
		Order struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/orders", req, &resp); err != nil {
		return "", errs.Wrap(err, "create order")
	}
	return resp.Order.ID, nil
}

func (c *Client) CreateInvoice(ctx context.Context, params CreateInvoiceParams, idempotencyKey string) (*RemoteInvoice, error) {
	req := map[string]any{
		"idempotency_key": idempotencyKey,
		"invoice": invoiceJSON{
			OrderID:       params.OrderID,
			LocationID:    c.locationID,
			InvoiceNumber: params.InvoiceNumber,
			Title:         params.Title,
			Description:   params.Description,
			PrimaryRecipient: &recipientJSON{
				CustomerID: params.CustomerID,
				CCEmails:   params.CCEmails,
			},
			PaymentRequests: []paymentRequestJSON{{
				RequestType: "BALANCE",
				DueDate:     params.DueDate.Format("2006-01-02"),
			}},
			DeliveryMethod: "EMAIL",
		},
	}
	var resp struct {
		Invoice invoiceJSON `json:"invoice"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/invoices", req, &resp); err != nil {
		return nil, errs.Wrap(err, "create invoice")
	}
	return resp.Invoice.toDomain(), nil
}

func (c *Client) PublishInvoice(ctx context.Context, invoiceID string, version int64, idempotencyKey string) (*RemoteInvoice, error) {
	req := map[string]any{
		"version":         version,
		"idempotency_key": idempotencyKey,
	}
	var resp struct {
		Invoice invoiceJSON `json:"invoice"`
	}
	path := "/v2/invoices/" + url.PathEscape(invoiceID) + "/publish"
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, errs.Wrap(err, "publish invoice")
	}
	return resp.Invoice.toDomain(), nil
}

func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*RemoteInvoice, error) {
	var resp struct {
		Invoice invoiceJSON `json:"invoice"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/invoices/"+url.PathEscape(invoiceID), nil, &resp); err != nil {
		return nil, errs.Wrap(err, "get invoice")
	}
	return resp.Invoice.toDomain(), nil
}

func (c *Client) CancelInvoice(ctx context.Context, invoiceID string, version int64) (*RemoteInvoice, error) {
	req := map[string]any{"version": version}
	var resp struct {
		Invoice invoiceJSON `json:"invoice"`
	}
	path := "/v2/invoices/" + url.PathEscape(invoiceID) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, errs.Wrap(err, "cancel invoice")
	}
	return resp.Invoice.toDomain(), nil
}

type paymentJSON struct {
	ID          string     `json:"id"`
	AmountMoney *moneyJSON `json:"amount_money,omitempty"`
	SourceType  string     `json:"source_type,omitempty"`
	CardDetails *struct {
		Card struct {
			CardBrand string `json:"card_brand"`
			Last4     string `json:"last_4"`
		} `json:"card"`
	} `json:"card_details,omitempty"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (p paymentJSON) toDomain() Payment {
	out := Payment{
		ID:         p.ID,
		SourceType: p.SourceType,
		Note:       p.Note,
	}
	if p.AmountMoney != nil {
		out.AmountCents = p.AmountMoney.Amount
	}
	if p.CardDetails != nil {
		out.CardBrand = p.CardDetails.Card.CardBrand
		out.Last4 = p.CardDetails.Card.Last4
	}
	out.CreatedAt, _ = time.Parse(time.RFC3339, p.CreatedAt)
	return out
}

func (c *Client) ListPayments(ctx context.Context, invoiceID string) ([]Payment, error) {
	inv, err := c.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("location_id", c.locationID)
	q.Set("order_id", inv.OrderID)
	var resp struct {
		Payments []paymentJSON `json:"payments"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/payments?"+q.Encode(), nil, &resp); err != nil {
		return nil, errs.Wrap(err, "list payments")
	}
	out := make([]Payment, len(resp.Payments))
	for i, p := range resp.Payments {
		out[i] = p.toDomain()
	}
	return out, nil
}

func (c *Client) RecordPayment(ctx context.Context, params PaymentParams, idempotencyKey string) (*Payment, error) {
	req := map[string]any{
		"idempotency_key": idempotencyKey,
		"source_id":       "EXTERNAL",
		"amount_money":    usd(params.AmountCents),
		"order_id":        params.OrderID,
		"customer_id":     params.CustomerID,
		"location_id":     c.locationID,
		"note":            params.Note,
		"external_details": map[string]any{
			"type":   "OTHER",
			"source": "manual entry",
		},
	}
	var resp struct {
		Payment paymentJSON `json:"payment"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/payments", req, &resp); err != nil {
		return nil, errs.Wrap(err, "record payment")
	}
	p := resp.Payment.toDomain()
	return &p, nil
}

// do sends one API request. Non-2xx responses with a structured error body
// become *ProviderError so callers can classify them.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Square-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		pe := &ProviderError{StatusCode: resp.StatusCode}
		var errBody struct {
			Errors []ErrorDetail `json:"errors"`
		}
		if json.Unmarshal(raw, &errBody) == nil {
			pe.Errors = errBody.Errors
		}
		return pe
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.Wrap(err, fmt.Sprintf("decode %s response", path))
		}
	}
	return nil
}
