package commands

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"tournament-billing/internal/domain/actor"
	"tournament-billing/internal/domain/event"
	"tournament-billing/internal/domain/fee"
	"tournament-billing/internal/domain/invoice"
	"tournament-billing/internal/domain/roster"
	reqdto "tournament-billing/internal/handler/dto/request"
	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/pkg/clock"
	"tournament-billing/internal/pkg/errs"
	"tournament-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound           = errs.New("event not found")
	ErrInvalidFeeSchedule      = errs.New("invalid fee schedule")
	ErrInvoiceNotFound         = errs.New("invoice not found")
	ErrInvoiceAlreadyPaid      = errs.New("invoice already paid")
	ErrInvoiceNotRecreatable   = errs.New("invoice not in a recreatable status")
	ErrInvoiceNotPayable       = errs.New("invoice does not accept payments")
	ErrTotalMismatch           = errs.New("line item total does not match computed fees")
	ErrEmptyRoster             = errs.New("no active participants to invoice")
	ErrPermissionDenied        = errs.New("permission denied")
	ErrDraftOrphaned           = errs.New("invoice draft created but not published")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	substitutionFeeCents        = 200
	bulkMembershipThreshold     = 24
	bulkMembershipDiscountCents = 400
)

type InvoiceCommands interface {
	CreateInvoice(ctx context.Context, act actor.Actor, req reqdto.CreateInvoiceRequest, idempotencyKey uuid.UUID) (*InvoiceResult, error)
	CancelInvoice(ctx context.Context, act actor.Actor, invoiceID string, reason string) (*CancelResult, error)
	RecreateInvoice(ctx context.Context, act actor.Actor, invoiceID string, req reqdto.RecreateInvoiceRequest, idempotencyKey uuid.UUID) (*RecreateResult, error)
	RecordPayment(ctx context.Context, act actor.Actor, invoiceID string, req reqdto.RecordPaymentRequest, idempotencyKey uuid.UUID) (*PaymentResult, error)
}

type invoiceUseCaseImpl struct {
	uow      shared.UnitOfWork
	provider billing.Provider
	clock    clock.Clock
}

func NewInvoiceUseCase(uow shared.UnitOfWork, provider billing.Provider, clk clock.Clock) InvoiceCommands {
	return &invoiceUseCaseImpl{
		uow:      uow,
		provider: provider,
		clock:    clk,
	}
}

func (u *invoiceUseCaseImpl) CreateInvoice(
	ctx context.Context,
	act actor.Actor,
	req reqdto.CreateInvoiceRequest,
	idempotencyKey uuid.UUID,
) (*InvoiceResult, error) {
	if !act.CanManageInvoices() {
		return nil, ErrPermissionDenied
	}

	ev, err := u.loadEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	selections := req.ToSelections()
	now := u.clock.Now()
	bills, err := buildBillables(ev, now, selections, false)
	if err != nil {
		return nil, err
	}

	return u.issueInvoice(ctx, issueParams{
		event:          ev,
		number:         newInvoiceNumber(ev.Name(), now),
		recipient:      req.Recipient.ToDomain(),
		selections:     selections,
		billables:      bills,
		idempotencyKey: idempotencyKey.String(),
	})
}

func (u *invoiceUseCaseImpl) CancelInvoice(
	ctx context.Context,
	act actor.Actor,
	invoiceID string,
	reason string,
) (*CancelResult, error) {
	if !act.CanManageInvoices() {
		return nil, ErrPermissionDenied
	}

	snap, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status(snap.Status) == invoice.StatusCanceled {
		return &CancelResult{
			ID:     snap.ID,
			Status: snap.Status,
			Reason: derefString(snap.CancelReason),
		}, nil
	}

	localOnly, err := u.cancelRemote(ctx, snap.ID)
	if err != nil {
		return nil, err
	}

	finalReason := strings.TrimSpace(reason)
	if localOnly {
		finalReason = invoice.CancelReasonNotCancelable
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Invoices().UpdateStatus(ctx, tx.DB(), snap.ID, invoice.StatusCanceled, &finalReason)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CancelResult{
		ID:        snap.ID,
		Status:    invoice.StatusCanceled.String(),
		LocalOnly: localOnly,
		Reason:    finalReason,
	}, nil
}

func (u *invoiceUseCaseImpl) RecreateInvoice(
	ctx context.Context,
	act actor.Actor,
	invoiceID string,
	req reqdto.RecreateInvoiceRequest,
	idempotencyKey uuid.UUID,
) (*RecreateResult, error) {
	if !act.CanManageInvoices() {
		return nil, ErrPermissionDenied
	}

	snap, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	status := invoice.Status(snap.Status)
	if status == invoice.StatusPaid {
		return nil, ErrInvoiceAlreadyPaid
	}
	if !status.Recreatable() {
		return nil, ErrInvoiceNotRecreatable
	}

	ev, err := u.loadEvent(ctx, snap.EventID)
	if err != nil {
		return nil, err
	}

	selections := req.ToSelections()
	now := u.clock.Now()
	bills, err := buildBillables(ev, now, selections, req.WaiveLateFees)
	if err != nil {
		return nil, err
	}

	// An already-CANCELED original is not canceled a second time remotely;
	// recreation stays idempotent on the provider side.
	if status != invoice.StatusCanceled {
		if _, err := u.cancelRemote(ctx, snap.ID); err != nil {
			return nil, err
		}
	}

	predecessor := snap.ID
	result, err := u.issueInvoice(ctx, issueParams{
		event:             ev,
		number:            invoice.NextNumber(snap.InvoiceNumber, now),
		recipient:         recipientFromSnapshot(snap),
		selections:        selections,
		billables:         bills,
		substitutionCount: req.SubstitutionCount,
		predecessorID:     &predecessor,
		closePredecessor:  true,
		idempotencyKey:    idempotencyKey.String(),
	})
	if err != nil {
		return nil, err
	}

	return &RecreateResult{
		OldID:            snap.ID,
		NewID:            result.ID,
		NewInvoiceNumber: result.InvoiceNumber,
		NewStatus:        result.Status,
		NewURL:           result.URL,
		NewTotalCents:    result.TotalCents,
	}, nil
}

func (u *invoiceUseCaseImpl) RecordPayment(
	ctx context.Context,
	act actor.Actor,
	invoiceID string,
	req reqdto.RecordPaymentRequest,
	idempotencyKey uuid.UUID,
) (*PaymentResult, error) {
	if !act.CanManageInvoices() {
		return nil, ErrPermissionDenied
	}

	snap, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	switch invoice.Status(snap.Status) {
	case invoice.StatusPaid:
		return nil, ErrInvoiceAlreadyPaid
	case invoice.StatusCanceled, invoice.StatusDraft:
		return nil, ErrInvoiceNotPayable
	}

	note := req.Method
	if req.Note != "" {
		note = fmt.Sprintf("%s: %s", req.Method, req.Note)
	}
	payment, err := u.provider.RecordPayment(ctx, billing.PaymentParams{
		InvoiceID:   snap.ID,
		OrderID:     snap.OrderID,
		CustomerID:  snap.CustomerID,
		AmountCents: req.AmountCents,
		Note:        note,
	}, idempotencyKey.String())
	if err != nil {
		return nil, errs.Wrap(err, "record payment")
	}

	remote, err := u.provider.GetInvoice(ctx, snap.ID)
	if err != nil {
		return nil, errs.Wrap(err, "refresh invoice after payment")
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Invoices().SyncRemoteState(ctx, tx.DB(), snap.ID,
			invoice.Status(remote.Status), remote.Version, remote.TotalCents, remote.PaidCents)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &PaymentResult{
		PaymentID:      payment.ID,
		Status:         remote.Status,
		TotalPaidCents: remote.PaidCents,
		TotalCents:     remote.TotalCents,
	}, nil
}

type issueParams struct {
	event             *event.Event
	number            string
	recipient         invoice.Recipient
	selections        []roster.ParticipantSelection
	billables         []BillableParticipant
	substitutionCount int
	predecessorID     *string
	closePredecessor  bool
	idempotencyKey    string
}

// issueInvoice drives the remote creation sequence (customer, order, invoice,
// publish, re-fetch) and persists the local mirror. Each remote step derives
// its own idempotency key from the caller's so a retried request replays the
// same remote operations instead of duplicating them.
func (u *invoiceUseCaseImpl) issueInvoice(ctx context.Context, p issueParams) (*InvoiceResult, error) {
	if len(p.billables) == 0 {
		return nil, ErrEmptyRoster
	}

	lines, total := buildLineItems(p.event.Name(), p.billables, membershipUnitFee(p.event, p.billables), p.substitutionCount)
	if expected := expectedTotal(p.billables, membershipUnitFee(p.event, p.billables), p.substitutionCount); expected != total {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("line total %d, computed fees %d", total, expected)),
			ErrTotalMismatch,
		)
	}

	customer, err := u.findOrCreateCustomer(ctx, p.recipient, p.idempotencyKey+"-customer")
	if err != nil {
		return nil, err
	}

	orderID, err := u.provider.CreateOrder(ctx, customer.ID, lines, p.idempotencyKey+"-order")
	if err != nil {
		return nil, errs.Wrap(err, "create billing order")
	}

	created, err := u.provider.CreateInvoice(ctx, billing.CreateInvoiceParams{
		OrderID:       orderID,
		CustomerID:    customer.ID,
		InvoiceNumber: p.number,
		Title:         p.event.Name(),
		Description:   fmt.Sprintf("Registration fees for %s", p.event.Name()),
		CCEmails:      p.recipient.CCEmails,
		DueDate:       p.event.Date(),
	}, p.idempotencyKey+"-invoice")
	if err != nil {
		return nil, errs.Wrap(err, "create remote invoice")
	}

	published, err := u.provider.PublishInvoice(ctx, created.ID, created.Version, p.idempotencyKey+"-publish")
	if err != nil {
		wrapped := errs.Wrap(err, fmt.Sprintf("publish failed, draft %s needs manual cleanup", created.ID))
		return nil, errs.Mark(wrapped, ErrDraftOrphaned)
	}

	// Re-fetch: the publish response does not carry the public URL.
	final, err := u.provider.GetInvoice(ctx, published.ID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch published invoice")
	}

	mirror := &invoice.Invoice{
		ID:                   final.ID,
		InvoiceNumber:        p.number,
		VersionToken:         final.Version,
		Status:               invoice.Status(final.Status),
		TotalCents:           total,
		EventID:              p.event.ID(),
		CustomerID:           customer.ID,
		OrderID:              orderID,
		Recipient:            p.recipient,
		Selections:           selectionMap(p.selections),
		PredecessorInvoiceID: p.predecessorID,
		URL:                  final.PublicURL,
		CreatedAt:            u.clock.Now(),
		UpdatedAt:            u.clock.Now(),
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if p.closePredecessor && p.predecessorID != nil {
			reason := "superseded by " + p.number
			if err := tx.Invoices().UpdateStatus(ctx, tx.DB(), *p.predecessorID, invoice.StatusCanceled, &reason); err != nil {
				return err
			}
		}
		return tx.Invoices().Create(ctx, tx.DB(), mirror)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &InvoiceResult{
		ID:            final.ID,
		InvoiceNumber: p.number,
		Status:        final.Status,
		URL:           final.PublicURL,
		TotalCents:    total,
	}, nil
}

// cancelRemote attempts the provider-side cancellation. localOnly reports
// that the remote record refused or is gone and the close-out must degrade
// to local bookkeeping.
func (u *invoiceUseCaseImpl) cancelRemote(ctx context.Context, invoiceID string) (localOnly bool, err error) {
	remote, err := u.provider.GetInvoice(ctx, invoiceID)
	if err != nil {
		if billing.IsNotFound(err) {
			return true, nil
		}
		return false, errs.Wrap(err, "fetch remote invoice")
	}
	if !invoice.Status(remote.Status).CancelableRemotely() {
		return true, nil
	}
	if _, err := u.provider.CancelInvoice(ctx, invoiceID, remote.Version); err != nil {
		if billing.IsNotFound(err) || billing.IsNotCancelable(err) {
			return true, nil
		}
		return false, errs.Wrap(err, "cancel remote invoice")
	}
	return false, nil
}

func (u *invoiceUseCaseImpl) findOrCreateCustomer(ctx context.Context, rcp invoice.Recipient, idempotencyKey string) (*billing.Customer, error) {
	given, family := splitName(rcp.Name)
	params := billing.CustomerParams{
		GivenName:    given,
		FamilyName:   family,
		EmailAddress: rcp.Email,
		CompanyName:  rcp.SchoolName,
		PhoneNumber:  rcp.Phone,
	}

	found, err := u.provider.SearchCustomerByEmail(ctx, rcp.Email)
	if err != nil {
		return nil, errs.Wrap(err, "search billing customer")
	}
	if found != nil {
		if found.CompanyName != params.CompanyName || found.PhoneNumber != params.PhoneNumber {
			if err := u.provider.UpdateCustomer(ctx, found.ID, params); err != nil {
				return nil, errs.Wrap(err, "update billing customer")
			}
		}
		return found, nil
	}

	created, err := u.provider.CreateCustomer(ctx, params, idempotencyKey)
	if err != nil {
		return nil, errs.Wrap(err, "create billing customer")
	}
	return created, nil
}

func (u *invoiceUseCaseImpl) loadEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	snap, err := u.uow.CommandReads().EventByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	ev, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidFeeSchedule)
	}
	return ev, nil
}

func (u *invoiceUseCaseImpl) loadInvoice(ctx context.Context, id string) (*shared.InvoiceSnapshot, error) {
	snap, err := u.uow.CommandReads().InvoiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

// buildBillables turns active selections into billing units at the tier in
// effect at `now`. Waived late fees are zeroed here, not in the calculator.
func buildBillables(ev *event.Event, now time.Time, selections []roster.ParticipantSelection, waiveAllLate bool) ([]BillableParticipant, error) {
	if err := ev.Fees().Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidFeeSchedule)
	}
	_, tierFee := fee.SelectTier(ev, now)
	regular := ev.Fees().RegularFeeCents
	perHeadLate := tierFee - regular
	if perHeadLate < 0 {
		perHeadLate = 0
	}

	var bills []BillableParticipant
	for _, sel := range selections {
		if sel.Status != roster.SelectionActive {
			continue
		}
		late := perHeadLate
		if waiveAllLate || sel.WaiveLateFee {
			late = 0
		}
		bills = append(bills, BillableParticipant{
			ParticipantID:     sel.ParticipantID,
			Name:              sel.Name,
			Section:           sel.Section,
			RegistrationCents: regular,
			LateCents:         late,
			ChargeMembership:  sel.ChargeMembership(),
		})
	}
	if len(bills) == 0 {
		return nil, ErrEmptyRoster
	}
	return bills, nil
}

// buildLineItems renders the billables as provider line items. Registered
// participants aggregate into shared lines; late-fee-only entries (zero
// registration) stay as one named line each so the recipient can see whose
// late fee crossed over from the program invoice.
func buildLineItems(eventName string, bills []BillableParticipant, membershipFee int64, substitutionCount int) ([]billing.LineItem, int64) {
	var (
		lines           []billing.LineItem
		total           int64
		regCount        int64
		regFee          int64
		lateCount       int64
		lateFee         int64
		membershipCount int64
	)
	addLine := func(name string, qty, price int64) {
		lines = append(lines, billing.LineItem{
			Name:           name,
			Quantity:       fmt.Sprintf("%d", qty),
			BasePriceCents: price,
		})
		total += qty * price
	}

	for _, b := range bills {
		if b.RegistrationCents > 0 {
			regCount++
			regFee = b.RegistrationCents
			if b.LateCents > 0 {
				lateCount++
				lateFee = b.LateCents
			}
		}
		if b.ChargeMembership {
			membershipCount++
		}
	}

	if regCount > 0 {
		addLine(fmt.Sprintf("%s registration", eventName), regCount, regFee)
	}
	if lateCount > 0 {
		addLine("Late registration fee", lateCount, lateFee)
	}
	for _, b := range bills {
		if b.RegistrationCents == 0 && b.LateCents > 0 {
			addLine(fmt.Sprintf("Late fee: %s", b.Name), 1, b.LateCents)
		}
	}
	if membershipCount > 0 {
		name := "USCF membership"
		if membershipCount >= bulkMembershipThreshold {
			name = "USCF membership (bulk rate)"
		}
		addLine(name, membershipCount, membershipFee)
	}
	if substitutionCount > 0 {
		addLine("Substitution fee", int64(substitutionCount), substitutionFeeCents)
	}

	return lines, total
}

// expectedTotal recomputes the invoice total from per-participant fees,
// independently of the line rendering. A mismatch means a billing bug and
// must block invoice creation.
func expectedTotal(bills []BillableParticipant, membershipFee int64, substitutionCount int) int64 {
	var total int64
	for _, b := range bills {
		total += b.RegistrationCents + b.LateCents
		if b.ChargeMembership {
			total += membershipFee
		}
	}
	return total + int64(substitutionCount)*substitutionFeeCents
}

// membershipUnitFee applies the bulk rate when enough memberships are
// chargeable in one invoice.
func membershipUnitFee(ev *event.Event, bills []BillableParticipant) int64 {
	var count int
	for _, b := range bills {
		if b.ChargeMembership {
			count++
		}
	}
	feeCents := ev.Fees().MembershipFeeCents
	if count >= bulkMembershipThreshold {
		feeCents -= bulkMembershipDiscountCents
		if feeCents < 0 {
			feeCents = 0
		}
	}
	return feeCents
}

func newInvoiceNumber(eventName string, now time.Time) string {
	var b strings.Builder
	for _, word := range strings.Fields(eventName) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	code := b.String()
	if code == "" {
		code = "INV"
	}
	if len(code) > 6 {
		code = code[:6]
	}
	return fmt.Sprintf("%s-%s", code, now.Format("20060102-150405"))
}

func recipientFromSnapshot(snap *shared.InvoiceSnapshot) invoice.Recipient {
	return invoice.Recipient{
		Name:       snap.RecipientName,
		Email:      snap.RecipientEmail,
		Phone:      snap.RecipientPhone,
		SchoolName: snap.SchoolName,
		District:   snap.District,
		CCEmails:   snap.CCEmails,
	}
}

func selectionMap(selections []roster.ParticipantSelection) map[uuid.UUID]roster.ParticipantSelection {
	out := make(map[uuid.UUID]roster.ParticipantSelection, len(selections))
	for _, sel := range selections {
		out[sel.ParticipantID] = sel
	}
	return out
}

func splitName(full string) (given, family string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
