//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tournament-billing/internal/domain/actor"
	"tournament-billing/internal/domain/invoice"
	reqdto "tournament-billing/internal/handler/dto/request"
	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/pkg/clock"
	"tournament-billing/internal/usecase/commands"
	"tournament-billing/internal/usecase/shared"
	billingmock "tournament-billing/tests/mock/billing"
	sharedmock "tournament-billing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	reads    *sharedmock.MockCommandReads
	tx       *sharedmock.MockTx
	invoices *sharedmock.MockInvoiceRepository
	provider *billingmock.MockProvider
	clk      *clock.MockClock

	uc commands.InvoiceCommands

	organizer actor.Actor
	sponsor   actor.Actor
	eventID   uuid.UUID
	eventDate time.Time
	deadline  time.Time
}

func (s *InvoiceCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.invoices = sharedmock.NewMockInvoiceRepository(s.ctrl)
	s.provider = billingmock.NewMockProvider(s.ctrl)

	s.eventDate = time.Date(2026, 5, 16, 9, 0, 0, 0, time.UTC)
	s.deadline = s.eventDate.AddDate(0, 0, -7)
	s.clk = clock.NewMockClock(s.deadline.AddDate(0, 0, -8))

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Invoices().Return(s.invoices).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uc = commands.NewInvoiceUseCase(s.uow, s.provider, s.clk)

	s.organizer = actor.New(uuid.New(), actor.RoleOrganizer)
	s.sponsor = actor.New(uuid.New(), actor.RoleSponsor)
	s.eventID = uuid.New()
}

func (s *InvoiceCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InvoiceCommandsTestSuite) eventSnapshot() *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:                   s.eventID,
		Name:                 "Spring Scholastic Open",
		Date:                 s.eventDate,
		RegistrationDeadline: &s.deadline,
		Rounds:               5,
		RegularFeeCents:      2500,
		LateFeeCents:         3000,
		VeryLateFeeCents:     3500,
		DayOfFeeCents:        4000,
		MembershipFeeCents:   2400,
	}
}

func (s *InvoiceCommandsTestSuite) invoiceSnapshot(status string) *shared.InvoiceSnapshot {
	return &shared.InvoiceSnapshot{
		ID:             "inv_100",
		InvoiceNumber:  "SSO-20260501-090000",
		VersionToken:   2,
		Status:         status,
		TotalCents:     5000,
		EventID:        s.eventID,
		CustomerID:     "cust_1",
		OrderID:        "ord_1",
		RecipientName:  "Dana Ruiz",
		RecipientEmail: "druiz@example.org",
		SchoolName:     "Lincoln Elementary",
	}
}

func (s *InvoiceCommandsTestSuite) createRequest() reqdto.CreateInvoiceRequest {
	return reqdto.CreateInvoiceRequest{
		EventID: s.eventID,
		Recipient: reqdto.RecipientPayload{
			Name:       "Dana Ruiz",
			Email:      "druiz@example.org",
			SchoolName: "Lincoln Elementary",
		},
		Selections: []reqdto.SelectionPayload{
			{ParticipantID: uuid.New(), Name: "Ada Moore", USCFStatus: "current"},
			{ParticipantID: uuid.New(), Name: "Ben Ortiz", USCFStatus: "new"},
		},
	}
}

// expectIssueSequence wires the remote creation chain for one invoice and
// returns the re-fetched final state handed back to the caller.
func (s *InvoiceCommandsTestSuite) expectIssueSequence(key string, remoteID string) *billing.RemoteInvoice {
	final := &billing.RemoteInvoice{
		ID:        remoteID,
		OrderID:   "ord_9",
		Status:    "UNPAID",
		Version:   1,
		PublicURL: "https://pay.example.com/" + remoteID,
	}
	s.provider.EXPECT().SearchCustomerByEmail(gomock.Any(), "druiz@example.org").Return(nil, nil)
	s.provider.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), key+"-customer").
		Return(&billing.Customer{ID: "cust_9"}, nil)
	s.provider.EXPECT().CreateOrder(gomock.Any(), "cust_9", gomock.Any(), key+"-order").
		Return("ord_9", nil)
	s.provider.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), key+"-invoice").
		Return(&billing.RemoteInvoice{ID: remoteID, Status: "DRAFT", Version: 0}, nil)
	s.provider.EXPECT().PublishInvoice(gomock.Any(), remoteID, int64(0), key+"-publish").
		Return(&billing.RemoteInvoice{ID: remoteID, Status: "UNPAID", Version: 1}, nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), remoteID).Return(final, nil)
	return final
}

func (s *InvoiceCommandsTestSuite) TestCreateInvoice_RegularTier() {
	key := uuid.New()
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
	s.expectIssueSequence(key.String(), "inv_new")

	var persisted *invoice.Invoice
	s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, inv *invoice.Invoice) error {
			persisted = inv
			return nil
		})

	result, err := s.uc.CreateInvoice(context.Background(), s.organizer, s.createRequest(), key)
	s.Require().NoError(err)

	// 2 registrations at the regular rate plus one membership for the "new"
	// player; no late fees this far before the deadline.
	s.Equal(int64(2*2500+2400), result.TotalCents)
	s.Equal("UNPAID", result.Status)
	s.Equal("https://pay.example.com/inv_new", result.URL)

	s.Require().NotNil(persisted)
	s.Equal("inv_new", persisted.ID)
	s.Equal(invoice.StatusUnpaid, persisted.Status)
	s.Nil(persisted.PredecessorInvoiceID)
	s.Len(persisted.Selections, 2)
}

func (s *InvoiceCommandsTestSuite) TestCreateInvoice_LateTierAddsPerHeadFee() {
	s.clk.Set(s.deadline.AddDate(0, 0, 3)) // past deadline, >24h before the event

	key := uuid.New()
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
	s.expectIssueSequence(key.String(), "inv_late")
	s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	req := s.createRequest()
	req.Selections[1].WaiveLateFee = true

	result, err := s.uc.CreateInvoice(context.Background(), s.organizer, req, key)
	s.Require().NoError(err)

	// Late tier is 3000, so 500 per head; one of the two heads is waived.
	s.Equal(int64(2*2500+500+2400), result.TotalCents)
}

func (s *InvoiceCommandsTestSuite) TestCreateInvoice_SponsorDenied() {
	_, err := s.uc.CreateInvoice(context.Background(), s.sponsor, s.createRequest(), uuid.New())
	s.ErrorIs(err, commands.ErrPermissionDenied)
}

func (s *InvoiceCommandsTestSuite) TestCreateInvoice_EventNotFound() {
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).
		Return(nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound))

	_, err := s.uc.CreateInvoice(context.Background(), s.organizer, s.createRequest(), uuid.New())
	s.ErrorIs(err, commands.ErrEventNotFound)
}

func (s *InvoiceCommandsTestSuite) TestCreateInvoice_PublishFailureSurfacesDraft() {
	key := uuid.New()
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
	s.provider.EXPECT().SearchCustomerByEmail(gomock.Any(), gomock.Any()).
		Return(&billing.Customer{ID: "cust_9", CompanyName: "Lincoln Elementary"}, nil)
	s.provider.EXPECT().CreateOrder(gomock.Any(), "cust_9", gomock.Any(), gomock.Any()).Return("ord_9", nil)
	s.provider.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&billing.RemoteInvoice{ID: "inv_draft", Status: "DRAFT"}, nil)
	s.provider.EXPECT().PublishInvoice(gomock.Any(), "inv_draft", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider 500"))

	_, err := s.uc.CreateInvoice(context.Background(), s.organizer, s.createRequest(), key)
	s.ErrorIs(err, commands.ErrDraftOrphaned)
	s.Contains(err.Error(), "inv_draft")
}

func (s *InvoiceCommandsTestSuite) TestCancelInvoice_Remote() {
	snap := s.invoiceSnapshot("UNPAID")
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(snap, nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").
		Return(&billing.RemoteInvoice{ID: "inv_100", Status: "UNPAID", Version: 3}, nil)
	s.provider.EXPECT().CancelInvoice(gomock.Any(), "inv_100", int64(3)).
		Return(&billing.RemoteInvoice{ID: "inv_100", Status: "CANCELED"}, nil)
	s.invoices.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "inv_100", invoice.StatusCanceled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ string, _ invoice.Status, reason *string) error {
			s.Require().NotNil(reason)
			s.Equal("sponsor requested", *reason)
			return nil
		})

	result, err := s.uc.CancelInvoice(context.Background(), s.organizer, "inv_100", "sponsor requested")
	s.Require().NoError(err)
	s.False(result.LocalOnly)
	s.Equal("CANCELED", result.Status)
}

func (s *InvoiceCommandsTestSuite) TestCancelInvoice_DegradesToLocalOnly() {
	snap := s.invoiceSnapshot("UNPAID")
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(snap, nil)
	// Remote record is already PAID; the provider would refuse the cancel.
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").
		Return(&billing.RemoteInvoice{ID: "inv_100", Status: "PAID", Version: 4}, nil)
	s.invoices.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "inv_100", invoice.StatusCanceled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ string, _ invoice.Status, reason *string) error {
			s.Require().NotNil(reason)
			s.Equal(invoice.CancelReasonNotCancelable, *reason)
			return nil
		})

	result, err := s.uc.CancelInvoice(context.Background(), s.organizer, "inv_100", "whatever")
	s.Require().NoError(err)
	s.True(result.LocalOnly)
	s.Equal(invoice.CancelReasonNotCancelable, result.Reason)
}

func (s *InvoiceCommandsTestSuite) TestCancelInvoice_AlreadyCanceledNoRemoteCall() {
	snap := s.invoiceSnapshot("CANCELED")
	reason := "superseded by SSO-rev.2-101500"
	snap.CancelReason = &reason
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(snap, nil)

	result, err := s.uc.CancelInvoice(context.Background(), s.organizer, "inv_100", "again")
	s.Require().NoError(err)
	s.Equal("CANCELED", result.Status)
	s.Equal(reason, result.Reason)
}

func (s *InvoiceCommandsTestSuite) TestRecreateInvoice_PaidRefused() {
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(s.invoiceSnapshot("PAID"), nil)

	_, err := s.uc.RecreateInvoice(context.Background(), s.organizer, "inv_100", reqdto.RecreateInvoiceRequest{
		Selections: s.createRequest().Selections,
	}, uuid.New())
	s.ErrorIs(err, commands.ErrInvoiceAlreadyPaid)
}

func (s *InvoiceCommandsTestSuite) TestRecreateInvoice_DraftRefused() {
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(s.invoiceSnapshot("DRAFT"), nil)

	_, err := s.uc.RecreateInvoice(context.Background(), s.organizer, "inv_100", reqdto.RecreateInvoiceRequest{
		Selections: s.createRequest().Selections,
	}, uuid.New())
	s.ErrorIs(err, commands.ErrInvoiceNotRecreatable)
}

func (s *InvoiceCommandsTestSuite) TestRecreateInvoice_CanceledOriginalSkipsRemoteCancel() {
	key := uuid.New()
	snap := s.invoiceSnapshot("CANCELED")
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(snap, nil)
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
	// No GetInvoice/CancelInvoice on the original: the remote side was
	// already closed out.
	s.expectIssueSequence(key.String(), "inv_101")

	var persisted *invoice.Invoice
	s.invoices.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "inv_100", invoice.StatusCanceled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ string, _ invoice.Status, reason *string) error {
			s.Require().NotNil(reason)
			s.Contains(*reason, "superseded by")
			return nil
		})
	s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, inv *invoice.Invoice) error {
			persisted = inv
			return nil
		})

	result, err := s.uc.RecreateInvoice(context.Background(), s.organizer, "inv_100", reqdto.RecreateInvoiceRequest{
		Selections:        s.createRequest().Selections,
		SubstitutionCount: 1,
	}, key)
	s.Require().NoError(err)

	s.Equal("inv_100", result.OldID)
	s.Equal("inv_101", result.NewID)
	s.Contains(result.NewInvoiceNumber, "-rev.2-")
	s.Equal(invoice.BaseNumber(snap.InvoiceNumber), invoice.BaseNumber(result.NewInvoiceNumber))
	// Registration for both, one membership, one substitution fee.
	s.Equal(int64(2*2500+2400+200), result.NewTotalCents)

	s.Require().NotNil(persisted)
	s.Require().NotNil(persisted.PredecessorInvoiceID)
	s.Equal("inv_100", *persisted.PredecessorInvoiceID)
}

func (s *InvoiceCommandsTestSuite) TestRecreateInvoice_CancelsRemoteFirst() {
	key := uuid.New()
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(s.invoiceSnapshot("UNPAID"), nil)
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)

	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").
		Return(&billing.RemoteInvoice{ID: "inv_100", Status: "UNPAID", Version: 2}, nil)
	s.provider.EXPECT().CancelInvoice(gomock.Any(), "inv_100", int64(2)).
		Return(&billing.RemoteInvoice{ID: "inv_100", Status: "CANCELED"}, nil)

	s.expectIssueSequence(key.String(), "inv_102")
	s.invoices.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "inv_100", invoice.StatusCanceled, gomock.Any()).Return(nil)
	s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.RecreateInvoice(context.Background(), s.organizer, "inv_100", reqdto.RecreateInvoiceRequest{
		Selections: s.createRequest().Selections,
	}, key)
	s.Require().NoError(err)
}

func (s *InvoiceCommandsTestSuite) TestRecordPayment() {
	key := uuid.New()
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(s.invoiceSnapshot("UNPAID"), nil)
	s.provider.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), key.String()).DoAndReturn(
		func(_ context.Context, params billing.PaymentParams, _ string) (*billing.Payment, error) {
			s.Equal("inv_100", params.InvoiceID)
			s.Equal(int64(5000), params.AmountCents)
			s.Equal("check: #1042", params.Note)
			return &billing.Payment{ID: "pay_1", AmountCents: 5000}, nil
		})
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").
		Return(&billing.RemoteInvoice{ID: "inv_100", Status: "PAID", Version: 5, TotalCents: 5000, PaidCents: 5000}, nil)
	s.invoices.EXPECT().SyncRemoteState(gomock.Any(), gomock.Any(), "inv_100",
		invoice.StatusPaid, int64(5), int64(5000), int64(5000)).Return(nil)

	result, err := s.uc.RecordPayment(context.Background(), s.organizer, "inv_100", reqdto.RecordPaymentRequest{
		AmountCents: 5000,
		Method:      "check",
		Note:        "#1042",
	}, key)
	s.Require().NoError(err)
	s.Equal("pay_1", result.PaymentID)
	s.Equal("PAID", result.Status)
	s.Equal(int64(5000), result.TotalPaidCents)
}

func (s *InvoiceCommandsTestSuite) TestRecordPayment_CanceledRefused() {
	s.reads.EXPECT().InvoiceByID(gomock.Any(), "inv_100").Return(s.invoiceSnapshot("CANCELED"), nil)

	_, err := s.uc.RecordPayment(context.Background(), s.organizer, "inv_100", reqdto.RecordPaymentRequest{
		AmountCents: 1000,
		Method:      "cash",
	}, uuid.New())
	s.ErrorIs(err, commands.ErrInvoiceNotPayable)
}

func TestInvoiceCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceCommandsTestSuite))
}
