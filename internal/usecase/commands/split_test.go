//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tournament-billing/internal/domain/actor"
	"tournament-billing/internal/domain/invoice"
	reqdto "tournament-billing/internal/handler/dto/request"
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

type SplitCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	reads    *sharedmock.MockCommandReads
	tx       *sharedmock.MockTx
	invoices *sharedmock.MockInvoiceRepository
	provider *billingmock.MockProvider
	clk      *clock.MockClock

	uc commands.SplitCommands

	organizer actor.Actor
	eventID   uuid.UUID
	eventDate time.Time
	deadline  time.Time
}

func (s *SplitCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.invoices = sharedmock.NewMockInvoiceRepository(s.ctrl)
	s.provider = billingmock.NewMockProvider(s.ctrl)

	s.eventDate = time.Date(2026, 5, 16, 9, 0, 0, 0, time.UTC)
	s.deadline = s.eventDate.AddDate(0, 0, -7)
	s.clk = clock.NewMockClock(s.deadline.AddDate(0, 0, 2)) // late tier

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Invoices().Return(s.invoices).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uc = commands.NewSplitUseCase(s.uow, s.provider, s.clk)

	s.organizer = actor.New(uuid.New(), actor.RoleOrganizer)
	s.eventID = uuid.New()
}

func (s *SplitCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SplitCommandsTestSuite) eventSnapshot() *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:                   s.eventID,
		Name:                 "Region IV Championship",
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

// expectIssue wires one remote invoice creation keyed off the sub-key suffix
// and records the order lines it was given.
func (s *SplitCommandsTestSuite) expectIssue(keySuffix, remoteID, email string, lines *[]billing.LineItem) {
	s.provider.EXPECT().SearchCustomerByEmail(gomock.Any(), email).Return(nil, nil)
	s.provider.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&billing.Customer{ID: "cust-" + remoteID}, nil)
	s.provider.EXPECT().CreateOrder(gomock.Any(), "cust-"+remoteID, gomock.Any(), keySuffix+"-order").DoAndReturn(
		func(_ context.Context, _ string, items []billing.LineItem, _ string) (string, error) {
			*lines = items
			return "ord-" + remoteID, nil
		})
	s.provider.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), keySuffix+"-invoice").
		Return(&billing.RemoteInvoice{ID: remoteID, Status: "DRAFT"}, nil)
	s.provider.EXPECT().PublishInvoice(gomock.Any(), remoteID, gomock.Any(), keySuffix+"-publish").
		Return(&billing.RemoteInvoice{ID: remoteID, Status: "UNPAID", Version: 1}, nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), remoteID).
		Return(&billing.RemoteInvoice{ID: remoteID, Status: "UNPAID", Version: 1, PublicURL: "https://pay/" + remoteID}, nil)
	s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func (s *SplitCommandsTestSuite) TestSplit_GtLateFeesCrossToIndependentInvoice() {
	key := uuid.New()
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)

	var programLines, independentLines []billing.LineItem
	s.expectIssue(key.String()+"-gt", "inv_gt", "gt@district.org", &programLines)
	s.expectIssue(key.String()+"-ind", "inv_ind", "coach@school.org", &independentLines)

	req := reqdto.CreateSplitInvoiceRequest{
		EventID:       s.eventID,
		Recipient:     reqdto.RecipientPayload{Name: "Pat Coach", Email: "coach@school.org"},
		GtCoordinator: &reqdto.RecipientPayload{Name: "Gale Torres", Email: "gt@district.org"},
		Selections: []reqdto.SelectionPayload{
			{ParticipantID: uuid.New(), Name: "Gus Tran", USCFStatus: "new", IsGtParticipant: true},
			{ParticipantID: uuid.New(), Name: "Gail Tam", USCFStatus: "current", IsGtParticipant: true, WaiveLateFee: true},
			{ParticipantID: uuid.New(), Name: "Ivy Novak", USCFStatus: "new"},
		},
	}

	result, err := s.uc.CreateSplitInvoice(context.Background(), s.organizer, req, key)
	s.Require().NoError(err)
	s.Require().NotNil(result.Program)
	s.Require().NotNil(result.Independent)

	// Program side bills registration only: 2 heads at the regular rate, no
	// membership even for the "new" GT player, no late fees.
	s.Equal(int64(2*2500), result.Program.TotalCents)
	s.Require().Len(programLines, 1)
	s.Equal("2", programLines[0].Quantity)
	s.Equal(int64(2500), programLines[0].BasePriceCents)

	// Independent side: Ivy's registration + her 500 late fee + membership,
	// plus Gus Tran's unwaived late fee as a named crossover line. Gail Tam's
	// waiver keeps her off this invoice entirely.
	s.Equal(int64(2500+500+2400+500), result.Independent.TotalCents)
	var crossover *billing.LineItem
	for i := range independentLines {
		if independentLines[i].Name == "Late fee: Gus Tran" {
			crossover = &independentLines[i]
		}
	}
	s.Require().NotNil(crossover, "expected a named late-fee line for the GT player")
	s.Equal(int64(500), crossover.BasePriceCents)

	s.NotEqual(result.Program.ID, result.Independent.ID)
	s.Contains(result.Program.InvoiceNumber, "-GT")
}

func (s *SplitCommandsTestSuite) TestSplit_AllGtOmitsIndependentSide() {
	key := uuid.New()
	s.clk.Set(s.deadline.AddDate(0, 0, -3)) // regular tier, no late crossover
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)

	var programLines []billing.LineItem
	s.expectIssue(key.String()+"-gt", "inv_gt", "coach@school.org", &programLines)

	req := reqdto.CreateSplitInvoiceRequest{
		EventID:   s.eventID,
		Recipient: reqdto.RecipientPayload{Name: "Pat Coach", Email: "coach@school.org"},
		Selections: []reqdto.SelectionPayload{
			{ParticipantID: uuid.New(), Name: "Gus Tran", USCFStatus: "new", IsGtParticipant: true},
		},
	}

	result, err := s.uc.CreateSplitInvoice(context.Background(), s.organizer, req, key)
	s.Require().NoError(err)
	s.Require().NotNil(result.Program)
	s.Nil(result.Independent)
}

func (s *SplitCommandsTestSuite) TestSplit_SponsorDenied() {
	_, err := s.uc.CreateSplitInvoice(context.Background(), actor.New(uuid.New(), actor.RoleSponsor),
		reqdto.CreateSplitInvoiceRequest{EventID: s.eventID}, uuid.New())
	s.ErrorIs(err, commands.ErrPermissionDenied)
}

func (s *SplitCommandsTestSuite) TestSplit_ProgramInvoiceStatusPersisted() {
	key := uuid.New()
	s.clk.Set(s.deadline.AddDate(0, 0, -3))
	s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)

	s.provider.EXPECT().SearchCustomerByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.provider.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&billing.Customer{ID: "cust_1"}, nil)
	s.provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("ord_1", nil)
	s.provider.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&billing.RemoteInvoice{ID: "inv_gt", Status: "DRAFT"}, nil)
	s.provider.EXPECT().PublishInvoice(gomock.Any(), "inv_gt", gomock.Any(), gomock.Any()).
		Return(&billing.RemoteInvoice{ID: "inv_gt", Status: "UNPAID", Version: 1}, nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_gt").
		Return(&billing.RemoteInvoice{ID: "inv_gt", Status: "UNPAID", Version: 1}, nil)

	var persisted *invoice.Invoice
	s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, inv *invoice.Invoice) error {
			persisted = inv
			return nil
		})

	req := reqdto.CreateSplitInvoiceRequest{
		EventID:   s.eventID,
		Recipient: reqdto.RecipientPayload{Name: "Pat Coach", Email: "coach@school.org"},
		Selections: []reqdto.SelectionPayload{
			{ParticipantID: uuid.New(), Name: "Gus Tran", USCFStatus: "new", IsGtParticipant: true},
		},
	}

	_, err := s.uc.CreateSplitInvoice(context.Background(), s.organizer, req, key)
	s.Require().NoError(err)
	s.Require().NotNil(persisted)
	s.Equal(invoice.StatusUnpaid, persisted.Status)
	s.Len(persisted.Selections, 1)
}

func TestSplitCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(SplitCommandsTestSuite))
}
