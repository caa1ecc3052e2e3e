//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tournament-billing/internal/infra"
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/usecase/queries"
	billingmock "tournament-billing/tests/mock/billing"
	queriesmock "tournament-billing/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *queriesmock.MockInvoiceViewRepo
	provider *billingmock.MockProvider
	queries  queries.InvoiceQueries
}

func (s *InvoiceQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockInvoiceViewRepo(s.ctrl)
	s.provider = billingmock.NewMockProvider(s.ctrl)
	s.queries = queries.NewInvoiceQueries(s.repo, s.provider)
}

func (s *InvoiceQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInvoiceQueriesSuite(t *testing.T) {
	suite.Run(t, new(InvoiceQueriesTestSuite))
}

func (s *InvoiceQueriesTestSuite) mirrorView() *queries.InvoiceView {
	return &queries.InvoiceView{
		ID:            "inv_100",
		InvoiceNumber: "SSO-0516-093011",
		Status:        "UNPAID",
		TotalCents:    7400,
		PaidCents:     0,
		EventID:       uuid.New(),
		RecipientName: "Dana Ruiz",
	}
}

func (s *InvoiceQueriesTestSuite) TestGetStatus_RefreshesMirrorFromProvider() {
	ctx := context.Background()

	s.repo.EXPECT().FindByID(gomock.Any(), "inv_100").Return(s.mirrorView(), nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").Return(&billing.RemoteInvoice{
		ID:         "inv_100",
		Status:     "PARTIALLY_PAID",
		TotalCents: 7400,
		PaidCents:  5000,
	}, nil)
	s.provider.EXPECT().ListPayments(gomock.Any(), "inv_100").Return([]billing.Payment{
		{
			ID:          "pay_5",
			AmountCents: 5000,
			SourceType:  "CARD",
			CardBrand:   "VISA",
			Last4:       "4242",
			CreatedAt:   time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC),
		},
	}, nil)

	view, err := s.queries.GetStatus(ctx, "inv_100")
	s.Require().NoError(err)

	s.Equal("PARTIALLY_PAID", view.Invoice.Status)
	s.Equal(int64(5000), view.Invoice.PaidCents)
	s.Equal(int64(7400), view.Invoice.TotalCents)
	s.Require().Len(view.Payments, 1)
	s.Equal("pay_5", view.Payments[0].ID)
	s.Require().NotNil(view.Payments[0].CardBrand)
	s.Equal("VISA", *view.Payments[0].CardBrand)
	s.Require().NotNil(view.Payments[0].Last4)
	s.Equal("4242", *view.Payments[0].Last4)
	s.Nil(view.Payments[0].Note)
}

func (s *InvoiceQueriesTestSuite) TestGetStatus_ZeroRemoteTotalKeepsMirrorTotal() {
	ctx := context.Background()

	s.repo.EXPECT().FindByID(gomock.Any(), "inv_100").Return(s.mirrorView(), nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").Return(&billing.RemoteInvoice{
		ID:     "inv_100",
		Status: "UNPAID",
	}, nil)
	s.provider.EXPECT().ListPayments(gomock.Any(), "inv_100").Return([]billing.Payment{}, nil)

	view, err := s.queries.GetStatus(ctx, "inv_100")
	s.Require().NoError(err)

	s.Equal(int64(7400), view.Invoice.TotalCents)
	s.Empty(view.Payments)
}

func (s *InvoiceQueriesTestSuite) TestGetStatus_RemoteNotFoundDegradesToMirror() {
	ctx := context.Background()

	s.repo.EXPECT().FindByID(gomock.Any(), "inv_100").Return(s.mirrorView(), nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").
		Return(nil, &billing.ProviderError{StatusCode: 404})

	view, err := s.queries.GetStatus(ctx, "inv_100")
	s.Require().NoError(err)

	s.Equal("UNPAID", view.Invoice.Status)
	s.Equal(int64(7400), view.Invoice.TotalCents)
	s.Empty(view.Payments)
}

func (s *InvoiceQueriesTestSuite) TestGetStatus_UnknownInvoice() {
	ctx := context.Background()

	s.repo.EXPECT().FindByID(gomock.Any(), "inv_404").
		Return(nil, infra.WrapRepoErr("find invoice", errors.New("no rows"), infra.KindNotFound))

	view, err := s.queries.GetStatus(ctx, "inv_404")
	s.Require().ErrorIs(err, queries.ErrInvoiceNotFound)
	s.Nil(view)
}

func (s *InvoiceQueriesTestSuite) TestGetStatus_ProviderFailurePropagates() {
	ctx := context.Background()

	s.repo.EXPECT().FindByID(gomock.Any(), "inv_100").Return(s.mirrorView(), nil)
	s.provider.EXPECT().GetInvoice(gomock.Any(), "inv_100").
		Return(nil, errors.New("connection reset"))

	view, err := s.queries.GetStatus(ctx, "inv_100")
	s.Require().Error(err)
	s.Nil(view)
}

func (s *InvoiceQueriesTestSuite) TestListByEvent() {
	ctx := context.Background()
	eventID := uuid.New()

	items := []*queries.InvoiceListItem{
		{ID: "inv_100", Status: "CANCELED", TotalCents: 7400},
		{ID: "inv_101", Status: "UNPAID", TotalCents: 5200},
	}
	s.repo.EXPECT().FindByEventID(gomock.Any(), eventID).Return(items, nil)

	got, err := s.queries.ListByEvent(ctx, eventID)
	s.Require().NoError(err)
	s.Equal(items, got)
}
