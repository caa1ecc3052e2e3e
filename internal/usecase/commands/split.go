package commands

import (
	"context"

	"tournament-billing/internal/domain/actor"
	"tournament-billing/internal/domain/fee"
	"tournament-billing/internal/domain/roster"
	reqdto "tournament-billing/internal/handler/dto/request"
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/pkg/clock"
	"tournament-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type SplitCommands interface {
	CreateSplitInvoice(ctx context.Context, act actor.Actor, req reqdto.CreateSplitInvoiceRequest, idempotencyKey uuid.UUID) (*SplitResult, error)
}

type splitUseCaseImpl struct {
	*invoiceUseCaseImpl
}

func NewSplitUseCase(uow shared.UnitOfWork, provider billing.Provider, clk clock.Clock) SplitCommands {
	return &splitUseCaseImpl{&invoiceUseCaseImpl{
		uow:      uow,
		provider: provider,
		clock:    clk,
	}}
}

// CreateSplitInvoice partitions the roster into the GT program side and the
// independent side and issues an invoice per non-empty side. The program
// invoice bills registration only; unwaived GT late fees cross over to the
// independent invoice as named late-fee-only lines.
func (u *splitUseCaseImpl) CreateSplitInvoice(
	ctx context.Context,
	act actor.Actor,
	req reqdto.CreateSplitInvoiceRequest,
	idempotencyKey uuid.UUID,
) (*SplitResult, error) {
	if !act.CanManageInvoices() {
		return nil, ErrPermissionDenied
	}

	ev, err := u.loadEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	_, tierFee := fee.SelectTier(ev, now)
	regular := ev.Fees().RegularFeeCents
	perHeadLate := tierFee - regular
	if perHeadLate < 0 {
		perHeadLate = 0
	}

	var gtSelections, independentSelections []roster.ParticipantSelection
	for _, sel := range req.ToSelections() {
		if sel.Status != roster.SelectionActive {
			continue
		}
		if sel.IsGtParticipant {
			gtSelections = append(gtSelections, sel)
		} else {
			independentSelections = append(independentSelections, sel)
		}
	}
	if len(gtSelections) == 0 && len(independentSelections) == 0 {
		return nil, ErrEmptyRoster
	}

	// Program side: registration only, late and membership forced to zero.
	var programBills []BillableParticipant
	for _, sel := range gtSelections {
		programBills = append(programBills, BillableParticipant{
			ParticipantID:     sel.ParticipantID,
			Name:              sel.Name,
			Section:           sel.Section,
			RegistrationCents: regular,
		})
	}

	independentBills := make([]BillableParticipant, 0, len(independentSelections)+len(gtSelections))
	for _, sel := range independentSelections {
		late := perHeadLate
		if sel.WaiveLateFee {
			late = 0
		}
		independentBills = append(independentBills, BillableParticipant{
			ParticipantID:     sel.ParticipantID,
			Name:              sel.Name,
			Section:           sel.Section,
			RegistrationCents: regular,
			LateCents:         late,
			ChargeMembership:  sel.ChargeMembership(),
		})
	}
	for _, sel := range gtSelections {
		if perHeadLate > 0 && !sel.WaiveLateFee {
			independentBills = append(independentBills, BillableParticipant{
				ParticipantID: sel.ParticipantID,
				Name:          sel.Name,
				Section:       sel.Section,
				LateCents:     perHeadLate,
			})
		}
	}

	result := &SplitResult{}
	baseNumber := newInvoiceNumber(ev.Name(), now)

	if len(programBills) > 0 {
		gtRecipient := req.Recipient
		if req.GtCoordinator != nil {
			gtRecipient = *req.GtCoordinator
		}
		program, err := u.issueInvoice(ctx, issueParams{
			event:          ev,
			number:         baseNumber + "-GT",
			recipient:      gtRecipient.ToDomain(),
			selections:     gtSelections,
			billables:      programBills,
			idempotencyKey: idempotencyKey.String() + "-gt",
		})
		if err != nil {
			return nil, err
		}
		result.Program = program
	}

	if len(independentBills) > 0 {
		independent, err := u.issueInvoice(ctx, issueParams{
			event:          ev,
			number:         baseNumber,
			recipient:      req.Recipient.ToDomain(),
			selections:     independentSelections,
			billables:      independentBills,
			idempotencyKey: idempotencyKey.String() + "-ind",
		})
		if err != nil {
			return nil, err
		}
		result.Independent = independent
	}

	return result, nil
}
