package commands

import (
	"context"
	"fmt"

	"tournament-billing/internal/domain/actor"
	"tournament-billing/internal/domain/roster"
	reqdto "tournament-billing/internal/handler/dto/request"
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/pkg/clock"
	"tournament-billing/internal/pkg/errs"
	"tournament-billing/internal/pkg/namematch"
	"tournament-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound        = errs.New("change request not found")
	ErrRequestAlreadyResolved = errs.New("change request already resolved")
	ErrParticipantNotResolved = errs.New("participant could not be resolved by name")
)

type RequestCommands interface {
	ProcessBatch(ctx context.Context, act actor.Actor, req reqdto.ProcessRequestsRequest) (*BatchResult, error)
}

type requestUseCaseImpl struct {
	*invoiceUseCaseImpl
}

func NewRequestUseCase(uow shared.UnitOfWork, provider billing.Provider, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{&invoiceUseCaseImpl{
		uow:      uow,
		provider: provider,
		clock:    clk,
	}}
}

// workingInvoice is the mutable batch-local view of one invoice chain. The
// snapshot is loaded once at batch start; later items in the same batch see
// the accumulated mutations, not a re-read.
type workingInvoice struct {
	head       *shared.InvoiceSnapshot
	selections []roster.ParticipantSelection
	roster     []shared.ParticipantSnapshot
}

type resolution struct {
	id            uuid.UUID
	status        roster.RequestStatus
	failureReason *string
}

// ProcessBatch resolves a batch of change requests sequentially. Every
// per-item failure, panics included, marks that item Failed and the loop
// continues; request-status rows commit as one transaction at batch end.
// Remote invoice effects happen as each item is processed and are not part
// of that transaction.
func (u *requestUseCaseImpl) ProcessBatch(
	ctx context.Context,
	act actor.Actor,
	req reqdto.ProcessRequestsRequest,
) (*BatchResult, error) {
	if !act.CanResolveRequests() {
		return nil, ErrPermissionDenied
	}

	ids := make([]uuid.UUID, len(req.Decisions))
	for i, d := range req.Decisions {
		ids[i] = d.RequestID
	}
	snaps, err := u.uow.CommandReads().RequestsByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	byID := make(map[uuid.UUID]shared.RequestSnapshot, len(snaps))
	for _, s := range snaps {
		byID[s.ID] = s
	}

	working := make(map[string]*workingInvoice)
	result := &BatchResult{}
	var resolutions []resolution

	for _, decision := range req.Decisions {
		status, writeRow, itemErr := u.processOne(ctx, act, decision, byID, working, req.WaiveLateFees)
		if itemErr != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, BatchItemError{
				RequestID: decision.RequestID,
				Message:   itemErr.Error(),
			})
			if writeRow {
				msg := itemErr.Error()
				resolutions = append(resolutions, resolution{
					id:            decision.RequestID,
					status:        roster.RequestFailed,
					failureReason: &msg,
				})
			}
			continue
		}
		result.ProcessedCount++
		resolutions = append(resolutions, resolution{id: decision.RequestID, status: status})
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, r := range resolutions {
			if err := tx.Requests().MarkResolved(ctx, tx.DB(), r.id, r.status, act.ID, r.failureReason); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return result, nil
}

// processOne resolves a single decision. writeRow reports whether the
// request row exists and may be updated; a missing or already-resolved
// request fails without touching its row.
func (u *requestUseCaseImpl) processOne(
	ctx context.Context,
	act actor.Actor,
	decision reqdto.RequestDecision,
	byID map[uuid.UUID]shared.RequestSnapshot,
	working map[string]*workingInvoice,
	waiveLateFees bool,
) (status roster.RequestStatus, writeRow bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			status = ""
			writeRow = true
			err = errs.New(fmt.Sprintf("panic while processing request: %v", r))
		}
	}()

	snap, ok := byID[decision.RequestID]
	if !ok {
		return "", false, ErrRequestNotFound
	}
	if roster.RequestStatus(snap.Status) != roster.RequestPending {
		return "", false, ErrRequestAlreadyResolved
	}

	if !decision.Approve {
		return roster.RequestDenied, true, nil
	}

	switch roster.RequestType(snap.Type) {
	case roster.RequestWithdrawal:
		return u.applyWithdrawal(ctx, act, snap, working, waiveLateFees)
	case roster.RequestSubstitution:
		return u.applySubstitution(ctx, act, snap, working, waiveLateFees)
	default:
		// Section changes, bye requests and the rest are bookkeeping-only:
		// the organizer applies them outside the billing chain.
		return roster.RequestApproved, true, nil
	}
}

func (u *requestUseCaseImpl) applyWithdrawal(
	ctx context.Context,
	act actor.Actor,
	snap shared.RequestSnapshot,
	working map[string]*workingInvoice,
	waiveLateFees bool,
) (roster.RequestStatus, bool, error) {
	w, err := u.loadWorking(ctx, snap.SourceInvoiceID, working)
	if err != nil {
		return "", true, err
	}

	idx := findSelection(w.selections, snap.ParticipantName)
	if idx < 0 {
		// Already off the invoice: withdrawing an absent participant is a
		// successful no-op.
		return roster.RequestApproved, true, nil
	}

	rebuilt := make([]roster.ParticipantSelection, 0, len(w.selections)-1)
	rebuilt = append(rebuilt, w.selections[:idx]...)
	rebuilt = append(rebuilt, w.selections[idx+1:]...)
	if err := u.recreateWorking(ctx, act, w, rebuilt, 0, waiveLateFees); err != nil {
		return "", true, err
	}
	return roster.RequestApproved, true, nil
}

func (u *requestUseCaseImpl) applySubstitution(
	ctx context.Context,
	act actor.Actor,
	snap shared.RequestSnapshot,
	working map[string]*workingInvoice,
	waiveLateFees bool,
) (roster.RequestStatus, bool, error) {
	w, err := u.loadWorking(ctx, snap.SourceInvoiceID, working)
	if err != nil {
		return "", true, err
	}

	idx := findSelection(w.selections, snap.ParticipantName)
	if idx < 0 {
		return "", true, errs.Mark(
			errs.New(fmt.Sprintf("outgoing participant %q not on invoice", snap.ParticipantName)),
			ErrParticipantNotResolved,
		)
	}

	targetName := namematch.ParseSubstitutionTarget(snap.Details)
	if targetName == "" {
		return "", true, errs.Mark(
			errs.New("substitution details name no incoming participant"),
			ErrParticipantNotResolved,
		)
	}

	incoming, ok := findRosterParticipant(w.roster, targetName)
	if !ok {
		return "", true, errs.Mark(
			errs.New(fmt.Sprintf("incoming participant %q not on event roster", targetName)),
			ErrParticipantNotResolved,
		)
	}

	rebuilt := make([]roster.ParticipantSelection, len(w.selections))
	copy(rebuilt, w.selections)
	outgoing := rebuilt[idx]
	rebuilt[idx] = roster.ParticipantSelection{
		ParticipantID:   incoming.ID,
		Name:            incoming.ToDomain().FullName(),
		USCFID:          incoming.USCFID,
		Section:         outgoing.Section,
		USCFStatus:      roster.USCFCurrent,
		IsGtParticipant: incoming.IsGtStudent,
		Status:          roster.SelectionActive,
		WaiveLateFee:    outgoing.WaiveLateFee,
	}
	if err := u.recreateWorking(ctx, act, w, rebuilt, 1, waiveLateFees); err != nil {
		return "", true, err
	}
	return roster.RequestApproved, true, nil
}

// recreateWorking recreates the working invoice's chain head with the
// rebuilt selection list and advances the working head to the successor so
// later items in the batch stack on top of this change.
func (u *requestUseCaseImpl) recreateWorking(
	ctx context.Context,
	act actor.Actor,
	w *workingInvoice,
	rebuilt []roster.ParticipantSelection,
	substitutionCount int,
	waiveLateFees bool,
) error {
	res, err := u.RecreateInvoice(ctx, act, w.head.ID, reqdto.RecreateInvoiceRequest{
		Selections:        selectionPayloads(rebuilt),
		WaiveLateFees:     waiveLateFees,
		SubstitutionCount: substitutionCount,
	}, uuid.New())
	if err != nil {
		return err
	}

	w.selections = rebuilt
	w.head.ID = res.NewID
	w.head.InvoiceNumber = res.NewInvoiceNumber
	w.head.Status = res.NewStatus
	w.head.URL = res.NewURL
	w.head.TotalCents = res.NewTotalCents
	return nil
}

func (u *requestUseCaseImpl) loadWorking(ctx context.Context, invoiceID string, working map[string]*workingInvoice) (*workingInvoice, error) {
	if w, ok := working[invoiceID]; ok {
		return w, nil
	}

	head, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	selectionSnaps, err := u.uow.CommandReads().SelectionsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rosterSnaps, err := u.uow.CommandReads().RosterByEvent(ctx, head.EventID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	selections := make([]roster.ParticipantSelection, 0, len(selectionSnaps))
	for _, s := range selectionSnaps {
		sel := s.ToDomain()
		if sel.Status == roster.SelectionActive {
			selections = append(selections, sel)
		}
	}

	w := &workingInvoice{
		head:       head,
		selections: selections,
		roster:     rosterSnaps,
	}
	working[invoiceID] = w
	return w, nil
}

func findSelection(selections []roster.ParticipantSelection, name string) int {
	for i, sel := range selections {
		if namematch.Equal(sel.Name, name) {
			return i
		}
	}
	return -1
}

func findRosterParticipant(participants []shared.ParticipantSnapshot, name string) (shared.ParticipantSnapshot, bool) {
	for _, p := range participants {
		if namematch.Equal(p.ToDomain().FullName(), name) {
			return p, true
		}
	}
	return shared.ParticipantSnapshot{}, false
}

func selectionPayloads(selections []roster.ParticipantSelection) []reqdto.SelectionPayload {
	out := make([]reqdto.SelectionPayload, len(selections))
	for i, sel := range selections {
		out[i] = reqdto.SelectionPayload{
			ParticipantID:   sel.ParticipantID,
			Name:            sel.Name,
			USCFID:          sel.USCFID,
			Section:         sel.Section,
			USCFStatus:      string(sel.USCFStatus),
			IsGtParticipant: sel.IsGtParticipant,
			WaiveLateFee:    sel.WaiveLateFee,
		}
	}
	return out
}
