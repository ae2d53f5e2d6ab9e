package workflow

import (
	"errors"
	"testing"

	"aga_techserv/internal/domain/entities"
)

func TestGraph_HappyPathChain(t *testing.T) {
	g := NewGraph()

	chain := []entities.ProjectStatus{
		entities.ProjectStatusDraft,
		entities.ProjectStatusEstimationPrepared,
		entities.ProjectStatusQuotationSent,
		entities.ProjectStatusQuotationApproved,
		entities.ProjectStatusLPOReceived,
		entities.ProjectStatusTeamAssigned,
		entities.ProjectStatusWorkStarted,
		entities.ProjectStatusInProgress,
		entities.ProjectStatusWorkCompleted,
		entities.ProjectStatusQualityCheck,
		entities.ProjectStatusClientHandover,
		entities.ProjectStatusFinalInvoiceSent,
		entities.ProjectStatusPaymentReceived,
		entities.ProjectStatusProjectClosed,
	}

	for i := 0; i < len(chain)-1; i++ {
		if !g.CanTransition(chain[i], chain[i+1]) {
			t.Fatalf("expected edge %s -> %s", chain[i], chain[i+1])
		}
	}
}

func TestGraph_RejectionBranch(t *testing.T) {
	g := NewGraph()

	if !g.CanTransition(entities.ProjectStatusQuotationSent, entities.ProjectStatusQuotationRejected) {
		t.Fatalf("expected quotation_sent -> quotation_rejected")
	}
	if !g.CanTransition(entities.ProjectStatusQuotationRejected, entities.ProjectStatusLPOReceived) {
		t.Fatalf("expected quotation_rejected -> lpo_received")
	}
}

func TestGraph_IllegalEdges(t *testing.T) {
	g := NewGraph()

	cases := []struct {
		from, to entities.ProjectStatus
	}{
		{entities.ProjectStatusDraft, entities.ProjectStatusQuotationSent},
		{entities.ProjectStatusDraft, entities.ProjectStatusLPOReceived},
		{entities.ProjectStatusQuotationSent, entities.ProjectStatusTeamAssigned},
		{entities.ProjectStatusWorkCompleted, entities.ProjectStatusInProgress},
		{entities.ProjectStatusPaymentReceived, entities.ProjectStatusDraft},
	}

	for _, tc := range cases {
		if g.CanTransition(tc.from, tc.to) {
			t.Fatalf("unexpected edge %s -> %s", tc.from, tc.to)
		}
		if err := g.Validate(tc.from, tc.to); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition for %s -> %s, got %v", tc.from, tc.to, err)
		}
	}
}

func TestGraph_TerminalStates(t *testing.T) {
	g := NewGraph()

	for _, terminal := range []entities.ProjectStatus{entities.ProjectStatusCancelled, entities.ProjectStatusProjectClosed} {
		if !g.IsTerminal(terminal) {
			t.Fatalf("expected %s to be terminal", terminal)
		}
		for _, next := range entities.AllProjectStatuses {
			if g.CanTransition(terminal, next) {
				t.Fatalf("terminal %s must not reach %s", terminal, next)
			}
		}
	}
}

func TestGraph_OnHoldRoundTrip(t *testing.T) {
	g := NewGraph()

	holdable := []entities.ProjectStatus{
		entities.ProjectStatusQuotationApproved,
		entities.ProjectStatusLPOReceived,
		entities.ProjectStatusTeamAssigned,
		entities.ProjectStatusWorkStarted,
		entities.ProjectStatusInProgress,
		entities.ProjectStatusWorkCompleted,
		entities.ProjectStatusQualityCheck,
		entities.ProjectStatusClientHandover,
	}
	for _, from := range holdable {
		if !g.CanTransition(from, entities.ProjectStatusOnHold) {
			t.Fatalf("expected %s -> on_hold", from)
		}
	}

	if !g.CanTransition(entities.ProjectStatusOnHold, entities.ProjectStatusWorkStarted) {
		t.Fatalf("expected on_hold -> work_started")
	}
	if !g.CanTransition(entities.ProjectStatusOnHold, entities.ProjectStatusInProgress) {
		t.Fatalf("expected on_hold -> in_progress")
	}
}

func TestGraph_ValidateUnknownStatus(t *testing.T) {
	g := NewGraph()

	if err := g.Validate("bogus", entities.ProjectStatusDraft); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := g.Validate(entities.ProjectStatusDraft, "bogus"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestGraph_TargetsReturnsCopy(t *testing.T) {
	g := NewGraph()

	targets := g.Targets(entities.ProjectStatusDraft)
	if len(targets) == 0 {
		t.Fatalf("expected outgoing edges from draft")
	}
	targets[0] = entities.ProjectStatusProjectClosed

	if g.CanTransition(entities.ProjectStatusDraft, entities.ProjectStatusProjectClosed) {
		t.Fatalf("mutating Targets result leaked into the graph")
	}
}
