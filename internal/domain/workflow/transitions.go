package workflow

import (
	"errors"
	"fmt"

	"aga_techserv/internal/domain/entities"
)

// ErrInvalidTransition is returned when the requested edge does not exist
// in the status graph. Callers must not mutate project state after it.
var ErrInvalidTransition = errors.New("invalid status transition")

// Graph is the immutable project-status state machine. Build one with
// NewGraph at startup and share it by reference; it is never mutated after
// construction.
type Graph struct {
	edges map[entities.ProjectStatus][]entities.ProjectStatus
}

// NewGraph constructs the fixed adjacency list over the project statuses.
//
// The happy path is a single chain from draft to project_closed. on_hold is
// reachable from the active execution states and resumes into work_started
// or in_progress. cancelled is reachable from every pre-completion state.
// cancelled and project_closed are terminal.
func NewGraph() *Graph {
	return &Graph{edges: map[entities.ProjectStatus][]entities.ProjectStatus{
		entities.ProjectStatusDraft: {
			entities.ProjectStatusEstimationPrepared,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusEstimationPrepared: {
			entities.ProjectStatusQuotationSent,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusQuotationSent: {
			entities.ProjectStatusQuotationApproved,
			entities.ProjectStatusQuotationRejected,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusQuotationApproved: {
			entities.ProjectStatusLPOReceived,
			entities.ProjectStatusOnHold,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusQuotationRejected: {
			entities.ProjectStatusLPOReceived,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusLPOReceived: {
			entities.ProjectStatusTeamAssigned,
			entities.ProjectStatusOnHold,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusTeamAssigned: {
			entities.ProjectStatusWorkStarted,
			entities.ProjectStatusOnHold,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusWorkStarted: {
			entities.ProjectStatusInProgress,
			entities.ProjectStatusOnHold,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusInProgress: {
			entities.ProjectStatusWorkCompleted,
			entities.ProjectStatusOnHold,
			entities.ProjectStatusCancelled,
		},
		entities.ProjectStatusWorkCompleted: {
			entities.ProjectStatusQualityCheck,
			entities.ProjectStatusOnHold,
		},
		entities.ProjectStatusQualityCheck: {
			entities.ProjectStatusClientHandover,
			entities.ProjectStatusOnHold,
		},
		entities.ProjectStatusClientHandover: {
			entities.ProjectStatusFinalInvoiceSent,
			entities.ProjectStatusOnHold,
		},
		entities.ProjectStatusFinalInvoiceSent: {
			entities.ProjectStatusPaymentReceived,
		},
		entities.ProjectStatusPaymentReceived: {
			entities.ProjectStatusProjectClosed,
		},
		entities.ProjectStatusOnHold: {
			entities.ProjectStatusWorkStarted,
			entities.ProjectStatusInProgress,
			entities.ProjectStatusCancelled,
		},
		// Terminal states carry no outgoing edges.
		entities.ProjectStatusCancelled:     {},
		entities.ProjectStatusProjectClosed: {},
	}}
}

// CanTransition reports whether the edge (current, next) exists.
func (g *Graph) CanTransition(current, next entities.ProjectStatus) bool {
	for _, candidate := range g.edges[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Validate returns ErrInvalidTransition (wrapped with both statuses) when
// the edge (current, next) is absent.
func (g *Graph) Validate(current, next entities.ProjectStatus) error {
	if !current.IsValid() || !next.IsValid() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}
	if !g.CanTransition(current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}
	return nil
}

// Targets returns the statuses reachable from current. The returned slice
// is a copy; mutating it does not affect the graph.
func (g *Graph) Targets(current entities.ProjectStatus) []entities.ProjectStatus {
	out := make([]entities.ProjectStatus, len(g.edges[current]))
	copy(out, g.edges[current])
	return out
}

// IsTerminal reports whether current has no outgoing edges.
func (g *Graph) IsTerminal(current entities.ProjectStatus) bool {
	edges, ok := g.edges[current]
	return ok && len(edges) == 0
}
