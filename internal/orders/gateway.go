package orders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/stages"
)

// FailurePolicy decides what happens to an optimistic local move when
// persisting its stage change fails. The underlying product behavior is
// genuinely ambiguous, so it is configuration rather than a hard-coded
// choice.
type FailurePolicy int

const (
	// PolicyOptimisticUntilReconciled keeps the local move; the periodic
	// snapshot refresh is the only correction mechanism.
	PolicyOptimisticUntilReconciled FailurePolicy = iota
	// PolicyRevertOnFailure moves the card back to its source column when
	// the persist call fails.
	PolicyRevertOnFailure
)

// ParseFailurePolicy maps a config string to a policy. Unknown values fall
// back to the optimistic policy.
func ParseFailurePolicy(s string) FailurePolicy {
	if s == "revert-on-failure" {
		return PolicyRevertOnFailure
	}
	return PolicyOptimisticUntilReconciled
}

// String returns the config spelling of the policy.
func (p FailurePolicy) String() string {
	if p == PolicyRevertOnFailure {
		return "revert-on-failure"
	}
	return "optimistic-until-reconciled"
}

// Gateway wraps the order-service client with the stage registry. It is
// the only path through which stage transitions leave the board.
type Gateway struct {
	client   *Client
	registry *stages.Registry
}

// NewGateway creates a gateway around the given client and registry. The
// registry reads the live board, so stage titles follow local column edits
// as well as fetched snapshots.
func NewGateway(client *Client, registry *stages.Registry) *Gateway {
	return &Gateway{client: client, registry: registry}
}

// FetchBoard retrieves a fresh board snapshot from the order service.
func (g *Gateway) FetchBoard(ctx context.Context) (*models.Board, error) {
	return g.client.FetchBoard(ctx)
}

// PersistStage persists a card's stage transition: the column id is
// translated to its stage title and sent to the order service. The local
// move has already happened optimistically; this call never rolls it back
// itself. On success a fresh snapshot is fetched to reconcile server-side
// effects and returned. A failed reconciliation fetch is reported wrapped
// in ErrReconcile so callers can tell it apart from a persist failure.
func (g *Gateway) PersistStage(ctx context.Context, cardID, columnID int) (*models.Board, error) {
	title := g.registry.ColumnTitleForID(columnID)
	if title == stages.UnknownTitle {
		return nil, ErrUnknownStage
	}

	if err := g.client.UpdateStage(ctx, cardID, title); err != nil {
		return nil, err
	}

	board, err := g.FetchBoard(ctx)
	if err != nil {
		slog.Warn("stage saved but snapshot refresh failed", "card", cardID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrReconcile, err)
	}
	return board, nil
}
