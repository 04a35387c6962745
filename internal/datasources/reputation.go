package datasources

import (
	"context"

	"github.com/coachably/ranking-engine/internal/domain"
)

// ReputationLedgerGetter retrieves the cumulative reputation ledger
// for a coach.
type ReputationLedgerGetter interface {
	GetReputationLedger(ctx context.Context, coachID string) (domain.ReputationLedger, error)
}

// ReputationLedgerUpserter stores a ledger. Implementations must
// reject writes whose UpdatedAt is older than the stored row with
// domain.ErrStaleWrite.
type ReputationLedgerUpserter interface {
	UpsertReputationLedger(ctx context.Context, ledger domain.ReputationLedger) error
}

// ReputationLedgerLister lists every ledger, for the monthly decay
// evaluation pass.
type ReputationLedgerLister interface {
	ListReputationLedgers(ctx context.Context) ([]domain.ReputationLedger, error)
}

// ReputationStore combines the reputation ledger operations.
type ReputationStore interface {
	ReputationLedgerGetter
	ReputationLedgerUpserter
	ReputationLedgerLister
}
