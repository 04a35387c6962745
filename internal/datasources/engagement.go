package datasources

import (
	"context"

	"github.com/coachably/ranking-engine/internal/domain"
)

// EngagementRecordGetter retrieves the raw activity counters for a
// coach in a given month.
type EngagementRecordGetter interface {
	GetEngagementRecord(ctx context.Context, coachID string, month domain.YearMonth) (domain.EngagementRecord, error)
}

// EngagementRecordUpserter stores a month's counters. Implementations
// must reject writes whose UpdatedAt is older than the stored row with
// domain.ErrStaleWrite.
type EngagementRecordUpserter interface {
	UpsertEngagementRecord(ctx context.Context, record domain.EngagementRecord) error
}

// LatestClosedEngagementRecordGetter retrieves a coach's most recent
// frozen month. Rankings fall back to it when the live month has no
// record yet.
type LatestClosedEngagementRecordGetter interface {
	GetLatestClosedEngagementRecord(ctx context.Context, coachID string) (domain.EngagementRecord, error)
}

// OpenEngagementRecordLister lists records for a month that have not
// been frozen yet.
type OpenEngagementRecordLister interface {
	ListOpenEngagementRecords(ctx context.Context, month domain.YearMonth) ([]domain.EngagementRecord, error)
}

// EngagementMonthCloser freezes all records for a month so later
// events can no longer mutate them.
type EngagementMonthCloser interface {
	CloseEngagementMonth(ctx context.Context, month domain.YearMonth) (int64, error)
}

// EngagementStore combines the engagement tracking operations.
type EngagementStore interface {
	EngagementRecordGetter
	LatestClosedEngagementRecordGetter
	EngagementRecordUpserter
	OpenEngagementRecordLister
	EngagementMonthCloser
}
