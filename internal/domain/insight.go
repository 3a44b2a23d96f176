package domain

import "time"

// InsightKind discriminates account-level and media-level insights.
type InsightKind string

const (
	InsightKindAccount InsightKind = "account"
	InsightKindMedia   InsightKind = "media"
)

// Insight is a mirrored metric series. Exactly one of AccountID and
// MediaID is set, according to Kind.
type Insight struct {
	ID          int64
	InsightID   string
	Name        string
	Period      string
	Values      []InsightValue
	Title       string
	Description string
	Kind        InsightKind
	AccountID   int64
	MediaID     int64
	CreatedAt   time.Time
}
