package distribution

import (
	"errors"
	"time"

	"greenrfq/internal/domain/supplier"
)

var ErrInvalidStatus = errors.New("invalid queue entry status")

// VisibilityWindow is how long an entry stays actionable after it
// becomes visible.
const VisibilityWindow = 48 * time.Hour

type Status string

const (
	StatusPending   Status = "pending"
	StatusNotified  Status = "notified"
	StatusViewed    Status = "viewed"
	StatusResponded Status = "responded"
	StatusExpired   Status = "expired"
)

var statusRank = map[Status]int{
	StatusPending:   0,
	StatusNotified:  1,
	StatusViewed:    2,
	StatusResponded: 3,
	StatusExpired:   4,
}

func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo enforces monotonic progress; entries never move
// backwards and responded entries never expire.
func (s Status) CanTransitionTo(next Status) bool {
	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	n, ok := statusRank[next]
	if !ok {
		return false
	}
	if s == StatusResponded {
		return false
	}
	return n > cur
}

// WaveAssignment is the wave placement computed for one candidate.
type WaveAssignment struct {
	Wave   int32
	Delay  time.Duration
	Reason string
}

// Window computes the visibility interval for an assignment.
func (w WaveAssignment) Window(now time.Time, window time.Duration) (visibleAt, expiresAt time.Time) {
	if window <= 0 {
		window = VisibilityWindow
	}
	visibleAt = now.Add(w.Delay)
	return visibleAt, visibleAt.Add(window)
}

// FallbackWave is the static tier table used when entitlement resolution
// is disabled.
func FallbackWave(tier supplier.Tier) WaveAssignment {
	switch tier {
	case supplier.TierEnterprise, supplier.TierPremium:
		return WaveAssignment{Wave: 1, Delay: 0, Reason: "static tier table: " + tier.String()}
	case supplier.TierPro, supplier.TierStandard:
		return WaveAssignment{Wave: 2, Delay: 10 * time.Minute, Reason: "static tier table: " + tier.String()}
	case supplier.TierClaimed:
		return WaveAssignment{Wave: 3, Delay: 20 * time.Minute, Reason: "static tier table: " + tier.String()}
	case supplier.TierScraped:
		return WaveAssignment{Wave: 4, Delay: 60 * time.Minute, Reason: "static tier table: " + tier.String()}
	default:
		return WaveAssignment{Wave: 3, Delay: 30 * time.Minute, Reason: "static tier table default"}
	}
}

// OutreachWave places shadow candidates in the last wave regardless of
// entitlements.
func OutreachWave() WaveAssignment {
	return WaveAssignment{Wave: 4, Delay: 60 * time.Minute, Reason: "shadow supplier outreach"}
}
