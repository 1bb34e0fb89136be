package entitlement

import (
	"time"

	"greenrfq/internal/domain/supplier"

	"github.com/google/uuid"
)

// Source records where an entitlement came from; lookups that fail fall
// back to the documented free-tier default.
type Source string

const (
	SourceSubscription Source = "subscription"
	SourceDefault      Source = "default"
)

// Free-tier defaults applied when a supplier has no active subscription.
const (
	DefaultWave            = int32(3)
	DefaultVisibilityDelay = 30 * time.Minute
	DefaultRFQQuota        = int32(10)
	DefaultOutboundQuota   = int32(20)
)

type Entitlement struct {
	SupplierID      uuid.UUID
	TierCode        supplier.Tier
	WaveNumber      int32
	VisibilityDelay time.Duration
	// Nil quota means unlimited.
	RFQMonthlyQuota      *int32
	RFQsUsed             int32
	OutboundMonthlyQuota *int32
	OutboundUsed         int32
	Features             map[string]bool
	Source               Source
}

// Default is the free-tier entitlement returned whenever resolution
// fails or no subscription exists.
func Default(supplierID uuid.UUID) Entitlement {
	rfqQuota := DefaultRFQQuota
	outQuota := DefaultOutboundQuota
	return Entitlement{
		SupplierID:           supplierID,
		TierCode:             supplier.TierFree,
		WaveNumber:           DefaultWave,
		VisibilityDelay:      DefaultVisibilityDelay,
		RFQMonthlyQuota:      &rfqQuota,
		OutboundMonthlyQuota: &outQuota,
		Features:             map[string]bool{},
		Source:               SourceDefault,
	}
}

type Admission struct {
	Allowed bool
	// Nil remaining means unlimited.
	Remaining *int32
}

// AdmitRFQ computes quota admission from the authoritative counters.
func (e Entitlement) AdmitRFQ() Admission {
	return admit(e.RFQMonthlyQuota, e.RFQsUsed)
}

// AdmitOutbound computes outbound-message admission.
func (e Entitlement) AdmitOutbound() Admission {
	return admit(e.OutboundMonthlyQuota, e.OutboundUsed)
}

func admit(quota *int32, used int32) Admission {
	if quota == nil {
		return Admission{Allowed: true}
	}
	remaining := *quota - used
	if remaining < 0 {
		remaining = 0
	}
	return Admission{Allowed: remaining > 0, Remaining: &remaining}
}
