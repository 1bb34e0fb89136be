//go:build unit

package entitlement_test

import (
	"testing"
	"time"

	"greenrfq/internal/domain/entitlement"
	"greenrfq/internal/domain/supplier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	id := uuid.New()
	e := entitlement.Default(id)

	assert.Equal(t, id, e.SupplierID)
	assert.Equal(t, supplier.TierFree, e.TierCode)
	assert.Equal(t, int32(3), e.WaveNumber)
	assert.Equal(t, 30*time.Minute, e.VisibilityDelay)
	require.NotNil(t, e.RFQMonthlyQuota)
	assert.Equal(t, int32(10), *e.RFQMonthlyQuota)
	assert.Equal(t, entitlement.SourceDefault, e.Source)
}

func TestAdmitRFQ_QuotaBoundary(t *testing.T) {
	quota := int32(3)
	e := entitlement.Entitlement{RFQMonthlyQuota: &quota}

	for used := int32(0); used < quota; used++ {
		e.RFQsUsed = used
		a := e.AdmitRFQ()
		assert.True(t, a.Allowed, "used=%d", used)
		require.NotNil(t, a.Remaining)
		assert.Equal(t, quota-used, *a.Remaining)
	}

	e.RFQsUsed = quota
	a := e.AdmitRFQ()
	assert.False(t, a.Allowed)
	assert.Equal(t, int32(0), *a.Remaining)

	e.RFQsUsed = quota + 5
	a = e.AdmitRFQ()
	assert.False(t, a.Allowed)
	assert.Equal(t, int32(0), *a.Remaining, "overage never reports negative remaining")
}

func TestAdmitRFQ_UnlimitedQuota(t *testing.T) {
	e := entitlement.Entitlement{RFQsUsed: 100000}
	a := e.AdmitRFQ()
	assert.True(t, a.Allowed)
	assert.Nil(t, a.Remaining)
}

func TestAdmitOutbound(t *testing.T) {
	quota := int32(1)
	e := entitlement.Entitlement{OutboundMonthlyQuota: &quota}

	assert.True(t, e.AdmitOutbound().Allowed)
	e.OutboundUsed = 1
	assert.False(t, e.AdmitOutbound().Allowed)
}
