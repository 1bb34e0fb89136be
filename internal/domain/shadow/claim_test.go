//go:build unit

package shadow_test

import (
	"regexp"
	"testing"
	"time"

	"greenrfq/internal/domain/shadow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var policy = shadow.RateLimitPolicy{
	MaxFailedAttempts: 5,
	LockoutDuration:   30 * time.Minute,
	MaxTokensPerDay:   3,
}

func TestCheckEligibility(t *testing.T) {
	locked := now.Add(10 * time.Minute)
	expired := now.Add(-time.Minute)

	tests := []struct {
		name    string
		rec     shadow.Record
		wantErr error
	}{
		{"unclaimed active", shadow.Record{ClaimedStatus: shadow.StatusUnclaimed, OptOutStatus: shadow.OptOutActive}, nil},
		{"already claimed", shadow.Record{ClaimedStatus: shadow.StatusClaimed, OptOutStatus: shadow.OptOutActive}, shadow.ErrAlreadyClaimed},
		{"opted out", shadow.Record{ClaimedStatus: shadow.StatusUnclaimed, OptOutStatus: shadow.OptOutOptedOut}, shadow.ErrOptedOut},
		{"opted out wins over claimed", shadow.Record{ClaimedStatus: shadow.StatusClaimed, OptOutStatus: shadow.OptOutOptedOut}, shadow.ErrOptedOut},
		{"locked out", shadow.Record{ClaimedStatus: shadow.StatusUnclaimed, OptOutStatus: shadow.OptOutActive, LockedUntil: &locked}, shadow.ErrLockedOut},
		{"lockout elapsed", shadow.Record{ClaimedStatus: shadow.StatusUnclaimed, OptOutStatus: shadow.OptOutActive, LockedUntil: &expired}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.CheckEligibility(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCanIssueToken_DailyLimit(t *testing.T) {
	rec := shadow.Record{ClaimedStatus: shadow.StatusUnclaimed, OptOutStatus: shadow.OptOutActive}

	assert.NoError(t, policy.CanIssueToken(rec, 2, now))
	assert.ErrorIs(t, policy.CanIssueToken(rec, 3, now), shadow.ErrTokenLimitReached)
}

func TestNextLockout(t *testing.T) {
	attempts, until := policy.NextLockout(3, now)
	assert.Equal(t, int32(4), attempts)
	assert.Nil(t, until)

	attempts, until = policy.NextLockout(4, now)
	assert.Equal(t, int32(5), attempts)
	require.NotNil(t, until)
	assert.Equal(t, now.Add(30*time.Minute), *until)
}

func TestTokenValidate(t *testing.T) {
	tests := []struct {
		name    string
		tok     shadow.Token
		wantErr error
	}{
		{"issued and live", shadow.Token{Status: shadow.TokenIssued, ExpiresAt: now.Add(time.Hour)}, nil},
		{"used", shadow.Token{Status: shadow.TokenUsed, ExpiresAt: now.Add(time.Hour)}, shadow.ErrTokenAlreadyUsed},
		{"invalidated", shadow.Token{Status: shadow.TokenInvalidated, ExpiresAt: now.Add(time.Hour)}, shadow.ErrTokenInvalidated},
		{"expired", shadow.Token{Status: shadow.TokenIssued, ExpiresAt: now.Add(-time.Second)}, shadow.ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tok.Validate(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTokenVerifyCode(t *testing.T) {
	code := "123456"
	live := now.Add(30 * time.Minute)
	stale := now.Add(-time.Minute)

	tok := shadow.Token{Status: shadow.TokenIssued, ExpiresAt: now.Add(time.Hour), VerificationCode: &code, VerificationExpiresAt: &live}
	assert.NoError(t, tok.VerifyCode("123456", now))
	assert.ErrorIs(t, tok.VerifyCode("654321", now), shadow.ErrCodeMismatch)

	tok.VerificationExpiresAt = &stale
	assert.ErrorIs(t, tok.VerifyCode("123456", now), shadow.ErrCodeExpired)

	tok.VerificationCode = nil
	assert.ErrorIs(t, tok.VerifyCode("123456", now), shadow.ErrCodeMismatch)
}

func TestNewClaimToken(t *testing.T) {
	raw, hash, err := shadow.NewClaimToken()
	require.NoError(t, err)
	assert.Len(t, raw, 64)
	assert.Equal(t, shadow.HashToken(raw), hash)
	assert.NotEqual(t, raw, hash)

	raw2, _, err := shadow.NewClaimToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}

func TestNewVerificationCode(t *testing.T) {
	re := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 20; i++ {
		code, err := shadow.NewVerificationCode()
		require.NoError(t, err)
		assert.Regexp(t, re, code)
	}
}
