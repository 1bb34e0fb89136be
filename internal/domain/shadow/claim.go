package shadow

import (
	"errors"
	"time"
)

var (
	ErrAlreadyClaimed      = errors.New("supplier is already claimed")
	ErrOptedOut            = errors.New("supplier has opted out")
	ErrLockedOut           = errors.New("too many failed attempts, temporarily locked")
	ErrTokenLimitReached   = errors.New("token issue limit reached")
	ErrTokenExpired        = errors.New("claim token expired")
	ErrTokenAlreadyUsed    = errors.New("claim token already used")
	ErrTokenInvalidated    = errors.New("claim token invalidated")
	ErrCodeMismatch        = errors.New("verification code does not match")
	ErrCodeExpired         = errors.New("verification code expired")
	ErrNotPending          = errors.New("claim is not pending verification")
)

type ClaimStatus string

const (
	StatusUnclaimed           ClaimStatus = "unclaimed"
	StatusPendingVerification ClaimStatus = "pending_verification"
	StatusClaimed             ClaimStatus = "claimed"
)

type OptOutStatus string

const (
	OptOutActive         OptOutStatus = "active"
	OptOutOptedOut       OptOutStatus = "opted_out"
	OptOutPendingRemoval OptOutStatus = "pending_removal"
)

type TokenStatus string

const (
	TokenIssued      TokenStatus = "issued"
	TokenUsed        TokenStatus = "used"
	TokenInvalidated TokenStatus = "invalidated"
)

// Record is the claim-relevant slice of a shadow supplier row.
type Record struct {
	ClaimedStatus ClaimStatus
	OptOutStatus  OptOutStatus
	ClaimAttempts int32
	LockedUntil   *time.Time
}

// RateLimitPolicy bounds token issuance and failed verification attempts.
type RateLimitPolicy struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
	MaxTokensPerDay   int
}

// CheckEligibility rejects token issuance for claimed, opted-out, or
// locked-out records.
func (r Record) CheckEligibility(now time.Time) error {
	if r.OptOutStatus == OptOutOptedOut {
		return ErrOptedOut
	}
	if r.ClaimedStatus == StatusClaimed {
		return ErrAlreadyClaimed
	}
	if r.LockedUntil != nil && now.Before(*r.LockedUntil) {
		return ErrLockedOut
	}
	return nil
}

// CanIssueToken combines eligibility with the issuance rate limit.
func (p RateLimitPolicy) CanIssueToken(r Record, issuedLast24h int64, now time.Time) error {
	if err := r.CheckEligibility(now); err != nil {
		return err
	}
	if issuedLast24h >= int64(p.MaxTokensPerDay) {
		return ErrTokenLimitReached
	}
	return nil
}

// NextLockout returns the updated attempt counter and, once the limit is
// reached, the lockout deadline.
func (p RateLimitPolicy) NextLockout(attempts int32, now time.Time) (int32, *time.Time) {
	attempts++
	if int(attempts) >= p.MaxFailedAttempts {
		until := now.Add(p.LockoutDuration)
		return attempts, &until
	}
	return attempts, nil
}

// Token is the claim-relevant slice of a token row.
type Token struct {
	Status                TokenStatus
	ExpiresAt             time.Time
	VerificationCode      *string
	VerificationExpiresAt *time.Time
}

// Validate checks a token is consumable at the given instant.
func (t Token) Validate(now time.Time) error {
	switch t.Status {
	case TokenUsed:
		return ErrTokenAlreadyUsed
	case TokenInvalidated:
		return ErrTokenInvalidated
	}
	if now.After(t.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}

// VerifyCode checks a submitted verification code against the token.
func (t Token) VerifyCode(code string, now time.Time) error {
	if t.VerificationCode == nil || t.VerificationExpiresAt == nil {
		return ErrCodeMismatch
	}
	if now.After(*t.VerificationExpiresAt) {
		return ErrCodeExpired
	}
	if !constantTimeEqual(*t.VerificationCode, code) {
		return ErrCodeMismatch
	}
	return nil
}
