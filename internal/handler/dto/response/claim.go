package response

import (
	"greenrfq/internal/usecase/commands"
	"greenrfq/internal/usecase/queries"
)

type ClaimTokenResponse struct {
	ShadowID  string `json:"shadow_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

func FromClaimTokenResult(r *commands.ClaimTokenResult) *ClaimTokenResponse {
	return &ClaimTokenResponse{
		ShadowID:  r.ShadowID.String(),
		Token:     r.RawToken,
		ExpiresAt: r.ExpiresAt.Unix(),
	}
}

// VerificationStartedResponse deliberately omits the code itself; it
// travels over the verification channel, not the API response.
type VerificationStartedResponse struct {
	ShadowID  string `json:"shadow_id"`
	ExpiresAt int64  `json:"expires_at"`
}

func FromVerificationResult(r *commands.VerificationResult) *VerificationStartedResponse {
	return &VerificationStartedResponse{
		ShadowID:  r.ShadowID.String(),
		ExpiresAt: r.ExpiresAt.Unix(),
	}
}

type CompleteClaimResponse struct {
	ShadowID   string `json:"shadow_id"`
	SupplierID string `json:"supplier_id"`
}

func FromCompleteClaimResult(r *commands.CompleteClaimResult) *CompleteClaimResponse {
	return &CompleteClaimResponse{
		ShadowID:   r.ShadowID.String(),
		SupplierID: r.SupplierID.String(),
	}
}

// ClaimStatusResponse is served without authentication, so it carries
// lifecycle state only; the company identity stays out of it.
type ClaimStatusResponse struct {
	ShadowID      string `json:"shadow_id"`
	ClaimedStatus string `json:"claimed_status"`
	OptOutStatus  string `json:"opt_out_status"`
	LockedUntil   *int64 `json:"locked_until,omitempty"`
}

func FromClaimStatusView(v *queries.ClaimStatusView) *ClaimStatusResponse {
	resp := &ClaimStatusResponse{
		ShadowID:      v.ShadowID.String(),
		ClaimedStatus: v.ClaimedStatus,
		OptOutStatus:  v.OptOutStatus,
	}
	if v.LockedUntil != nil {
		locked := v.LockedUntil.Unix()
		resp.LockedUntil = &locked
	}
	return resp
}

type ClaimAuditItemResponse struct {
	Action    string  `json:"action"`
	Actor     *string `json:"actor,omitempty"`
	Success   bool    `json:"success"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

func FromClaimAudit(items []*queries.ClaimAuditEntry) []*ClaimAuditItemResponse {
	res := make([]*ClaimAuditItemResponse, len(items))
	for i, it := range items {
		res[i] = &ClaimAuditItemResponse{
			Action:    it.Action,
			Actor:     it.Actor,
			Success:   it.Success,
			Reason:    it.Reason,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}

type IngestResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

func FromIngestResult(r *commands.IngestResult) *IngestResponse {
	return &IngestResponse{
		Created: r.Created,
		Updated: r.Updated,
		Skipped: r.Skipped,
	}
}
